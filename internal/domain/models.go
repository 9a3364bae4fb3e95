package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	Electronics Category = "Electronics"
	Books       Category = "Books"
	Furniture   Category = "Furniture"
	Fashion     Category = "Fashion"
	Sports      Category = "Sports"
	Home        Category = "Home"
	Toys        Category = "Toys"
	Others      Category = "Others"
)

// Categories lists every accepted category in display order.
var Categories = []Category{Electronics, Books, Furniture, Fashion, Sports, Home, Toys, Others}

func (c Category) Valid() bool {
	for _, x := range Categories {
		if x == c {
			return true
		}
	}
	return false
}

type Condition string

const (
	New        Condition = "NEW"
	LikeNew    Condition = "LIKE_NEW"
	VeryGood   Condition = "VERY_GOOD"
	Good       Condition = "GOOD"
	Acceptable Condition = "ACCEPTABLE"
)

// Conditions lists every accepted condition from best to worst.
var Conditions = []Condition{New, LikeNew, VeryGood, Good, Acceptable}

func (c Condition) Valid() bool {
	for _, x := range Conditions {
		if x == c {
			return true
		}
	}
	return false
}

// CategoryNames joins the allowed categories for error messages.
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ConditionNames joins the allowed conditions for error messages.
func ConditionNames() string {
	names := make([]string, len(Conditions))
	for i, c := range Conditions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

type Item struct {
	ID          int
	Name        string
	Category    Category
	Brand       string
	Condition   Condition
	Description string
}

type Listing struct {
	ID       int
	ItemID   int
	SellerID int
	Price    decimal.Decimal
	Quantity int
	Active   bool
	Deleted  bool
}

type ListingStatus string

const (
	StatusDeleted  ListingStatus = "DELETED"
	StatusSoldOut  ListingStatus = "SOLD_OUT"
	StatusActive   ListingStatus = "ACTIVE"
	StatusInactive ListingStatus = "INACTIVE"
)

// Status derives the display status; it is never stored.
func (l Listing) Status() ListingStatus {
	switch {
	case l.Deleted:
		return StatusDeleted
	case l.Quantity <= 0:
		return StatusSoldOut
	case !l.Active:
		return StatusInactive
	default:
		return StatusActive
	}
}

// Available reports whether the listing can be shown to buyers and purchased.
func (l Listing) Available() bool {
	return !l.Deleted && l.Active && l.Quantity > 0
}

type OrderStatus string

const OrderCompleted OrderStatus = "COMPLETED"

type Order struct {
	ID         int
	BuyerID    int
	SellerID   int
	ListingID  int
	UnitPrice  decimal.Decimal
	Quantity   int
	TotalPrice decimal.Decimal
	Status     OrderStatus
}
