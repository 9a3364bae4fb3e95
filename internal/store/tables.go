package store

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
)

var (
	UserSchema    = NewSchema("users", "user_id", "username", "password")
	ItemSchema    = NewSchema("items", "item_id", "name", "category", "brand", "condition", "description")
	ListingSchema = NewSchema("listings", "listing_id", "item_id", "seller_id", "price", "quantity", "active", "deleted")
	OrderSchema   = NewSchema("orders", "order_id", "buyer_id", "seller_id", "listing_id", "unit_price", "quantity", "total_price", "status")
)

// Schemas lists every table in load order.
var Schemas = []Schema{UserSchema, ItemSchema, ListingSchema, OrderSchema}

var Users = Table[domain.User]{
	Schema: UserSchema,
	Encode: func(u domain.User) Row {
		return Row{strconv.Itoa(u.ID), u.Username, u.Password}
	},
	Decode: func(r Row) (domain.User, error) {
		f := fields{schema: UserSchema, row: r}
		u := domain.User{
			ID:       f.int("user_id"),
			Username: f.str("username"),
			Password: f.str("password"),
		}
		return u, f.err
	},
}

var Items = Table[domain.Item]{
	Schema: ItemSchema,
	Encode: func(it domain.Item) Row {
		return Row{strconv.Itoa(it.ID), it.Name, string(it.Category), it.Brand, string(it.Condition), it.Description}
	},
	Decode: func(r Row) (domain.Item, error) {
		f := fields{schema: ItemSchema, row: r}
		it := domain.Item{
			ID:          f.int("item_id"),
			Name:        f.str("name"),
			Category:    f.category("category"),
			Brand:       f.str("brand"),
			Condition:   f.condition("condition"),
			Description: f.str("description"),
		}
		return it, f.err
	},
}

var Listings = Table[domain.Listing]{
	Schema: ListingSchema,
	Encode: func(l domain.Listing) Row {
		return Row{
			strconv.Itoa(l.ID),
			strconv.Itoa(l.ItemID),
			strconv.Itoa(l.SellerID),
			l.Price.StringFixed(2),
			strconv.Itoa(l.Quantity),
			FormatBool(l.Active),
			FormatBool(l.Deleted),
		}
	},
	Decode: func(r Row) (domain.Listing, error) {
		f := fields{schema: ListingSchema, row: r}
		l := domain.Listing{
			ID:       f.int("listing_id"),
			ItemID:   f.int("item_id"),
			SellerID: f.int("seller_id"),
			Price:    f.money("price"),
			Quantity: f.intOr("quantity", 0),
			Active:   f.bool("active", true),
			Deleted:  f.bool("deleted", false),
		}
		return l, f.err
	},
}

var Orders = Table[domain.Order]{
	Schema: OrderSchema,
	Encode: func(o domain.Order) Row {
		return Row{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.BuyerID),
			strconv.Itoa(o.SellerID),
			strconv.Itoa(o.ListingID),
			o.UnitPrice.StringFixed(2),
			strconv.Itoa(o.Quantity),
			o.TotalPrice.StringFixed(2),
			string(o.Status),
		}
	},
	Decode: func(r Row) (domain.Order, error) {
		f := fields{schema: OrderSchema, row: r}
		o := domain.Order{
			ID:         f.int("order_id"),
			BuyerID:    f.int("buyer_id"),
			SellerID:   f.int("seller_id"),
			ListingID:  f.int("listing_id"),
			UnitPrice:  f.money("unit_price"),
			Quantity:   f.intOr("quantity", 0),
			TotalPrice: f.money("total_price"),
			Status:     domain.OrderStatus(f.str("status")),
		}
		if o.Status == "" {
			o.Status = domain.OrderCompleted
		}
		return o, f.err
	},
}

// FormatBool writes the literal True/False used in every table.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool accepts true/1/yes/y in any case; anything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// fields decodes named columns of one row and keeps the first error.
type fields struct {
	schema Schema
	row    Row
	err    error
}

func (f *fields) str(name string) string {
	i := f.schema.col(name)
	if i < 0 || i >= len(f.row) {
		return ""
	}
	return f.row[i]
}

func (f *fields) fail(name, v string, what string) {
	if f.err == nil {
		f.err = errors.Errorf("column %s: %q is not %s", name, v, what)
	}
}

func (f *fields) int(name string) int {
	v := strings.TrimSpace(f.str(name))
	n, err := strconv.Atoi(v)
	if err != nil {
		f.fail(name, v, "an integer")
	}
	return n
}

func (f *fields) intOr(name string, def int) int {
	if strings.TrimSpace(f.str(name)) == "" {
		return def
	}
	return f.int(name)
}

func (f *fields) bool(name string, def bool) bool {
	v := f.str(name)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return ParseBool(v)
}

func (f *fields) money(name string) decimal.Decimal {
	v := strings.TrimSpace(f.str(name))
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.fail(name, v, "a decimal")
	}
	return d
}

func (f *fields) category(name string) domain.Category {
	c := domain.Category(f.str(name))
	if !c.Valid() {
		f.fail(name, string(c), "a known category")
	}
	return c
}

func (f *fields) condition(name string) domain.Condition {
	c := domain.Condition(f.str(name))
	if !c.Valid() {
		f.fail(name, string(c), "a known condition")
	}
	return c
}
