package services

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
)

type OrderService struct {
	Repos *repos.Repos
}

func NewOrderService(r *repos.Repos) *OrderService {
	return &OrderService{Repos: r}
}

// OrderView is an order with the names needed to display it.
type OrderView struct {
	domain.Order
	ItemName  string
	ItemBrand string
	Buyer     string
	Seller    string
}

// Buy takes qty units from a listing and records a completed order.
// All checks run before the listing is touched; a listing that reaches
// zero stock is deactivated in the same step.
func (s *OrderService) Buy(listingID, buyerID, qty int) (domain.Order, error) {
	l, err := s.Repos.Listings.FindByID(listingID)
	if err != nil {
		return domain.Order{}, err
	}
	if _, err := s.Repos.Users.FindByID(buyerID); err != nil {
		return domain.Order{}, err
	}
	switch {
	case l.Deleted:
		return domain.Order{}, errors.Wrapf(domain.ErrInvalidState, "listing %d is deleted", l.ID)
	case !l.Active || l.Quantity <= 0:
		return domain.Order{}, errors.Wrapf(domain.ErrInvalidState, "listing %d is not available", l.ID)
	}
	if l.SellerID == buyerID {
		return domain.Order{}, errors.Wrapf(domain.ErrAuthorization, "cannot buy your own listing %d", l.ID)
	}
	if qty <= 0 {
		return domain.Order{}, errors.Wrapf(domain.ErrValidation, "quantity must be a positive integer, got %d", qty)
	}
	if qty > l.Quantity {
		return domain.Order{}, errors.Wrapf(domain.ErrInvalidState, "only %d left on listing %d, requested %d", l.Quantity, l.ID, qty)
	}

	l.Quantity -= qty
	if l.Quantity == 0 {
		l.Active = false
	}
	if err := s.Repos.Listings.Update(l); err != nil {
		return domain.Order{}, err
	}
	order := s.Repos.Orders.Add(domain.Order{
		BuyerID:    buyerID,
		SellerID:   l.SellerID,
		ListingID:  l.ID,
		UnitPrice:  l.Price,
		Quantity:   qty,
		TotalPrice: l.Price.Mul(decimal.NewFromInt(int64(qty))),
		Status:     domain.OrderCompleted,
	})
	if err := s.Repos.Listings.Persist(); err != nil {
		return domain.Order{}, err
	}
	if err := s.Repos.Orders.Persist(); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// OrdersAsBuyer lists userID's purchases in the order they were made.
func (s *OrderService) OrdersAsBuyer(userID int) []domain.Order {
	return s.Repos.Orders.ByBuyer(userID)
}

// OrdersAsSeller lists purchases of userID's listings in the order they were made.
func (s *OrderService) OrdersAsSeller(userID int) []domain.Order {
	return s.Repos.Orders.BySeller(userID)
}

func (s *OrderService) Describe(orders []domain.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := OrderView{
			Order:     o,
			ItemName:  "(listing missing)",
			ItemBrand: "-",
			Buyer:     s.Repos.Users.DisplayName(o.BuyerID),
			Seller:    s.Repos.Users.DisplayName(o.SellerID),
		}
		if l, err := s.Repos.Listings.FindByID(o.ListingID); err == nil {
			if it, err := s.Repos.Items.FindByID(l.ItemID); err == nil {
				v.ItemName, v.ItemBrand = it.Name, it.Brand
			}
		}
		out = append(out, v)
	}
	return out
}
