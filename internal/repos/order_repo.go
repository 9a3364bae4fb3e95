package repos

import (
	"marketplace/internal/domain"
	"marketplace/internal/store"
)

type OrderRepo struct{ *Repo[domain.Order] }

func NewOrderRepo(st store.Store) *OrderRepo {
	return &OrderRepo{newRepo(st, store.Orders,
		func(o domain.Order) int { return o.ID },
		func(o *domain.Order, id int) { o.ID = id },
	)}
}

// ByBuyer returns the orders placed by userID, oldest first.
func (r *OrderRepo) ByBuyer(userID int) []domain.Order {
	return r.Filter(func(o domain.Order) bool { return o.BuyerID == userID })
}

// BySeller returns the orders against userID's listings, oldest first.
func (r *OrderRepo) BySeller(userID int) []domain.Order {
	return r.Filter(func(o domain.Order) bool { return o.SellerID == userID })
}
