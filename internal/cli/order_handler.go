package cli

import (
	"marketplace/internal/log"
	"marketplace/internal/services"
)

type OrderHandler struct {
	Orders   *services.OrderService
	Listings *ListingHandler
}

func (h *OrderHandler) Buy(t *Term, sess services.Session) error {
	if len(h.Listings.Active(t)) == 0 {
		return nil
	}
	id, err := t.Int("Enter Listing ID to buy", 1)
	if err != nil {
		return err
	}
	qty, err := t.Int("Quantity", 1)
	if err != nil {
		return err
	}
	fields := sessionFields(sess, map[string]any{"listing_id": id, "quantity": qty})
	o, err := h.Orders.Buy(id, sess.User.ID, qty)
	if err != nil {
		t.report("order.place", err, fields)
		return nil
	}
	fields["order_id"] = o.ID
	fields["total"] = o.TotalPrice.StringFixed(2)
	log.Audit("order.place", fields)
	t.Printf("Order %d created: $%s for %d unit(s).\nArrange offline payment/delivery.\n",
		o.ID, o.TotalPrice.StringFixed(2), o.Quantity)
	return nil
}

func (h *OrderHandler) AsBuyer(t *Term, sess services.Session) {
	orders := h.Orders.OrdersAsBuyer(sess.User.ID)
	if len(orders) == 0 {
		t.Println("You have no orders as buyer.")
		return
	}
	t.Printf("You have %d order(s) as buyer:\n", len(orders))
	t.orders(h.Orders.Describe(orders))
}

func (h *OrderHandler) AsSeller(t *Term, sess services.Session) {
	orders := h.Orders.OrdersAsSeller(sess.User.ID)
	if len(orders) == 0 {
		t.Println("No orders for your listings yet.")
		return
	}
	t.Printf("You have %d order(s) for your listings:\n", len(orders))
	t.orders(h.Orders.Describe(orders))
}
