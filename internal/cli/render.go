package cli

import (
	"fmt"

	"marketplace/internal/services"
)

func listingLine(v services.ListingView) string {
	return fmt.Sprintf("- ID: %d | Name: %s | Brand: %s | [%s] (%s) | $%s x%d | seller: %s",
		v.ID, v.Item.Name, v.Item.Brand, v.Item.Category, v.Item.Condition,
		v.Price.StringFixed(2), v.Quantity, v.Seller)
}

func listingStatusLine(v services.ListingView) string {
	return fmt.Sprintf("- ID: %d | Status: %s | Name: %s | Brand: %s | [%s] (%s) | $%s x%d | seller: %s",
		v.ID, v.Status(), v.Item.Name, v.Item.Brand, v.Item.Category, v.Item.Condition,
		v.Price.StringFixed(2), v.Quantity, v.Seller)
}

func orderLine(v services.OrderView) string {
	return fmt.Sprintf("- Order ID: %d | Item: %s | Brand: %s | Qty: %d | Unit: $%s | Total: $%s | Buyer: %s | Seller: %s | Status: %s",
		v.ID, v.ItemName, v.ItemBrand, v.Quantity, v.UnitPrice.StringFixed(2),
		v.TotalPrice.StringFixed(2), v.Buyer, v.Seller, v.Status)
}

func (t *Term) listings(vs []services.ListingView) {
	for _, v := range vs {
		t.Println(listingLine(v))
	}
}

func (t *Term) orders(vs []services.OrderView) {
	for _, v := range vs {
		t.Println(orderLine(v))
	}
}
