package cli

import (
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/log"
	"marketplace/internal/services"
)

type ListingHandler struct {
	Catalog *services.CatalogService
}

// Active prints every listing a buyer can purchase and returns them.
func (h *ListingHandler) Active(t *Term) []services.ListingView {
	active := h.Catalog.ListActive()
	if len(active) == 0 {
		t.Println("No active listings.")
		return nil
	}
	t.Printf("%d active listing(s):\n", len(active))
	t.listings(active)
	return active
}

func (h *ListingHandler) SearchCategory(t *Term) error {
	t.Println("Available categories:", domain.CategoryNames())
	c, err := t.Category("Category")
	if err != nil {
		return err
	}
	found := h.Catalog.SearchByCategory(string(c))
	if len(found) == 0 {
		t.Println("No listings in this category.")
		return nil
	}
	t.Printf("Found %d listing(s):\n", len(found))
	t.listings(found)
	return nil
}

func (h *ListingHandler) SearchName(t *Term) error {
	name, err := t.Text("Full item name (exactly)", false)
	if err != nil {
		return err
	}
	found := h.Catalog.SearchByFullName(name)
	if len(found) == 0 {
		t.Printf("No listings of %s found.\n", name)
		return nil
	}
	t.Printf("Found %d listing(s):\n", len(found))
	t.listings(found)
	return nil
}

func (h *ListingHandler) Post(t *Term, sess services.Session) error {
	var in services.ListingInput
	var err error
	if in.Category, err = t.Category(fmt.Sprintf("Category [%s]", domain.CategoryNames())); err != nil {
		return err
	}
	if in.Name, err = t.Text("Item name (full)", false); err != nil {
		return err
	}
	if in.Condition, err = t.Condition(fmt.Sprintf("Condition [%s]", domain.ConditionNames())); err != nil {
		return err
	}
	if in.Brand, err = t.Text("Brand", false); err != nil {
		return err
	}
	if in.Description, err = t.Text("Description (optional, can be empty)", true); err != nil {
		return err
	}

	hint := h.Catalog.SuggestPrice(in.Category, in.Condition)
	t.Printf("Suggested price: $%s (range $%s - $%s)\n",
		hint.Suggested.StringFixed(2), hint.Low.StringFixed(2), hint.High.StringFixed(2))
	if in.Price, err = t.Price("Price", hint.Suggested); err != nil {
		return err
	}
	if in.Quantity, err = t.Int("Quantity", 1); err != nil {
		return err
	}

	id, err := h.Catalog.CreateListing(sess.User.ID, in)
	if err != nil {
		t.report("listing.create", err, sessionFields(sess, nil))
		return nil
	}
	log.Audit("listing.create", sessionFields(sess, map[string]any{"listing_id": id}))
	if v, err := h.Catalog.GetListing(id); err == nil {
		t.Printf("Posted listing %d for %s at $%s x%d\n", v.ID, v.Item.Name, v.Price.StringFixed(2), v.Quantity)
	}
	return nil
}

func (h *ListingHandler) Mine(t *Term, sess services.Session) {
	mine := h.Catalog.ListMine(sess.User.ID)
	if len(mine) == 0 {
		t.Println("You have no listings yet.")
		return
	}
	t.Printf("All your listings (%d):\n", len(mine))
	for _, v := range mine {
		t.Println(listingStatusLine(v))
	}
}

func (h *ListingHandler) Delete(t *Term, sess services.Session) error {
	var candidates []services.ListingView
	for _, v := range h.Catalog.ListMine(sess.User.ID) {
		if !v.Deleted && v.Active {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		t.Println("You have no active listings to delete.")
		return nil
	}
	t.Println("Your active listings:")
	t.listings(candidates)

	id, err := t.Int("Listing ID to delete", 1)
	if err != nil {
		return err
	}
	fields := sessionFields(sess, map[string]any{"listing_id": id})
	if err := h.Catalog.SoftDelete(id, sess.User.ID); err != nil {
		t.report("listing.delete", err, fields)
		return nil
	}
	log.Audit("listing.delete", fields)
	t.Println("Listing deleted (soft).")
	return nil
}
