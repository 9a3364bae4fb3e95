package services

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
	"marketplace/internal/validate"
)

type CatalogService struct {
	Repos *repos.Repos
}

func NewCatalogService(r *repos.Repos) *CatalogService {
	return &CatalogService{Repos: r}
}

// ListingInput describes the item and the first listing for it.
type ListingInput struct {
	Category    domain.Category
	Name        string
	Condition   domain.Condition
	Brand       string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// ListingView is a listing joined with its item and seller name.
type ListingView struct {
	domain.Listing
	Item   domain.Item
	Seller string
}

// CreateListing stores a new Item and an active Listing for it and returns
// the listing id. Nothing is written unless every field is valid.
func (s *CatalogService) CreateListing(sellerID int, in ListingInput) (int, error) {
	category := domain.Category(validate.TitleCase(string(in.Category)))
	if !category.Valid() {
		return 0, errors.Wrapf(domain.ErrValidation, "unknown category %q, choose from: %s", in.Category, domain.CategoryNames())
	}
	condition, ok := validate.Condition(string(in.Condition))
	if !ok {
		return 0, errors.Wrapf(domain.ErrValidation, "unknown condition %q, choose from: %s", in.Condition, domain.ConditionNames())
	}
	name := validate.TitleCase(in.Name)
	brand := validate.TitleCase(in.Brand)
	if name == "" || brand == "" {
		return 0, errors.Wrap(domain.ErrValidation, "name and brand cannot be empty")
	}
	if !in.Price.IsPositive() {
		return 0, errors.Wrapf(domain.ErrValidation, "price must be positive, got %s", in.Price)
	}
	price := in.Price.Round(2)
	if !price.IsPositive() {
		return 0, errors.Wrapf(domain.ErrValidation, "price must be at least 0.01, got %s", in.Price)
	}
	if in.Quantity <= 0 {
		return 0, errors.Wrapf(domain.ErrValidation, "quantity must be a positive integer, got %d", in.Quantity)
	}
	if _, err := s.Repos.Users.FindByID(sellerID); err != nil {
		return 0, err
	}

	item := s.Repos.Items.Add(domain.Item{
		Name:        name,
		Category:    category,
		Brand:       brand,
		Condition:   condition,
		Description: validate.TitleCase(in.Description),
	})
	listing := s.Repos.Listings.Add(domain.Listing{
		ItemID:   item.ID,
		SellerID: sellerID,
		Price:    price,
		Quantity: in.Quantity,
		Active:   true,
	})
	if err := s.Repos.Items.Persist(); err != nil {
		return 0, err
	}
	if err := s.Repos.Listings.Persist(); err != nil {
		return 0, err
	}
	return listing.ID, nil
}

func (s *CatalogService) SuggestPrice(category domain.Category, condition domain.Condition) PriceSuggestion {
	return SuggestPrice(category, condition)
}

func (s *CatalogService) view(l domain.Listing) (ListingView, bool) {
	item, err := s.Repos.Items.FindByID(l.ItemID)
	if err != nil {
		return ListingView{}, false
	}
	return ListingView{Listing: l, Item: item, Seller: s.Repos.Users.DisplayName(l.SellerID)}, true
}

func (s *CatalogService) views(ls []domain.Listing, keep func(ListingView) bool) []ListingView {
	out := []ListingView{}
	for _, l := range ls {
		v, ok := s.view(l)
		if !ok {
			continue
		}
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// GetListing returns one listing in any state.
func (s *CatalogService) GetListing(id int) (ListingView, error) {
	l, err := s.Repos.Listings.FindByID(id)
	if err != nil {
		return ListingView{}, err
	}
	v, ok := s.view(l)
	if !ok {
		return ListingView{}, errors.Wrapf(domain.ErrNotFound, "item %d of listing %d", l.ItemID, l.ID)
	}
	return v, nil
}

// ListActive returns listings that are not deleted, active and in stock.
func (s *CatalogService) ListActive() []ListingView {
	return s.views(s.Repos.Listings.Available(), nil)
}

func (s *CatalogService) SearchByCategory(category string) []ListingView {
	want := strings.ToLower(validate.TitleCase(category))
	return s.views(s.Repos.Listings.Available(), func(v ListingView) bool {
		return strings.ToLower(string(v.Item.Category)) == want
	})
}

// SearchByFullName matches the whole item name, not a substring.
func (s *CatalogService) SearchByFullName(name string) []ListingView {
	want := strings.ToLower(validate.TitleCase(name))
	return s.views(s.Repos.Listings.Available(), func(v ListingView) bool {
		return strings.ToLower(v.Item.Name) == want
	})
}

// ListMine returns every listing of sellerID, whatever its state.
func (s *CatalogService) ListMine(sellerID int) []ListingView {
	return s.views(s.Repos.Listings.BySeller(sellerID), nil)
}

// SoftDelete marks the listing deleted and inactive. Only its seller may do
// this, and only once.
func (s *CatalogService) SoftDelete(listingID, requesterID int) error {
	l, err := s.Repos.Listings.FindByID(listingID)
	if err != nil {
		return err
	}
	if l.SellerID != requesterID {
		return errors.Wrapf(domain.ErrAuthorization, "listing %d belongs to another seller", listingID)
	}
	if l.Deleted {
		return errors.Wrapf(domain.ErrInvalidState, "listing %d is already deleted", listingID)
	}
	l.Deleted = true
	l.Active = false
	if err := s.Repos.Listings.Update(l); err != nil {
		return err
	}
	return s.Repos.Listings.Persist()
}
