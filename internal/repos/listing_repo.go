package repos

import (
	"marketplace/internal/domain"
	"marketplace/internal/store"
)

type ListingRepo struct{ *Repo[domain.Listing] }

func NewListingRepo(st store.Store) *ListingRepo {
	return &ListingRepo{newRepo(st, store.Listings,
		func(l domain.Listing) int { return l.ID },
		func(l *domain.Listing, id int) { l.ID = id },
	)}
}

// Available returns listings a buyer can see: not deleted, active, in stock.
func (r *ListingRepo) Available() []domain.Listing {
	return r.Filter(domain.Listing.Available)
}

// BySeller returns every listing of sellerID regardless of state.
func (r *ListingRepo) BySeller(sellerID int) []domain.Listing {
	return r.Filter(func(l domain.Listing) bool { return l.SellerID == sellerID })
}
