package cli

import (
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ListingHandler *ListingHandler
	OrderHandler   *OrderHandler
}

func NewDeps(r *repos.Repos, pw services.PasswordManager) *Deps {
	authSvc := services.NewAuthService(r.Users, pw)
	catalogSvc := services.NewCatalogService(r)
	orderSvc := services.NewOrderService(r)

	listings := &ListingHandler{Catalog: catalogSvc}
	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ListingHandler: listings,
		OrderHandler:   &OrderHandler{Orders: orderSvc, Listings: listings},
	}
}

func sessionFields(sess services.Session, extra map[string]any) map[string]any {
	f := map[string]any{"session_id": sess.ID, "user_id": sess.User.ID}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
