package repos

import (
	"marketplace/internal/domain"
	"marketplace/internal/store"
)

type ItemRepo struct{ *Repo[domain.Item] }

func NewItemRepo(st store.Store) *ItemRepo {
	return &ItemRepo{newRepo(st, store.Items,
		func(it domain.Item) int { return it.ID },
		func(it *domain.Item, id int) { it.ID = id },
	)}
}
