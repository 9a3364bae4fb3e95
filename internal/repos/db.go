package repos

import (
	"github.com/pkg/errors"

	"marketplace/internal/domain"
	"marketplace/internal/store"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// OpenStore opens the configured backend and makes sure every table exists.
func OpenStore(backend, dataDir, dsn string) (store.Store, error) {
	switch backend {
	case "", BackendCSV:
		st, err := store.NewCSV(dataDir)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureTables(store.Schemas...); err != nil {
			return nil, err
		}
		return st, nil
	case BackendSQLite:
		st, err := store.OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureTables(store.Schemas...); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.Wrapf(domain.ErrValidation, "unknown storage backend %q (want %s or %s)", backend, BackendCSV, BackendSQLite)
	}
}

// Repos is the application context: it owns the four repositories and the
// store behind them. Services receive it by reference.
type Repos struct {
	Store    store.Store
	Users    *UserRepo
	Items    *ItemRepo
	Listings *ListingRepo
	Orders   *OrderRepo
}

func New(st store.Store) *Repos {
	return &Repos{
		Store:    st,
		Users:    NewUserRepo(st),
		Items:    NewItemRepo(st),
		Listings: NewListingRepo(st),
		Orders:   NewOrderRepo(st),
	}
}

// Open builds the repositories and loads every kind once.
func Open(st store.Store) (*Repos, error) {
	r := New(st)
	loaders := []interface{ Load() error }{r.Users, r.Items, r.Listings, r.Orders}
	for _, l := range loaders {
		if err := l.Load(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Repos) PersistAll() error {
	persisters := []interface{ Persist() error }{r.Users, r.Items, r.Listings, r.Orders}
	for _, p := range persisters {
		if err := p.Persist(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repos) Close() error { return r.Store.Close() }
