package repos

import (
	"github.com/pkg/errors"

	"marketplace/internal/domain"
	"marketplace/internal/store"
)

// Repo is an in-memory, insertion-ordered collection of one record kind,
// loaded once from a Store and written back in full by Persist.
// Records are handed out by value; callers change them through Update.
type Repo[T any] struct {
	st    store.Store
	table store.Table[T]
	id    func(T) int
	setID func(*T, int)
	recs  []T
}

func newRepo[T any](st store.Store, table store.Table[T], id func(T) int, setID func(*T, int)) *Repo[T] {
	return &Repo[T]{st: st, table: table, id: id, setID: setID}
}

// Load replaces the in-memory records with the persisted ones.
func (r *Repo[T]) Load() error {
	recs, err := store.LoadAll(r.st, r.table)
	if err != nil {
		return err
	}
	r.recs = recs
	return nil
}

func (r *Repo[T]) All() []T {
	out := make([]T, len(r.recs))
	copy(out, r.recs)
	return out
}

func (r *Repo[T]) Len() int { return len(r.recs) }

// Filter returns the records matching keep, in insertion order.
func (r *Repo[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, rec := range r.recs {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (r *Repo[T]) index(id int) int {
	for i, rec := range r.recs {
		if r.id(rec) == id {
			return i
		}
	}
	return -1
}

func (r *Repo[T]) FindByID(id int) (T, error) {
	i := r.index(id)
	if i < 0 {
		var zero T
		return zero, errors.Wrapf(domain.ErrNotFound, "%s %d", r.kind(), id)
	}
	return r.recs[i], nil
}

// NextID is one more than the largest id in use, or 1 when empty.
func (r *Repo[T]) NextID() int {
	top := 0
	for _, rec := range r.recs {
		if id := r.id(rec); id > top {
			top = id
		}
	}
	return top + 1
}

// Add assigns the next id to rec, appends it and returns the stored copy.
func (r *Repo[T]) Add(rec T) T {
	r.setID(&rec, r.NextID())
	r.recs = append(r.recs, rec)
	return rec
}

// Update replaces the record with the same id.
func (r *Repo[T]) Update(rec T) error {
	i := r.index(r.id(rec))
	if i < 0 {
		return errors.Wrapf(domain.ErrNotFound, "%s %d", r.kind(), r.id(rec))
	}
	r.recs[i] = rec
	return nil
}

func (r *Repo[T]) Persist() error {
	return store.SaveAll(r.st, r.table, r.recs)
}

// kind is the singular record name used in error messages ("listing").
func (r *Repo[T]) kind() string {
	name := r.table.Name
	if len(name) > 1 && name[len(name)-1] == 's' {
		return name[:len(name)-1]
	}
	return name
}
