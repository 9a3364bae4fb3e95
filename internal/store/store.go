// Package store persists typed records as header-first tables, one table
// per record kind. A Store only moves rows of text; Table codecs turn rows
// into domain types at this boundary so no raw strings leak further in.
package store

import (
	"github.com/pkg/errors"

	"marketplace/internal/domain"
)

// Row is one record with values in Schema.Header order.
type Row []string

type Schema struct {
	Name   string
	Header []string
	index  map[string]int
}

func NewSchema(name string, header ...string) Schema {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return Schema{Name: name, Header: header, index: idx}
}

// IDColumn is the first header column; rows with an empty id are skipped on load.
func (s Schema) IDColumn() string { return s.Header[0] }

func (s Schema) col(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Store is a whole-table persistence backend.
type Store interface {
	// Load returns every persisted row of s in stored order, creating the
	// empty table (header only) when it does not exist yet.
	Load(s Schema) ([]Row, error)
	// Save replaces the full contents of s with rows.
	Save(s Schema, rows []Row) error
	Close() error
}

var (
	_ Store = (*CSVStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// Table pairs a Schema with the codec for one record kind.
type Table[T any] struct {
	Schema
	Encode func(T) Row
	Decode func(Row) (T, error)
}

func LoadAll[T any](st Store, t Table[T]) ([]T, error) {
	rows, err := st.Load(t.Schema)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for i, r := range rows {
		rec, err := t.Decode(r)
		if err != nil {
			return nil, errors.Wrapf(domain.ErrStorage, "%s row %d: %v", t.Name, i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func SaveAll[T any](st Store, t Table[T], recs []T) error {
	rows := make([]Row, len(recs))
	for i, rec := range recs {
		rows[i] = t.Encode(rec)
	}
	return st.Save(t.Schema, rows)
}

func storageErr(err error, format string, args ...any) error {
	return errors.Wrapf(domain.ErrStorage, format+": %v", append(args, err)...)
}
