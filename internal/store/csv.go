package store

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"marketplace/internal/domain"
)

const bom = "\uFEFF"

// CSVStore keeps each table in <dir>/<name>.csv, UTF-8, header row first.
type CSVStore struct {
	dir string
}

func NewCSV(dir string) (*CSVStore, error) {
	s := &CSVStore{dir: dir}
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CSVStore) Dir() string { return s.dir }

func (s *CSVStore) Path(sc Schema) string { return filepath.Join(s.dir, sc.Name+".csv") }

func (s *CSVStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return storageErr(err, "create data dir %s", s.dir)
	}
	return nil
}

// EnsureTables creates every missing table file with just its header.
func (s *CSVStore) EnsureTables(schemas ...Schema) error {
	for _, sc := range schemas {
		if err := s.ensure(sc); err != nil {
			return err
		}
	}
	return nil
}

func (s *CSVStore) ensure(sc Schema) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	_, err := os.Stat(s.Path(sc))
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return storageErr(err, "stat %s", s.Path(sc))
	}
	return s.Save(sc, nil)
}

func (s *CSVStore) Load(sc Schema) ([]Row, error) {
	if err := s.ensure(sc); err != nil {
		return nil, err
	}
	path := s.Path(sc)
	f, err := os.Open(path)
	if err != nil {
		return nil, storageErr(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "read header of %s", path)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	// position of each schema column in the file
	pos := make([]int, len(sc.Header))
	for i, want := range sc.Header {
		pos[i] = -1
		for j, got := range header {
			if strings.TrimSpace(got) == want {
				pos[i] = j
				break
			}
		}
		if pos[i] < 0 {
			return nil, errors.Wrapf(domain.ErrStorage, "%s: missing column %q", path, want)
		}
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, storageErr(err, "read %s", path)
		}
		row := make(Row, len(sc.Header))
		for i, j := range pos {
			if j < len(rec) {
				row[i] = rec[j]
			}
		}
		if strings.TrimSpace(row[0]) == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Save rewrites the whole file through a temp file in the same directory.
func (s *CSVStore) Save(sc Schema, rows []Row) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	path := s.Path(sc)
	tmp, err := os.CreateTemp(s.dir, sc.Name+".*.tmp")
	if err != nil {
		return storageErr(err, "create temp file for %s", path)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return storageErr(err, "chmod %s", tmp.Name())
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(sc.Header); err != nil {
		tmp.Close()
		return storageErr(err, "write %s", path)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			return storageErr(err, "write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return storageErr(err, "flush %s", path)
	}
	if err := tmp.Close(); err != nil {
		return storageErr(err, "close %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return storageErr(err, "replace %s", path)
	}
	return nil
}

func (s *CSVStore) Close() error { return nil }
