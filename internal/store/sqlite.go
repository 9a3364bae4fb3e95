package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the same tables in a single SQLite file. Every column
// is TEXT holding exactly what the CSV backend would write, so the two
// backends are interchangeable.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, storageErr(err, "open sqlite %s", dsn)
	}
	// one connection: ":memory:" databases are per-connection
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, storageErr(err, "ping sqlite %s", dsn)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) DB() *sqlx.DB { return s.db }

func quote(ident string) string { return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"` }

func createStmt(sc Schema) string {
	cols := make([]string, len(sc.Header))
	for i, h := range sc.Header {
		cols[i] = quote(h) + ` TEXT NOT NULL DEFAULT ''`
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s)`, quote(sc.Name), strings.Join(cols, ", "))
}

func columnList(sc Schema) string {
	cols := make([]string, len(sc.Header))
	for i, h := range sc.Header {
		cols[i] = quote(h)
	}
	return strings.Join(cols, ", ")
}

// EnsureTables creates every missing table.
func (s *SQLiteStore) EnsureTables(schemas ...Schema) error {
	for _, sc := range schemas {
		if _, err := s.db.Exec(createStmt(sc)); err != nil {
			return storageErr(err, "create table %s", sc.Name)
		}
	}
	return nil
}

func (s *SQLiteStore) Load(sc Schema) ([]Row, error) {
	if err := s.EnsureTables(sc); err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`, columnList(sc), quote(sc.Name))
	rs, err := s.db.Queryx(q)
	if err != nil {
		return nil, storageErr(err, "query %s", sc.Name)
	}
	defer rs.Close()

	var rows []Row
	for rs.Next() {
		vals, err := rs.SliceScan()
		if err != nil {
			return nil, storageErr(err, "scan %s", sc.Name)
		}
		row := make(Row, len(vals))
		for i, v := range vals {
			row[i] = text(v)
		}
		if strings.TrimSpace(row[0]) == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, storageErr(err, "iterate %s", sc.Name)
	}
	return rows, nil
}

// Save swaps the table contents inside one transaction.
func (s *SQLiteStore) Save(sc Schema, rows []Row) error {
	if err := s.EnsureTables(sc); err != nil {
		return err
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return storageErr(err, "begin %s", sc.Name)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM ` + quote(sc.Name)); err != nil {
		return storageErr(err, "clear %s", sc.Name)
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(sc.Header)), ", ")
	stmt, err := tx.Preparex(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, quote(sc.Name), columnList(sc), marks))
	if err != nil {
		return storageErr(err, "prepare insert %s", sc.Name)
	}
	defer stmt.Close()
	for _, row := range rows {
		args := make([]any, len(sc.Header))
		for i := range args {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return storageErr(err, "insert %s", sc.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr(err, "commit %s", sc.Name)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
