package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pagegrid/pagegrid/model"
)

// Store wraps a SQLite database holding reconstructed rows.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path. Use
// ":memory:" for a throwaway in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Column describes one table column.
type Column struct {
	Name string
	Type string // SQLite type, e.g. "text", "real"
}

// EnsureTable creates the table if it does not exist, with an integer
// primary key named id plus the given columns. An existing table is
// left untouched, whatever its schema.
func (s *Store) EnsureTable(name string, columns []Column) error {
	specs := make([]string, 0, len(columns))
	for _, col := range columns {
		specs = append(specs, fmt.Sprintf("%s %s", quoteIdent(col.Name), col.Type))
	}

	query := fmt.Sprintf("create table if not exists %s (id integer primary key, %s)",
		quoteIdent(name), strings.Join(specs, ", "))
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating table %s: %w", name, err)
	}
	return nil
}

// InsertOptions controls how a row's keys and values map onto columns.
type InsertOptions struct {
	// ColumnNames overrides the derived column name for specific keys.
	// Keys not listed fall back to ColumnName's default derivation.
	ColumnNames map[string]string

	// Converters transforms specific keys' values before storage, e.g.
	// parsing a price string into a number.
	Converters map[string]func(string) (any, error)

	// UpsertUniqueColumns lists column names that identify a row. When
	// set, an insert first looks for an existing row with the same
	// values in these columns: one match returns its id without
	// inserting, several matches is an error.
	UpsertUniqueColumns []string
}

// ColumnName derives a column name from a header key: overridden if
// listed, otherwise lowercased with spaces turned into underscores.
func ColumnName(key string, overrides map[string]string) string {
	if name, ok := overrides[key]; ok {
		return name
	}
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}

// InsertRow inserts one row of already-stringified values and returns
// the row id. Keys are visited in sorted order so placeholder binding
// is deterministic.
func (s *Store) InsertRow(table string, row map[string]string, opts InsertOptions) (int64, error) {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	colNames := make([]string, 0, len(keys))
	values := make([]any, 0, len(keys))
	for _, key := range keys {
		colNames = append(colNames, ColumnName(key, opts.ColumnNames))

		var value any = row[key]
		if convert, ok := opts.Converters[key]; ok {
			converted, err := convert(row[key])
			if err != nil {
				return 0, fmt.Errorf("converting value for %q: %w", key, err)
			}
			value = converted
		}
		values = append(values, value)
	}

	if len(opts.UpsertUniqueColumns) > 0 {
		id, found, err := s.findExisting(table, colNames, values, opts.UpsertUniqueColumns)
		if err != nil {
			return 0, err
		}
		if found {
			return id, nil
		}
	}

	quoted := make([]string, len(colNames))
	placeholders := make([]string, len(colNames))
	for i, name := range colNames {
		quoted[i] = quoteIdent(name)
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("insert into %s (%s) values (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	result, err := s.db.Exec(query, values...)
	if err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", table, err)
	}
	return result.LastInsertId()
}

// findExisting looks up a row matching the unique columns. It reports
// an error when the unique columns are not a subset of the row's
// columns or when more than one row matches.
func (s *Store) findExisting(table string, colNames []string, values []any, uniqueCols []string) (int64, bool, error) {
	present := make(map[string]int, len(colNames))
	for i, name := range colNames {
		present[name] = i
	}

	var clauses []string
	var args []any
	for _, col := range uniqueCols {
		i, ok := present[col]
		if !ok {
			return 0, false, fmt.Errorf("upsert column %q not among row columns", col)
		}
		clauses = append(clauses, fmt.Sprintf("%s = ?", quoteIdent(col)))
		args = append(args, values[i])
	}

	query := fmt.Sprintf("select id from %s where %s limit 2",
		quoteIdent(table), strings.Join(clauses, " and "))
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return 0, false, fmt.Errorf("querying %s for existing row: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, false, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, false, err
	}

	switch len(ids) {
	case 0:
		return 0, false, nil
	case 1:
		return ids[0], true, nil
	default:
		return 0, false, fmt.Errorf("non-unique row in table %s", table)
	}
}

// SaveRows ensures a table with one text column per header exists, then
// inserts every row, returning the row ids in order. Row fragments are
// stringified with their bold marking (see model.TextFragment.String).
func (s *Store) SaveRows(table string, headers []string, rows []model.Row, opts InsertOptions) ([]int64, error) {
	columns := make([]Column, 0, len(headers))
	for _, header := range headers {
		columns = append(columns, Column{
			Name: ColumnName(header, opts.ColumnNames),
			Type: "text",
		})
	}
	if err := s.EnsureTable(table, columns); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for i, row := range rows {
		id, err := s.InsertRow(table, row.Strings(), opts)
		if err != nil {
			return ids, fmt.Errorf("row %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// quoteIdent quotes an SQL identifier, escaping embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
