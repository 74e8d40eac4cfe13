package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const DefaultBatchSize = 500

// DB is a connection together with the dialect of its provider.
type DB struct {
	*sqlx.DB
	dialect Dialect
}

// Open connects to the database of the given provider and verifies the connection.
func Open(ctx context.Context, provider, url string) (*DB, error) {
	d, err := NewDialect(provider)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.ConnectContext(ctx, d.DriverName(), d.DSN(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", d.Name(), err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &DB{DB: db, dialect: d}, nil
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func builder(d Dialect) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

func DropTableSQL(d Dialect, name string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(name))
}

// CreateTableSQL declares every column as TEXT so any generated value fits.
func CreateTableSQL(d Dialect, t *table.Table) string {
	sql := fmt.Sprintf("CREATE TABLE %s (", d.QuoteIdent(t.Name))
	for i, name := range t.Columns() {
		if i > 0 {
			sql += ", "
		}
		sql += d.QuoteIdent(name) + " TEXT"
	}
	return sql + ")"
}

// InsertSQL builds one multi-row INSERT for rows [from, to). Values are written in their
// text form; null stays NULL.
func InsertSQL(d Dialect, t *table.Table, from, to int) (string, []any, error) {
	names := t.Columns()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = d.QuoteIdent(name)
	}

	q := builder(d).Insert(d.QuoteIdent(t.Name)).Columns(quoted...)
	for row := from; row < to; row++ {
		values := t.Row(row)
		args := make([]any, len(values))
		for i, v := range values {
			if !table.IsNull(v) {
				args[i] = table.Format(v)
			}
		}
		q = q.Values(args...)
	}
	return q.ToSql()
}

// Writer replaces tables in a database with the contents of generated tables.
type Writer struct {
	db    *DB
	batch int
	log   *zap.Logger
}

func NewWriter(db *DB, batch int, log *zap.Logger) *Writer {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{db: db, batch: batch, log: log}
}

// WriteTable drops and recreates the table, then inserts all rows in batches inside a
// single transaction. It returns the number of rows written.
func (w *Writer) WriteTable(ctx context.Context, t *table.Table) (int, error) {
	if t.Width() == 0 {
		return 0, fmt.Errorf("table %q has no columns", t.Name)
	}
	d := w.db.dialect

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, DropTableSQL(d, t.Name)); err != nil {
		return 0, fmt.Errorf("failed to drop table %q: %w", t.Name, err)
	}
	if _, err := tx.ExecContext(ctx, CreateTableSQL(d, t)); err != nil {
		return 0, fmt.Errorf("failed to create table %q: %w", t.Name, err)
	}

	for from := 0; from < t.Len(); from += w.batch {
		to := from + w.batch
		if to > t.Len() {
			to = t.Len()
		}
		query, args, err := InsertSQL(d, t, from, to)
		if err != nil {
			return 0, fmt.Errorf("failed to build insert for %q: %w", t.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert rows %d-%d into %q: %w", from, to-1, t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit table %q: %w", t.Name, err)
	}
	w.log.Info("table written",
		zap.String("provider", d.Name()),
		zap.String("table", t.Name),
		zap.Int("rows", t.Len()),
	)
	return t.Len(), nil
}

// ReadTable loads a whole table. Values come back as strings; NULL becomes nil.
func ReadTable(ctx context.Context, db *DB, name string) (*table.Table, error) {
	query, args, err := builder(db.dialect).Select("*").From(db.dialect.QuoteIdent(name)).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	data := make([][]any, len(columns))
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", name, err)
		}
		for i, v := range values {
			data[i] = append(data[i], text(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	t := table.New(name)
	for i, col := range columns {
		values := data[i]
		if values == nil {
			values = []any{}
		}
		if err := t.Append(col, values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func text(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	default:
		return table.Format(x)
	}
}
