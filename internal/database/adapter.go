// Package database persists generated tables to PostgreSQL, MySQL or SQLite and reads
// them back.
package database

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

var ErrUnsupportedProvider = errors.New("unsupported database provider")

// Dialect holds what differs between providers when writing plain text tables.
type Dialect interface {
	Name() string
	DriverName() string
	// DSN turns a configured connection URL into what the driver expects.
	DSN(url string) string
	Placeholder() squirrel.PlaceholderFormat
	QuoteIdent(name string) string
}

func NewDialect(provider string) (Dialect, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgresDialect{}, nil
	case "mysql":
		return mysqlDialect{}, nil
	case "sqlite", "sqlite3":
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}
