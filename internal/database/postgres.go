package database

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type postgresDialect struct{}

func (postgresDialect) Name() string {
	return "postgresql"
}

func (postgresDialect) DriverName() string {
	return "pgx"
}

func (postgresDialect) DSN(url string) string {
	return url
}

func (postgresDialect) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Dollar
}

func (postgresDialect) QuoteIdent(name string) string {
	return pq.QuoteIdentifier(name)
}
