package database

import (
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type sqliteDialect struct{}

func (sqliteDialect) Name() string {
	return "sqlite"
}

func (sqliteDialect) DriverName() string {
	return "sqlite3"
}

// DSN accepts a plain path or sqlite://path and enables WAL unless options are given.
func (sqliteDialect) DSN(url string) string {
	path := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(path, "?") {
		path += "?cache=shared&_journal_mode=WAL"
	}
	return path
}

func (sqliteDialect) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (sqliteDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
