// CLAUDE:SUMMARY SQLite word-list source: reads one text column of one table as a newline-delimited list.
package source

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	defaultTable  = "words"
	defaultColumn = "word"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func init() {
	Register(&sqliteSource{})
}

type sqliteSource struct{}

func (sqliteSource) Scheme() string { return "sqlite" }
func (sqliteSource) Description() string {
	return "SQLite table column (sqlite:path?table=words&column=word)"
}

// Open reads every non-NULL value of the configured column. Values holding a
// newline cannot be one line of a word list and are skipped with a warning.
// The database must already exist; it is never created.
func (sqliteSource) Open(ctx context.Context, ident string) (io.ReadCloser, error) {
	path, table, column, err := parseSQLiteIdent(ident)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open word db: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open word db: %w", err)
	}
	defer db.Close()

	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NOT NULL`, column, table, column)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var (
		buf     bytes.Buffer
		skipped int
	)
	for rows.Next() {
		var word []byte
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		if bytes.IndexByte(word, '\n') >= 0 {
			skipped++
			continue
		}
		buf.Write(word)
		buf.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s.%s: %w", table, column, err)
	}
	if skipped > 0 {
		slog.Warn("skipped multi-line values", "table", table, "column", column, "skipped", skipped)
	}
	return io.NopCloser(&buf), nil
}

// parseSQLiteIdent splits "sqlite:path?table=T&column=C".
func parseSQLiteIdent(ident string) (path, table, column string, err error) {
	rest := strings.TrimPrefix(ident, "sqlite:")
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return "", "", "", fmt.Errorf("sqlite source %q: missing database path", ident)
	}

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", "", fmt.Errorf("sqlite source %q: %w", ident, err)
	}
	table, column = defaultTable, defaultColumn
	if v := q.Get("table"); v != "" {
		table = v
	}
	if v := q.Get("column"); v != "" {
		column = v
	}
	if !identRe.MatchString(table) || !identRe.MatchString(column) {
		return "", "", "", fmt.Errorf("sqlite source %q: invalid table or column name", ident)
	}
	return path, table, column, nil
}
