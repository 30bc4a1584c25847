// Package history keeps a log of evaluated expressions in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	input TEXT NOT NULL,
	postfix TEXT NOT NULL,
	result TEXT NOT NULL,
	failed INTEGER NOT NULL,
	created INTEGER NOT NULL
)`

type Entry struct {
	ID      int64
	Input   string
	Postfix string
	Result  string
	Failed  bool
	Created time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends e and returns its id. A zero Created is set to now.
func (s *Store) Record(ctx context.Context, e *Entry) (int64, error) {
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	failed := 0
	if e.Failed {
		failed = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (input, postfix, result, failed, created) VALUES (?, ?, ?, ?, ?)`,
		e.Input, e.Postfix, e.Result, failed, e.Created.UnixNano())
	if err != nil {
		return 0, err
	}
	e.ID, err = res.LastInsertId()
	return e.ID, err
}

// Recent returns up to n entries, oldest first.
func (s *Store) Recent(ctx context.Context, n int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, postfix, result, failed, created FROM
		(SELECT * FROM history ORDER BY id DESC LIMIT ?) ORDER BY id`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var failed, created int64
		if err := rows.Scan(&e.ID, &e.Input, &e.Postfix, &e.Result, &failed, &created); err != nil {
			return nil, err
		}
		e.Failed = failed != 0
		e.Created = time.Unix(0, created)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n)
	return n, err
}

// Line returns the input of the i-th entry, counting from zero.
func (s *Store) Line(ctx context.Context, i int) (string, error) {
	var input string
	err := s.db.QueryRowContext(ctx,
		`SELECT input FROM history ORDER BY id LIMIT 1 OFFSET ?`, i).Scan(&input)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("history: no line %d", i)
	}
	return input, err
}

// Lines adapts the store to line-editor history. Writes are ignored:
// lines only enter the history once they have been evaluated and recorded.
type Lines struct {
	Store *Store
	Ctx   context.Context
}

func (l *Lines) Write(s string) (int, error) {
	return l.Len(), nil
}

func (l *Lines) GetLine(i int) (string, error) {
	return l.Store.Line(l.Ctx, i)
}

func (l *Lines) Len() int {
	n, err := l.Store.Count(l.Ctx)
	if err != nil {
		return 0
	}
	return n
}

func (l *Lines) Dump() interface{} {
	entries, err := l.Store.Recent(l.Ctx, l.Len())
	if err != nil {
		return nil
	}
	return entries
}
