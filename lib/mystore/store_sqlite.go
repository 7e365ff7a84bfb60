package mystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteStore[T any] struct {
	db   *sql.DB
	kind string
}

func newSqliteStore[T any](c context.Context, path string) (*sqliteStore[T], func(), error) {
	if path == "" {
		return nil, nil, fmt.Errorf("sqlite store requires a database file")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening sqlite database %s: %s", path, err)
	}

	_, err = db.ExecContext(c, `CREATE TABLE IF NOT EXISTS records (
		kind TEXT NOT NULL,
		uid TEXT NOT NULL,
		payload BLOB NOT NULL,
		PRIMARY KEY (kind, uid))`)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("error creating records table: %s", err)
	}

	return &sqliteStore[T]{
			db:   db,
			kind: kindOf[T](),
		}, func() {
			db.Close()
		}, nil
}

func (s *sqliteStore[T]) Put(c context.Context, uid string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity %s with uid %s: %s", s.kind, uid, err)
	}

	_, err = s.db.ExecContext(c, "INSERT OR REPLACE INTO records (kind, uid, payload) VALUES (?, ?, ?)", s.kind, uid, payload)
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *sqliteStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	var payload []byte
	err := s.db.QueryRowContext(c, "SELECT payload FROM records WHERE kind = ? AND uid = ?", s.kind, uid).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return *value, false, nil
		}

		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = json.Unmarshal(payload, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling entity %s with uid %s: %s", s.kind, uid, err)
	}

	return *value, true, nil
}

func (s *sqliteStore[T]) Remove(c context.Context, uid string) error {
	_, err := s.db.ExecContext(c, "DELETE FROM records WHERE kind = ? AND uid = ?", s.kind, uid)
	if err != nil {
		return fmt.Errorf("error removing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *sqliteStore[T]) List(c context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(c, "SELECT payload FROM records WHERE kind = ? ORDER BY uid", s.kind)
	if err != nil {
		return nil, fmt.Errorf("error fetching all entities %s: %s", s.kind, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		var payload []byte
		err = rows.Scan(&payload)
		if err != nil {
			return nil, fmt.Errorf("error scanning entity %s: %s", s.kind, err)
		}

		value := new(T)
		err = json.Unmarshal(payload, value)
		if err != nil {
			return nil, fmt.Errorf("error unmarshalling entity %s: %s", s.kind, err)
		}

		result = append(result, *value)
	}

	return result, rows.Err()
}
