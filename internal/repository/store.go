package repository

import (
	"database/sql"
	"time"
)

// Store is the sqlite-backed durable store for settings, per-day statistics
// and the completion history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}
