// Package audit records every mutation performed through the entity
// services. The log is append-only: nothing in the application updates or
// deletes rows, and a failed write propagates to the mutating caller because
// the log is the only record of what happened.
package audit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, action, details string) error {
	_, err := s.DB.Exec(ctx, "INSERT INTO audit_log (action, details) VALUES ($1, $2)", action, details)
	return err
}

// RecordTx writes an entry inside a caller-owned transaction so a cascade and
// its audit trail commit or roll back together.
func (s *Service) RecordTx(ctx context.Context, tx pgx.Tx, action, details string) error {
	_, err := tx.Exec(ctx, "INSERT INTO audit_log (action, details) VALUES ($1, $2)", action, details)
	return err
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, created_at, action, details
    FROM audit_log
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Action, &entry.Details); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
