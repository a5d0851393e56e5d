package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pomobar/internal/model"
)

func (s *Store) RecordCompletion(ctx context.Context, record model.CompletionRecord) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO completions (
			id, kind, completion_count, is_long_break, focus_minutes, day, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		string(record.Kind),
		record.Count,
		record.IsLongBreak,
		record.FocusMinutes,
		record.Day,
		formatTime(record.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	return nil
}

func (s *Store) GetCompletion(ctx context.Context, id string) (*model.CompletionRecord, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, kind, completion_count, is_long_break, focus_minutes, day, completed_at
		 FROM completions
		 WHERE id = ?`,
		id,
	)
	return scanCompletion(row)
}

func (s *Store) ListCompletions(ctx context.Context, limit int) ([]model.CompletionRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, kind, completion_count, is_long_break, focus_minutes, day, completed_at
		 FROM completions
		 ORDER BY completed_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	records := make([]model.CompletionRecord, 0, limit)
	for rows.Next() {
		record, scanErr := scanCompletion(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCompletion(s scanner) (*model.CompletionRecord, error) {
	record := model.CompletionRecord{}
	var kind string
	var completedAt string
	err := s.Scan(
		&record.ID,
		&kind,
		&record.Count,
		&record.IsLongBreak,
		&record.FocusMinutes,
		&record.Day,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan completion: %w", err)
	}
	record.Kind = model.CompletionKind(kind)

	parsed, err := parseTime(completedAt)
	if err != nil {
		return nil, fmt.Errorf("parse completion completed_at: %w", err)
	}
	record.CompletedAt = parsed
	return &record, nil
}
