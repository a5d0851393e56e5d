package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pomobar/internal/model"
)

// LoadTodaySession builds the live session for today from the stored
// counters. The cycle counter always starts at zero.
func (s *Store) LoadTodaySession(ctx context.Context, today string) (model.Session, error) {
	stats, err := s.GetDailyStats(ctx, today)
	if err != nil {
		return model.NewSession(today), err
	}
	return model.Session{
		PomodorosCompletedToday: stats.CompletedPomodoros,
		TotalFocusMinsToday:     stats.TotalFocusMinutes,
		PomodorosInCycle:        0,
		LastDate:                today,
	}, nil
}

func (s *Store) SaveSession(ctx context.Context, session model.Session) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO daily_stats (date, completed_pomodoros, total_focus_minutes, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		     completed_pomodoros = excluded.completed_pomodoros,
		     total_focus_minutes = excluded.total_focus_minutes,
		     updated_at = excluded.updated_at`,
		session.LastDate,
		session.PomodorosCompletedToday,
		session.TotalFocusMinsToday,
		formatTime(s.now()),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetDailyStats returns zero-valued stats when nothing is stored for date.
func (s *Store) GetDailyStats(ctx context.Context, date string) (model.DailyStats, error) {
	stats := model.NewDailyStats(date)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT completed_pomodoros, total_focus_minutes FROM daily_stats WHERE date = ?`,
		date,
	).Scan(&stats.CompletedPomodoros, &stats.TotalFocusMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewDailyStats(date), nil
	}
	if err != nil {
		return model.NewDailyStats(date), fmt.Errorf("get daily stats: %w", err)
	}
	return stats, nil
}

// StatsRange lists the stored days between from and to inclusive, oldest first.
func (s *Store) StatsRange(ctx context.Context, from, to string) ([]model.DailyStats, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT date, completed_pomodoros, total_focus_minutes
		 FROM daily_stats
		 WHERE date >= ? AND date <= ?
		 ORDER BY date ASC`,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("list daily stats: %w", err)
	}
	defer rows.Close()

	days := make([]model.DailyStats, 0)
	for rows.Next() {
		var stats model.DailyStats
		if err := rows.Scan(&stats.Date, &stats.CompletedPomodoros, &stats.TotalFocusMinutes); err != nil {
			return nil, fmt.Errorf("scan daily stats: %w", err)
		}
		days = append(days, stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily stats: %w", err)
	}
	return days, nil
}

func (s *Store) ResetDay(ctx context.Context, date string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM daily_stats WHERE date = ?`, date); err != nil {
		return fmt.Errorf("reset day: %w", err)
	}
	return nil
}
