package repository

import (
	"context"
	"errors"
	"fmt"

	"study_planner/internal/model"

	"github.com/jackc/pgx/v5"
)

// ScheduleRepository defines operations for schedule data
type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	FindAll(ctx context.Context) ([]model.Schedule, error)
	FindEarliestForDay(ctx context.Context, day string) (*model.ClosestSchedule, error)
}

type scheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Create inserts a new schedule entry and fills in its assigned id
func (r *scheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	sql := `INSERT INTO schedules (subject, day, time, notes)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, s.Subject, s.Day, s.Time, s.Notes).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// FindAll retrieves every schedule entry ordered by day rank (Senin=1 ..
// Sabtu=6, anything else last) and then by time
func (r *scheduleRepository) FindAll(ctx context.Context) ([]model.Schedule, error) {
	sql := `SELECT id, subject, day, time, notes FROM schedules
            ORDER BY CASE day
                WHEN 'Senin' THEN 1 WHEN 'Selasa' THEN 2 WHEN 'Rabu' THEN 3
                WHEN 'Kamis' THEN 4 WHEN 'Jumat' THEN 5 WHEN 'Sabtu' THEN 6
                ELSE 7
            END, time`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		var s model.Schedule
		if err := rows.Scan(&s.ID, &s.Subject, &s.Day, &s.Time, &s.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}
	return schedules, nil
}

// FindEarliestForDay retrieves the earliest-time schedule for the given
// day name, or nil when that day has none
func (r *scheduleRepository) FindEarliestForDay(ctx context.Context, day string) (*model.ClosestSchedule, error) {
	cs := &model.ClosestSchedule{}
	sql := `SELECT subject, time FROM schedules WHERE day = $1 ORDER BY time LIMIT 1`
	err := r.db.QueryRow(ctx, sql, day).Scan(&cs.Subject, &cs.Time)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No class today
		}
		return nil, fmt.Errorf("failed to find earliest schedule for day: %w", err)
	}
	return cs, nil
}
