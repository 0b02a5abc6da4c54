package service

import (
	"context"
	"fmt"

	"study_planner/internal/model"
	"study_planner/internal/repository"
)

// ScheduleService provides schedule related services
type ScheduleService interface {
	ListSchedules(ctx context.Context) ([]model.Schedule, error)
	CreateSchedule(ctx context.Context, req model.CreateScheduleRequest) (int64, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

// ListSchedules returns all schedules ordered by day rank and time
func (s *scheduleService) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	schedules, err := s.scheduleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if schedules == nil {
		schedules = []model.Schedule{} // JSON [] rather than null
	}
	return schedules, nil
}

// CreateSchedule stores a new schedule entry and returns its id
func (s *scheduleService) CreateSchedule(ctx context.Context, req model.CreateScheduleRequest) (int64, error) {
	schedule := &model.Schedule{
		Subject: req.Subject,
		Day:     req.Day,
		Time:    req.Time,
		Notes:   req.Notes,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return 0, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule.ID, nil
}
