package service

import (
	"context"
	"fmt"
	"time"

	"study_planner/internal/model"
	"study_planner/internal/repository"
)

// pendingPreviewLimit caps how many pending task names the dashboard shows
const pendingPreviewLimit = 3

// OverviewService assembles the dashboard aggregation
type OverviewService interface {
	GetOverview(ctx context.Context) (*model.Overview, error)
}

type overviewService struct {
	taskRepo     repository.TaskRepository
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(taskRepo repository.TaskRepository, scheduleRepo repository.ScheduleRepository) OverviewService {
	return &overviewService{
		taskRepo:     taskRepo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

// GetOverview returns the pending task count, the three soonest-deadline
// pending task names, today's day name, and the earliest schedule for
// today (nil when today has no classes).
func (s *overviewService) GetOverview(ctx context.Context) (*model.Overview, error) {
	count, err := s.taskRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}

	names, err := s.taskRepo.FindPendingNames(ctx, pendingPreviewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending task names: %w", err)
	}
	if names == nil {
		names = []string{} // JSON [] rather than null
	}

	// time.Weekday is Sunday-origin, same as the day name array.
	today := model.DayNames[int(s.now().Weekday())]

	closest, err := s.scheduleRepo.FindEarliestForDay(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's earliest schedule: %w", err)
	}

	return &model.Overview{
		PendingCount:      count,
		PendingTasksNames: names,
		ClosestSchedule:   closest,
		TodayDay:          today,
	}, nil
}
