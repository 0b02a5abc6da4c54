package service

import (
	"context"
	"errors"
	"fmt"

	"study_planner/internal/model"
	"study_planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService provides task related services
type TaskService interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error)
	UpdateTask(ctx context.Context, id int64, req model.UpdateTaskRequest) error
	SetTaskDone(ctx context.Context, id int64, done bool) error
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// ListTasks returns all tasks, incomplete first, soonest deadline first
func (s *taskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{} // JSON [] rather than null
	}
	return tasks, nil
}

// CreateTask stores a new task and returns the created row
func (s *taskService) CreateTask(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Subject:  req.Subject,
		Name:     req.Name,
		Deadline: req.Deadline,
		Notes:    req.Notes,
		Done:     boolToFlag(req.Done),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask replaces every field of the task with the given id
func (s *taskService) UpdateTask(ctx context.Context, id int64, req model.UpdateTaskRequest) error {
	task := &model.Task{
		ID:       id,
		Subject:  req.Subject,
		Name:     req.Name,
		Deadline: req.Deadline,
		Notes:    req.Notes,
		Done:     boolToFlag(req.Done),
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// SetTaskDone updates only the done flag, leaving every other field
// untouched. Like the delete below, a missing id is not an error.
func (s *taskService) SetTaskDone(ctx context.Context, id int64, done bool) error {
	if err := s.taskRepo.SetDone(ctx, id, boolToFlag(done)); err != nil {
		return fmt.Errorf("failed to set task done: %w", err)
	}
	return nil
}

// DeleteTask removes a task; deleting an already-deleted id succeeds
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// boolToFlag coerces a JSON boolean to the stored 0/1 form
func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
