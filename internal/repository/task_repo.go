package repository

import (
	"context"
	"errors"
	"fmt"

	"study_planner/internal/model"

	"github.com/jackc/pgx/v5"
)

// TaskRepository defines operations for task data
type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) error
	FindAll(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	SetDone(ctx context.Context, id int64, done int) error
	Delete(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
	FindPendingNames(ctx context.Context, limit int) ([]string, error)
}

type taskRepository struct {
	db DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task and fills in its assigned id
func (r *taskRepository) Create(ctx context.Context, t *model.Task) error {
	sql := `INSERT INTO tasks (subject, name, deadline, notes, done)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, t.Subject, t.Name, t.Deadline, t.Notes, t.Done).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindAll retrieves every task, incomplete first, soonest deadline first
// within each group
func (r *taskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	sql := `SELECT id, subject, name, deadline, notes, done FROM tasks
            ORDER BY done ASC, deadline ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Subject, &t.Name, &t.Deadline, &t.Notes, &t.Done); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// FindByID retrieves a task by its ID
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	t := &model.Task{}
	sql := `SELECT id, subject, name, deadline, notes, done FROM tasks WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&t.ID, &t.Subject, &t.Name, &t.Deadline, &t.Notes, &t.Done)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return t, nil
}

// Update replaces every field of an existing task
func (r *taskRepository) Update(ctx context.Context, t *model.Task) error {
	sql := `UPDATE tasks SET subject = $1, name = $2, deadline = $3, notes = $4, done = $5
            WHERE id = $6`
	cmdTag, err := r.db.Exec(ctx, sql, t.Subject, t.Name, t.Deadline, t.Notes, t.Done, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task %d not found for update: %w", t.ID, pgx.ErrNoRows)
	}
	return nil
}

// SetDone updates only the done column. A missing id is not an error, the
// statement simply affects zero rows.
func (r *taskRepository) SetDone(ctx context.Context, id int64, done int) error {
	sql := `UPDATE tasks SET done = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, sql, done, id); err != nil {
		return fmt.Errorf("failed to set task done: %w", err)
	}
	return nil
}

// Delete removes a task. Deleting an id that no longer exists is fine.
func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CountPending counts tasks that are not done yet
func (r *taskRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	sql := `SELECT COUNT(*) FROM tasks WHERE done = 0`
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return count, nil
}

// FindPendingNames retrieves the names of the soonest-deadline pending
// tasks, up to limit
func (r *taskRepository) FindPendingNames(ctx context.Context, limit int) ([]string, error) {
	sql := `SELECT name FROM tasks WHERE done = 0 ORDER BY deadline ASC LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending task names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan pending task name: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending task names: %w", err)
	}
	return names, nil
}
