package model

// Task represents a single assignment with a deadline. Done is stored as
// 0/1 in the tasks table and kept as an int here so listing can sort on it
// directly.
type Task struct {
	ID       int64  `json:"id"`
	Subject  string `json:"subject"`
	Name     string `json:"name"`
	Deadline string `json:"deadline"` // date text, e.g. "2025-01-02"
	Notes    string `json:"notes"`
	Done     int    `json:"done"`
}

// CreateTaskRequest is used for adding a new task
type CreateTaskRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
	Notes    string `json:"notes"`
	Done     bool   `json:"done"`
}

// UpdateTaskRequest replaces every field of an existing task. Partial
// updates are not supported beyond the done-only toggle, which is
// dispatched on body shape before this type is bound.
type UpdateTaskRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
	Notes    string `json:"notes"`
	Done     bool   `json:"done"`
}

// Overview aggregates dashboard data: pending task statistics and the
// nearest upcoming schedule for the current day.
type Overview struct {
	PendingCount      int64            `json:"pending_count"`
	PendingTasksNames []string         `json:"pending_tasks_names"`
	ClosestSchedule   *ClosestSchedule `json:"closest_schedule"`
	TodayDay          string           `json:"today_day"`
}
