package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"study_planner/internal/model"
	"study_planner/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestTaskHandler_ListTasks(t *testing.T) {
	svc := &stubTaskService{
		listFn: func(ctx context.Context) ([]model.Task, error) {
			return []model.Task{
				{ID: 3, Subject: "Kimia", Name: "C", Deadline: "2025-01-01"},
				{ID: 1, Subject: "Fisika", Name: "A", Deadline: "2025-01-02"},
			}, nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodGet, "/api/tasks", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var tasks []model.Task
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
	assert.Equal(t, "C", tasks[0].Name)
}

func TestTaskHandler_CreateTask(t *testing.T) {
	var got model.CreateTaskRequest
	svc := &stubTaskService{
		createFn: func(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
			got = req
			return &model.Task{ID: 9, Subject: req.Subject, Name: req.Name, Deadline: req.Deadline}, nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPost, "/api/tasks",
		`{"subject":"Fisika","name":"Laporan","deadline":"2025-10-10"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Laporan", got.Name)
	assert.Contains(t, w.Body.String(), `"task"`)
}

func TestTaskHandler_CreateTask_MissingName(t *testing.T) {
	called := false
	svc := &stubTaskService{
		createFn: func(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
			called = true
			return nil, nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPost, "/api/tasks",
		`{"subject":"Fisika","deadline":"2025-10-10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called) // Validation fails before any storage call
}

func TestTaskHandler_UpdateTask_DoneOnlyToggle(t *testing.T) {
	var toggledID int64
	var toggledDone bool
	fullUpdateCalled := false
	svc := &stubTaskService{
		setDoneFn: func(ctx context.Context, id int64, done bool) error {
			toggledID = id
			toggledDone = done
			return nil
		},
		updateFn: func(ctx context.Context, id int64, req model.UpdateTaskRequest) error {
			fullUpdateCalled = true
			return nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPut, "/api/tasks/5", `{"done":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), toggledID)
	assert.True(t, toggledDone)
	assert.False(t, fullUpdateCalled) // A done-only body never replaces fields
}

func TestTaskHandler_UpdateTask_DoneMustBeBoolean(t *testing.T) {
	svc := &stubTaskService{
		setDoneFn: func(ctx context.Context, id int64, done bool) error {
			t.Fatal("SetTaskDone should not be called for a non-boolean done")
			return nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPut, "/api/tasks/5", `{"done":"yes"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTask_FullReplacement(t *testing.T) {
	var gotID int64
	var got model.UpdateTaskRequest
	svc := &stubTaskService{
		updateFn: func(ctx context.Context, id int64, req model.UpdateTaskRequest) error {
			gotID = id
			got = req
			return nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPut, "/api/tasks/5",
		`{"subject":"Fisika","name":"Laporan","deadline":"2025-10-10","notes":"","done":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), gotID)
	assert.Equal(t, "Laporan", got.Name)
	assert.True(t, got.Done)
}

func TestTaskHandler_UpdateTask_FullReplacementNotFound(t *testing.T) {
	svc := &stubTaskService{
		updateFn: func(ctx context.Context, id int64, req model.UpdateTaskRequest) error {
			return service.ErrTaskNotFound
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPut, "/api/tasks/99",
		`{"subject":"Fisika","name":"Laporan","deadline":"2025-10-10"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_UpdateTask_InvalidID(t *testing.T) {
	router, api := newTestRouter()
	NewTaskHandler(&stubTaskService{}).RegisterTaskRoutes(api)

	w := performRequest(t, router, http.MethodPut, "/api/tasks/abc", `{"done":true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	var deletedID int64
	svc := &stubTaskService{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	router, api := newTestRouter()
	NewTaskHandler(svc).RegisterTaskRoutes(api)

	// Deleting the same id twice stays a 200, the operation is idempotent.
	for i := 0; i < 2; i++ {
		w := performRequest(t, router, http.MethodDelete, "/api/tasks/7", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int64(7), deletedID)
}
