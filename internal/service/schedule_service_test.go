package service

import (
	"context"
	"testing"

	"study_planner/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestScheduleService_CreateSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(repo)

	id, err := svc.CreateSchedule(context.Background(), model.CreateScheduleRequest{
		Subject: "Matematika", Day: "Senin", Time: "08:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Senin", repo.created.Day)
	assert.Equal(t, "", repo.created.Notes) // Optional notes default to empty
}

func TestScheduleService_ListSchedules_EmptyIsNotNil(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{})

	schedules, err := svc.ListSchedules(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}
