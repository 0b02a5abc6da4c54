package handler

import (
	"log"
	"net/http"

	"study_planner/internal/model"
	"study_planner/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles schedule related requests
type ScheduleHandler struct {
	service service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: s}
}

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		log.Printf("Error listing schedules: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req model.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject, Day, and Time are required: " + err.Error()})
		return
	}

	id, err := h.service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating schedule: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Schedule added", "id": id})
}

// RegisterScheduleRoutes registers schedule routes
func (h *ScheduleHandler) RegisterScheduleRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedules", h.ListSchedules)
	rg.POST("/schedules", h.CreateSchedule)
}
