package handler

import (
	"log"
	"net/http"

	"study_planner/internal/service"

	"github.com/gin-gonic/gin"
)

// OverviewHandler serves the dashboard aggregation
type OverviewHandler struct {
	service service.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(s service.OverviewService) *OverviewHandler {
	return &OverviewHandler{service: s}
}

func (h *OverviewHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		log.Printf("Error building overview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// RegisterOverviewRoutes registers overview routes
func (h *OverviewHandler) RegisterOverviewRoutes(rg *gin.RouterGroup) {
	rg.GET("/overview", h.GetOverview)
}
