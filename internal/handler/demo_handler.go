package handler

import (
	"errors"
	"math"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/building-map-demo-go/internal/models"
	"github.com/jengzang/building-map-demo-go/internal/service"
	"github.com/jengzang/building-map-demo-go/pkg/response"
)

const defaultBuildingCount = 20

// DemoHandler handles HTTP requests for generated demo data
type DemoHandler struct {
	service *service.DemoService
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(service *service.DemoService) *DemoHandler {
	return &DemoHandler{service: service}
}

// GetViewport handles GET /api/v1/demo/viewport
func (h *DemoHandler) GetViewport(c *gin.Context) {
	response.Success(c, h.service.Viewport())
}

// GetBuilding handles GET /api/v1/demo/building
func (h *DemoHandler) GetBuilding(c *gin.Context) {
	response.Success(c, h.service.Building())
}

// GetBuildings handles GET /api/v1/demo/buildings
func (h *DemoHandler) GetBuildings(c *gin.Context) {
	var filter models.BuildingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	center := h.service.Viewport()
	if filter.Lng != nil {
		center.Lng = *filter.Lng
	}
	if filter.Lat != nil {
		center.Lat = *filter.Lat
	}
	if filter.Zoom != nil {
		center.Zoom = *filter.Zoom
	}
	if !finite(center.Lng, center.Lat, center.Zoom) {
		response.BadRequest(c, "Invalid query parameters", errors.New("coordinates must be finite numbers"))
		return
	}

	count := filter.Count
	if count == 0 {
		count = defaultBuildingCount
	}

	buildings := h.service.Buildings(center, count)
	response.Success(c, gin.H{
		"center":    center,
		"buildings": buildings,
		"count":     len(buildings),
	})
}

// GetTimeline handles GET /api/v1/demo/timeline
func (h *DemoHandler) GetTimeline(c *gin.Context) {
	events := h.service.Timeline()
	response.Success(c, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
