package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jengzang/building-map-demo-go/internal/mockdata"
	"github.com/jengzang/building-map-demo-go/internal/models"
	"github.com/jengzang/building-map-demo-go/internal/spatial"
)

// DemoService seeds the map demo with generated buildings and timelines
type DemoService struct {
	viewport     models.MapViewport
	maxBuildings int

	// Seeded sources are not safe for concurrent use
	mu  sync.Mutex
	gen *mockdata.Generator
	src mockdata.Source
}

// NewDemoService creates a new demo service
func NewDemoService(src mockdata.Source, viewport models.MapViewport, maxBuildings int) *DemoService {
	if src == nil {
		src = mockdata.DefaultSource()
	}
	if maxBuildings < 1 {
		maxBuildings = 1
	}
	return &DemoService{
		viewport:     viewport,
		maxBuildings: maxBuildings,
		gen:          mockdata.NewGenerator(src),
		src:          src,
	}
}

// Viewport returns the default camera position
func (s *DemoService) Viewport() models.MapViewport {
	return s.viewport
}

// MaxBuildings returns the upper bound applied to Buildings
func (s *DemoService) MaxBuildings() int {
	return s.maxBuildings
}

// Building generates one building with a fresh ID
func (s *DemoService) Building() models.Building {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen.BuildingData().WithIdentity(uuid.NewString(), "")
}

// Buildings generates count buildings scattered around the viewport centre.
// count is clamped to [1, MaxBuildings].
func (s *DemoService) Buildings(center models.MapViewport, count int) []models.BuildingFeature {
	if count < 1 {
		count = 1
	}
	if count > s.maxBuildings {
		count = s.maxBuildings
	}
	radius := spatial.ScatterRadius(center.Zoom)

	s.mu.Lock()
	defer s.mu.Unlock()

	features := make([]models.BuildingFeature, 0, count)
	for i := 0; i < count; i++ {
		data := s.gen.BuildingData()
		lat, lng := spatial.ScatterPoint(center.Lat, center.Lng, radius, s.src(), s.src())

		features = append(features, models.BuildingFeature{
			Building: data.WithIdentity(uuid.NewString(), fmt.Sprintf("Building %d", i+1)),
			Lng:      lng,
			Lat:      lat,
		})
	}
	return features
}

// Timeline generates timeline events for a building history view
func (s *DemoService) Timeline() []models.TimelineEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen.TimelineEvents()
}
