package mockdata

import (
	"fmt"
	"math"

	"github.com/jengzang/building-map-demo-go/internal/models"
)

// Generation ranges, all inclusive
const (
	MinYearBuilt   = 1900
	MaxYearBuilt   = 2023
	MinArea        = 50
	MaxArea        = 250
	MinMarketPrice = 100000
	MaxMarketPrice = 1100000
	MinRent        = 500
	MaxRent        = 5500

	MinTimelineEvents = 1
	MaxTimelineEvents = 5
	MinEventYear      = 2000
	MaxEventYear      = 2023
	MaxEventDay       = 28 // Valid for every month
)

// Generator produces randomized demo data from a Source
type Generator struct {
	src Source
}

// NewGenerator creates a generator; a nil source uses DefaultSource
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// intn draws a uniform integer in [lo, hi]
func (g *Generator) intn(lo, hi int) int {
	n := lo + int(math.Floor(g.src()*float64(hi-lo+1)))
	if n > hi {
		n = hi
	}
	return n
}

// BuildingData generates one randomized building attribute record
func (g *Generator) BuildingData() models.BuildingData {
	return models.BuildingData{
		Type:        models.BuildingTypeResidential,
		YearBuilt:   g.intn(MinYearBuilt, MaxYearBuilt),
		Area:        float64(g.intn(MinArea, MaxArea)),
		MarketPrice: float64(g.intn(MinMarketPrice, MaxMarketPrice)),
		Rent:        float64(g.intn(MinRent, MaxRent)),
	}
}

// TimelineEvents generates 1 to 5 events labelled by position.
// Dates are drawn independently and are not sorted.
func (g *Generator) TimelineEvents() []models.TimelineEvent {
	count := g.intn(MinTimelineEvents, MaxTimelineEvents)
	events := make([]models.TimelineEvent, 0, count)
	for i := 0; i < count; i++ {
		year := g.intn(MinEventYear, MaxEventYear)
		month := g.intn(1, 12)
		day := g.intn(1, MaxEventDay)

		events = append(events, models.TimelineEvent{
			Date:    fmt.Sprintf("%d-%02d-%02d", year, month, day),
			Content: fmt.Sprintf("Event %d", i+1),
		})
	}
	return events
}

var defaultGenerator = NewGenerator(nil)

// GenerateRandomBuildingData generates building attributes from the default source
func GenerateRandomBuildingData() models.BuildingData {
	return defaultGenerator.BuildingData()
}

// GenerateRandomTimelineEvents generates timeline events from the default source
func GenerateRandomTimelineEvents() []models.TimelineEvent {
	return defaultGenerator.TimelineEvents()
}
