package mockdata

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/building-map-demo-go/internal/models"
)

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

func constSource(v float64) Source {
	return func() float64 { return v }
}

func TestBuildingDataRanges(t *testing.T) {
	g := NewGenerator(NewSeededSource(42))
	for i := 0; i < 2000; i++ {
		b := g.BuildingData()
		assert.Equal(t, models.BuildingTypeResidential, b.Type)
		assert.GreaterOrEqual(t, b.YearBuilt, 1900)
		assert.LessOrEqual(t, b.YearBuilt, 2023)
		assert.GreaterOrEqual(t, b.Area, 50.0)
		assert.LessOrEqual(t, b.Area, 250.0)
		assert.GreaterOrEqual(t, b.MarketPrice, 100000.0)
		assert.LessOrEqual(t, b.MarketPrice, 1100000.0)
		assert.GreaterOrEqual(t, b.Rent, 500.0)
		assert.LessOrEqual(t, b.Rent, 5500.0)
		assert.Equal(t, math.Trunc(b.Area), b.Area)
	}
}

func TestTimelineEventsShape(t *testing.T) {
	g := NewGenerator(NewSeededSource(7))
	for i := 0; i < 2000; i++ {
		events := g.TimelineEvents()
		require.GreaterOrEqual(t, len(events), 1)
		require.LessOrEqual(t, len(events), 5)

		for j, e := range events {
			assert.Equal(t, fmt.Sprintf("Event %d", j+1), e.Content)

			m := datePattern.FindStringSubmatch(e.Date)
			require.NotNil(t, m, "bad date %q", e.Date)
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			assert.True(t, year >= 2000 && year <= 2023, e.Date)
			assert.True(t, month >= 1 && month <= 12, e.Date)
			assert.True(t, day >= 1 && day <= 28, e.Date)
		}
	}
}

func TestZeroSourceYieldsMinimums(t *testing.T) {
	g := NewGenerator(constSource(0))

	assert.Equal(t, models.BuildingData{
		Type:        "Residential",
		YearBuilt:   1900,
		Area:        50,
		MarketPrice: 100000,
		Rent:        500,
	}, g.BuildingData())

	assert.Equal(t, []models.TimelineEvent{
		{Date: "2000-01-01", Content: "Event 1"},
	}, g.TimelineEvents())
}

func TestMaxSourceYieldsMaximums(t *testing.T) {
	g := NewGenerator(constSource(math.Nextafter(1, 0)))

	assert.Equal(t, models.BuildingData{
		Type:        "Residential",
		YearBuilt:   2023,
		Area:        250,
		MarketPrice: 1100000,
		Rent:        5500,
	}, g.BuildingData())

	events := g.TimelineEvents()
	require.Len(t, events, 5)
	assert.Equal(t, models.TimelineEvent{Date: "2023-12-28", Content: "Event 5"}, events[4])
}

func TestGeneratorsAreNotDeterministic(t *testing.T) {
	seen := make(map[models.BuildingData]struct{})
	for i := 0; i < 10; i++ {
		seen[GenerateRandomBuildingData()] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)

	dates := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		for _, e := range GenerateRandomTimelineEvents() {
			dates[e.Date] = struct{}{}
		}
	}
	assert.Greater(t, len(dates), 1)
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewGenerator(NewSeededSource(1))
	b := NewGenerator(NewSeededSource(1))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.BuildingData(), b.BuildingData())
		assert.Equal(t, a.TimelineEvents(), b.TimelineEvents())
	}
}

func TestIntnClampsOutOfRangeSource(t *testing.T) {
	g := NewGenerator(constSource(1))
	assert.Equal(t, 5, g.intn(1, 5))
}

func TestNilSourceUsesDefault(t *testing.T) {
	g := NewGenerator(nil)
	require.NotNil(t, g.src)
	b := g.BuildingData()
	assert.Equal(t, models.BuildingTypeResidential, b.Type)
}
