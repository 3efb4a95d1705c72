package models

// BuildingTypeResidential is the only building type the demo generates
const BuildingTypeResidential = "Residential"

// BuildingData is the generated attribute bundle of a building, without identity
type BuildingData struct {
	Type        string  `json:"type"`
	YearBuilt   int     `json:"yearBuilt"`
	Area        float64 `json:"area"`        // Square meters
	MarketPrice float64 `json:"marketPrice"` // Currency unspecified
	Rent        float64 `json:"rent"`        // Per month
}

// Building represents a building record attached to a map feature
type Building struct {
	ID   string `json:"id"` // Unique within its collection
	Name string `json:"name,omitempty"`

	BuildingData
}

// WithIdentity attaches a caller-assigned ID and optional name to the attributes
func (d BuildingData) WithIdentity(id, name string) Building {
	return Building{
		ID:           id,
		Name:         name,
		BuildingData: d,
	}
}

// BuildingFeature is a building placed at a map position
type BuildingFeature struct {
	Building
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}
