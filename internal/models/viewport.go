package models

// MapViewport describes a map camera position handed to the map view
type MapViewport struct {
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	Zoom    float64 `json:"zoom"`
	Bearing float64 `json:"bearing"` // Degrees
	Pitch   float64 `json:"pitch"`   // Degrees
}
