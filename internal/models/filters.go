package models

// BuildingFilter holds query parameters for the buildings endpoint.
// Unset coordinates fall back to the default viewport.
type BuildingFilter struct {
	Lng   *float64 `form:"lng"`
	Lat   *float64 `form:"lat"`
	Zoom  *float64 `form:"zoom"`
	Count int      `form:"count"` // 0 means the default count
}
