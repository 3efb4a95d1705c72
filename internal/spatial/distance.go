package spatial

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters

	// Ground resolution of a 256px web-mercator tile at zoom 0, meters per pixel
	groundResolutionZoom0 = 156543.03392

	scatterSpreadPixels = 200.0
	MinScatterRadius    = 50.0
	MaxScatterRadius    = 50000.0
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DestinationPoint calculates the destination point given a start point, bearing, and distance
// bearing: degrees (0-360), distance: meters
func DestinationPoint(lat, lon, bearing, distance float64) (float64, float64) {
	p := s2.LatLngFromDegrees(lat, lon)
	bearingRad := bearing * math.Pi / 180
	angularDistance := distance / EarthRadiusMeters

	latRad := p.Lat.Radians()
	lonRad := p.Lng.Radians()

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angularDistance) +
		math.Cos(latRad)*math.Sin(angularDistance)*math.Cos(bearingRad))

	lon2 := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angularDistance)*math.Cos(latRad),
		math.Cos(angularDistance)-math.Sin(latRad)*math.Sin(lat2))

	dest := s2.LatLng{Lat: s1.Angle(lat2), Lng: s1.Angle(lon2)}.Normalized()
	return dest.Lat.Degrees(), dest.Lng.Degrees()
}

// ScatterRadius returns the radius in meters used to spread buildings around
// a viewport centre. Higher zoom levels give a tighter spread.
func ScatterRadius(zoom float64) float64 {
	r := groundResolutionZoom0 / math.Pow(2, zoom) * scatterSpreadPixels
	return math.Min(math.Max(r, MinScatterRadius), MaxScatterRadius)
}

// ScatterPoint maps two uniform draws in [0, 1) to a point uniformly
// distributed over the disc of the given radius around (lat, lon)
func ScatterPoint(lat, lon, radius, u1, u2 float64) (float64, float64) {
	distance := radius * math.Sqrt(u1)
	bearing := u2 * 360
	return DestinationPoint(lat, lon, bearing, distance)
}
