package geo

import "math"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the planar distance between two points in kilometres.
// Equirectangular approximation tuned for Mumbai's latitude (111 km per
// degree of latitude, 85 km per degree of longitude). Not valid outside
// the catalog's regional extent.
func DistanceKm(a, b LatLng) float64 {
	dLat := (a.Lat - b.Lat) * 111
	dLon := (a.Lon - b.Lon) * 85
	return math.Sqrt(dLat*dLat + dLon*dLon)
}
