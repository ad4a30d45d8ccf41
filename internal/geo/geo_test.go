package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZero(t *testing.T) {
	p := LatLng{Lat: 19.0726, Lon: 72.8845}

	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestDistanceKmKnownOffset(t *testing.T) {
	a := LatLng{Lat: 19.0, Lon: 72.0}
	b := LatLng{Lat: 19.1, Lon: 72.0}

	// 0.1 degree of latitude = 11.1 km under the planar approximation
	want := 11.1
	got := DistanceKm(a, b)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := LatLng{Lat: 19.0750, Lon: 72.8800}
	b := LatLng{Lat: 19.0522, Lon: 72.9005}

	if DistanceKm(a, b) != DistanceKm(b, a) {
		t.Fatal("distance is not symmetric")
	}
}
