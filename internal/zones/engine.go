package zones

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/geo"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxZoneDistanceKm gates zones out of the heatmap entirely. Zones beyond
// plausible delivery/catchment radius are irrelevant, not down-weighted.
const maxZoneDistanceKm = 10

// Geometry is a GeoJSON point, coordinates ordered lon, lat.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureProperties carries the demand picture for one zone.
type FeatureProperties struct {
	ZoneID     string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
	Spike      string  `json:"spike"`
	DistanceKm float64 `json:"distance"`
	RadiusM    int     `json:"radius"`
}

// Feature is one GeoJSON feature for a zone within range of the shop.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Heatmap is a GeoJSON FeatureCollection plus the anchoring shop location,
// ready for direct map-layer consumption.
type Heatmap struct {
	Type         string     `json:"type"`
	Features     []Feature  `json:"features"`
	ShopLocation geo.LatLng `json:"shop_location"`
}

// Engine computes per-zone demand multipliers for a shop + segment.
// rng feeds the fallback band for unmapped category/profile pairs and is
// injected so tests can seed it; the production rng must be safe for
// concurrent draws.
type Engine struct {
	catalog  *Catalog
	profiles ProfileTable
	rng      *rand.Rand
}

func NewEngine(catalog *Catalog, profiles ProfileTable, rng *rand.Rand) *Engine {
	return &Engine{
		catalog:  catalog,
		profiles: profiles,
		rng:      rng,
	}
}

// normalizeSegment turns free-text segment input ("Food & Drinks",
// "Beverages/Tea") into a profile-table key.
func normalizeSegment(segment string) string {
	key := strings.ToLower(segment)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "&", "")
	key = strings.ReplaceAll(key, "/", "_")
	key = strings.ReplaceAll(key, "__", "_")
	return key
}

// Compute returns the heatmap for a shop location and product segment, in
// catalog iteration order. An unmapped segment or profile is a normal case
// and falls back to a narrow randomized band, drawn per zone per call.
func (e *Engine) Compute(shop geo.LatLng, segment string) Heatmap {
	key := normalizeSegment(segment)
	profileData := e.profiles[key]

	// Caser is stateful, so build one per call
	segmentTitle := cases.Title(language.English).String(segment)

	features := make([]Feature, 0, len(e.catalog.Zones()))
	for _, zone := range e.catalog.Zones() {
		dist := geo.DistanceKm(shop, zone.Center)
		if dist > maxZoneDistanceKm {
			continue
		}

		base := zone.HistoricalBaseline

		var multiplier float64
		var reason string
		if w, ok := profileData[zone.Profile]; ok {
			multiplier = w.Multiplier
			reason = w.Reason
		} else {
			// Subtle variability instead of a flat no-op multiplier
			multiplier = 0.95 + e.rng.Float64()*0.1
			reason = fmt.Sprintf("Baseline trend for %s in %s zone.", segmentTitle, zone.Profile)
		}

		current := base * multiplier
		spikePct := (current - base) / base * 100

		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{zone.Center.Lon, zone.Center.Lat},
			},
			Properties: FeatureProperties{
				ZoneID:     zone.ID,
				Name:       zone.Name,
				Multiplier: multiplier,
				Reason:     reason,
				Spike:      fmt.Sprintf("%+.0f%%", spikePct),
				DistanceKm: dist,
				RadiusM:    zone.RadiusM,
			},
		})
	}

	return Heatmap{
		Type:         "FeatureCollection",
		Features:     features,
		ShopLocation: shop,
	}
}
