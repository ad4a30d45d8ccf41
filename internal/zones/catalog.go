package zones

import (
	"math/rand"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/geo"
)

// Zone is a fixed geographic catchment area with a demand profile and a
// historical baseline. Zones are loaded once and never mutated.
type Zone struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Center             geo.LatLng `json:"center"`
	RadiusM            int        `json:"radius"`
	Profile            string     `json:"profile"`
	HistoricalBaseline float64    `json:"historical_baseline"`
}

// Zone profiles used by the category profile table.
const (
	ProfileResidential = "Residential"
	ProfileCommercial  = "Commercial"
	ProfileAcademic    = "Academic"
	ProfileTemple      = "Temple"
)

// DefaultShopLocation is the anchor shop used when a request carries no
// coordinates (Kurla, Mumbai).
var DefaultShopLocation = geo.LatLng{Lat: 19.0726, Lon: 72.8845}

// Catalog is the immutable set of micro-zones the engine knows about.
type Catalog struct {
	zones []Zone
}

func NewCatalog(zones []Zone) *Catalog {
	return &Catalog{zones: zones}
}

// DefaultCatalog returns the Mumbai micro-zone set, prioritized for
// concentrated SME clusters.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Zone{
		{
			ID:                 "kurla_west",
			Name:               "Kurla West Residential",
			Center:             geo.LatLng{Lat: 19.0750, Lon: 72.8800},
			RadiusM:            1000,
			Profile:            ProfileResidential,
			HistoricalBaseline: 65,
		},
		{
			ID:                 "bkc_district",
			Name:               "BKC Business Hub",
			Center:             geo.LatLng{Lat: 19.0600, Lon: 72.8600},
			RadiusM:            1200,
			Profile:            ProfileCommercial,
			HistoricalBaseline: 85,
		},
		{
			ID:                 "vidyavihar_hub",
			Name:               "Vidyavihar University Cluster",
			Center:             geo.LatLng{Lat: 19.0800, Lon: 72.8950},
			RadiusM:            1000,
			Profile:            ProfileAcademic,
			HistoricalBaseline: 40,
		},
		{
			ID:                 "ghatkopar_market",
			Name:               "Ghatkopar Central Market",
			Center:             geo.LatLng{Lat: 19.0850, Lon: 72.9080},
			RadiusM:            1100,
			Profile:            ProfileTemple,
			HistoricalBaseline: 55,
		},
		{
			ID:                 "chembur_colony",
			Name:               "Chembur Residential Colony",
			Center:             geo.LatLng{Lat: 19.0522, Lon: 72.9005},
			RadiusM:            1300,
			Profile:            ProfileResidential,
			HistoricalBaseline: 45,
		},
	})
}

// Zones returns the catalog in its fixed iteration order.
func (c *Catalog) Zones() []Zone {
	return c.zones
}

// Names returns the zone display names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.zones))
	for _, z := range c.zones {
		names = append(names, z.Name)
	}
	return names
}

// Nearest returns the zone whose center is closest to loc. The 10 km
// heatmap gate does not apply here.
func (c *Catalog) Nearest(loc geo.LatLng) Zone {
	best := c.zones[0]
	bestDist := geo.DistanceKm(loc, best.Center)

	for _, z := range c.zones[1:] {
		if d := geo.DistanceKm(loc, z.Center); d < bestDist {
			best = z
			bestDist = d
		}
	}
	return best
}

// Random picks a zone uniformly at random. Used when a caller supplies no
// location at all.
func (c *Catalog) Random(rng *rand.Rand) Zone {
	return c.zones[rng.Intn(len(c.zones))]
}
