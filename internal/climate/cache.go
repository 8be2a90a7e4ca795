package climate

import "github.com/e10lab/din18599/internal/model"

// cacheKey identifies one memoized transposition result.
type cacheKey struct {
	stationID   string
	latitude    float64
	tilt        float64
	orientation model.Orientation
}

// Cache memoizes MonthlyInsolation results keyed by (station, latitude,
// tilt, orientation), per spec section 4.3. It is built up front for the
// orientations a project actually uses and is read-only thereafter, so no
// lock is required (single-writer-then-many-readers discipline, per
// spec section 5's resource model).
type Cache struct {
	values map[cacheKey][12]float64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{values: make(map[cacheKey][12]float64)}
}

// Get returns the memoized insolation for the given station/orientation/
// tilt, computing and storing it on first request.
func (c *Cache) Get(station model.ClimateStation, orientation model.Orientation, tiltDeg float64) [12]float64 {
	key := cacheKey{stationID: station.ID, latitude: station.LatitudeDeg, tilt: tiltDeg, orientation: orientation}
	if v, ok := c.values[key]; ok {
		return v
	}
	v := MonthlyInsolation(station, orientation, tiltDeg)
	c.values[key] = v
	return v
}

// Precompute fills the cache for every (orientation, tilt) pair listed,
// so a calculation run can build the cache once before any zone's
// envelope aggregation touches it.
func (c *Cache) Precompute(station model.ClimateStation, pairs []OrientationTilt) {
	for _, p := range pairs {
		c.Get(station, p.Orientation, p.TiltDeg)
	}
}

// OrientationTilt is one (orientation, tilt) pair to precompute.
type OrientationTilt struct {
	Orientation model.Orientation
	TiltDeg     float64
}
