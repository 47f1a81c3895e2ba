// Package catalog holds the read-only list of points of interest scattered
// across the world map. The simulation only ever reads it: proximity scans
// report the nearest point and clicks activate one.
package catalog

// PointType classifies a point of interest.
type PointType string

const (
	TypePlanet   PointType = "planet"
	TypeStation  PointType = "station"
	TypeNebula   PointType = "nebula"
	TypeAsteroid PointType = "asteroid"
)

// Point is one entry in the catalog. X/Y are world coordinates in
// percent-of-world units, matching the ship's position domain.
type Point struct {
	ID          string    `json:"id"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Name        string    `json:"name"`
	Type        PointType `json:"type"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
}

// Catalog is an ordered, immutable point list. Order matters: proximity ties
// resolve to the first point found.
type Catalog struct {
	points []Point
}

// Points returns the ordered point list. Callers must not mutate it.
func (c *Catalog) Points() []Point {
	if c == nil {
		return nil
	}
	return c.points
}

// ByID returns the point with the given id, or false.
func (c *Catalog) ByID(id string) (Point, bool) {
	for _, p := range c.Points() {
		if p.ID == id {
			return p, true
		}
	}
	return Point{}, false
}

// Len returns the number of points.
func (c *Catalog) Len() int { return len(c.Points()) }
