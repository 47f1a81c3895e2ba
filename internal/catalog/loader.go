package catalog

import (
	"encoding/json"
	"fmt"
)

// catalogFile is the JSON-serializable catalog definition.
type catalogFile struct {
	Points []Point `json:"points"`
}

// Load parses a catalog from JSON bytes and validates every entry.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse point catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Points))
	for i, p := range file.Points {
		if p.ID == "" {
			return nil, fmt.Errorf("point %d: missing id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("point %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if !validType(p.Type) {
			return nil, fmt.Errorf("point %q: unknown type %q", p.ID, p.Type)
		}
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
			return nil, fmt.Errorf("point %q: position (%.1f, %.1f) outside world bounds", p.ID, p.X, p.Y)
		}
	}

	return &Catalog{points: file.Points}, nil
}

func validType(t PointType) bool {
	switch t {
	case TypePlanet, TypeStation, TypeNebula, TypeAsteroid:
		return true
	}
	return false
}
