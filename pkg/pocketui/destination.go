package pocketui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Destination describes a navigable screen of the host application: stable
// identity, display metadata, and the route the host navigator resolves when
// the destination is selected. Destinations are created once at startup and
// never mutated.
type Destination struct {
	ID        string    // Stable key, unique within the registry
	Title     string    // Display name (or an i18n message id, see LocalizeRegistry)
	Subtitle  string    // Secondary line shown in the expanded grid
	Icon      string    // Path to an SVG icon, or an icon-font glyph when not a path
	IconColor sdl.Color // Tint applied to the icon
	Route     string    // Opaque target understood by the host navigator
}

// ScreenRegistry is the fixed, ordered catalog of destinations. It is
// immutable after construction; NavigationState layers the mutable display
// order on top of it.
type ScreenRegistry struct {
	destinations []Destination
	byID         map[string]int
}

// NewScreenRegistry builds a registry from the destination catalog in
// declaration order. IDs must be non-empty and unique.
func NewScreenRegistry(destinations []Destination) (*ScreenRegistry, error) {
	if len(destinations) == 0 {
		return nil, fmt.Errorf("registry requires at least one destination")
	}

	byID := make(map[string]int, len(destinations))
	for i, d := range destinations {
		if d.ID == "" {
			return nil, fmt.Errorf("destination %d has an empty id", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate destination id %q", d.ID)
		}
		byID[d.ID] = i
	}

	return &ScreenRegistry{
		destinations: append([]Destination(nil), destinations...),
		byID:         byID,
	}, nil
}

// Len returns the number of destinations in the catalog.
func (r *ScreenRegistry) Len() int {
	return len(r.destinations)
}

// Contains reports whether id names a registered destination.
func (r *ScreenRegistry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the destination for id.
func (r *ScreenRegistry) Lookup(id string) (Destination, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Destination{}, false
	}
	return r.destinations[i], true
}

// IDs returns the destination ids in declaration order.
func (r *ScreenRegistry) IDs() []string {
	ids := make([]string, len(r.destinations))
	for i, d := range r.destinations {
		ids[i] = d.ID
	}
	return ids
}

// All returns the destinations in declaration order. The slice is a copy.
func (r *ScreenRegistry) All() []Destination {
	return append([]Destination(nil), r.destinations...)
}
