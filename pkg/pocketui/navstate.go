package pocketui

import (
	"log/slog"

	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
)

// NavigationState holds the mutable navigation model shared by the drawer,
// tab bar, and bottom sheet: the display order of destinations, the active
// destination, and whether the drawer is logically expanded.
//
// The order is always a permutation of the registry's id set. All reads are
// pure projections and all mutations run synchronously on the UI event loop,
// so no locking is needed; a render never observes a half-applied reorder.
type NavigationState struct {
	registry *ScreenRegistry
	order    []string
	activeID string
	expanded bool

	onNavigate func(route string)
	logger     *slog.Logger
}

// NewNavigationState creates navigation state over the registry, ordered by
// declaration order, with initialID active. initialID must be registered.
func NewNavigationState(registry *ScreenRegistry, initialID string) (*NavigationState, error) {
	if !registry.Contains(initialID) {
		return nil, ErrUnknownDestination
	}
	return &NavigationState{
		registry: registry,
		order:    registry.IDs(),
		activeID: initialID,
		logger:   internal.GetLogger(),
	}, nil
}

// SetOnNavigate installs the host navigator callback, invoked with the
// destination's route after every successful selection.
func (n *NavigationState) SetOnNavigate(fn func(route string)) {
	n.onNavigate = fn
}

// Registry returns the immutable destination catalog.
func (n *NavigationState) Registry() *ScreenRegistry {
	return n.registry
}

// SelectScreen makes id the active destination and collapses the drawer.
//
// If id currently sits outside the first row it is promoted into the last
// first-row slot: removed from its position and reinserted at index
// FirstRowSize-1, pushing the previous occupant into the grid and keeping
// every other relative ordering intact. Selecting a destination already in
// the first row leaves the order untouched.
//
// An id that is not registered is rejected with ErrUnknownDestination and
// changes nothing.
func (n *NavigationState) SelectScreen(id string) error {
	dest, ok := n.registry.Lookup(id)
	if !ok {
		n.logger.Error("Rejected selection of unknown destination", "id", id)
		return ErrUnknownDestination
	}

	pos := n.indexOf(id)
	if pos >= constants.FirstRowSize {
		previous := append([]string(nil), n.order...)
		n.promote(pos)

		if err := n.checkPermutation("select"); err != nil {
			n.order = previous
			if constants.IsDevMode() {
				panic(err)
			}
			n.logger.Error("Navigation order corrupted, rolled back", "error", err)
			return err
		}
	}

	n.activeID = id
	n.expanded = false

	if n.onNavigate != nil {
		n.onNavigate(dest.Route)
	}
	return nil
}

// promote moves the id at pos into the last slot of the first row.
func (n *NavigationState) promote(pos int) {
	id := n.order[pos]
	n.order = append(n.order[:pos], n.order[pos+1:]...)

	insertAt := constants.FirstRowSize - 1
	n.order = append(n.order, "")
	copy(n.order[insertAt+1:], n.order[insertAt:])
	n.order[insertAt] = id
}

func (n *NavigationState) indexOf(id string) int {
	for i, v := range n.order {
		if v == id {
			return i
		}
	}
	return -1
}

// checkPermutation verifies the order is exactly the registry's id set.
func (n *NavigationState) checkPermutation(op string) error {
	if len(n.order) != n.registry.Len() {
		return &OrderCorruptionError{Op: op, Order: append([]string(nil), n.order...)}
	}
	seen := make(map[string]bool, len(n.order))
	for _, id := range n.order {
		if seen[id] || !n.registry.Contains(id) {
			return &OrderCorruptionError{Op: op, Order: append([]string(nil), n.order...)}
		}
		seen[id] = true
	}
	return nil
}

// ActiveID returns the id of the active destination.
func (n *NavigationState) ActiveID() string {
	return n.activeID
}

// IsActive reports whether id is the active destination.
func (n *NavigationState) IsActive(id string) bool {
	return id == n.activeID
}

// FirstRow returns the destinations always visible without expanding the
// drawer: the first FirstRowSize entries of the current order.
func (n *NavigationState) FirstRow() []Destination {
	count := constants.FirstRowSize
	if count > len(n.order) {
		count = len(n.order)
	}
	return n.resolve(n.order[:count])
}

// OrderedAll returns every destination in the current display order.
func (n *NavigationState) OrderedAll() []Destination {
	return n.resolve(n.order)
}

// Order returns a copy of the current id order.
func (n *NavigationState) Order() []string {
	return append([]string(nil), n.order...)
}

func (n *NavigationState) resolve(ids []string) []Destination {
	destinations := make([]Destination, 0, len(ids))
	for _, id := range ids {
		if d, ok := n.registry.Lookup(id); ok {
			destinations = append(destinations, d)
		}
	}
	return destinations
}

// Expanded reports the drawer's logical expansion flag. This flag is the
// single source of truth for "is the drawer open"; the animated panel height
// follows it.
func (n *NavigationState) Expanded() bool {
	return n.expanded
}

// Expand sets the expansion flag.
func (n *NavigationState) Expand() {
	n.expanded = true
}

// Collapse clears the expansion flag.
func (n *NavigationState) Collapse() {
	n.expanded = false
}

// Toggle flips the expansion flag, or forces it when an explicit value is
// supplied: Toggle(true) is expand regardless of current state.
func (n *NavigationState) Toggle(explicit ...bool) {
	if len(explicit) > 0 {
		n.expanded = explicit[0]
		return
	}
	n.expanded = !n.expanded
}
