package storefront

import "github.com/yobeidat/obeidat-motors-backend/internal/cars"

// Session tracks a visitor's filter state across inventory refreshes. Freshly
// derived bounds reseed the selections only until the visitor changes
// something themselves; after that their choices stick.
type Session struct {
	values  FilterValues
	bounds  FilterBounds
	touched bool
}

// NewSession starts with the static default bounds and a full-span selection.
func NewSession() *Session {
	bounds := DefaultFilterBounds()
	return &Session{
		values: DefaultFilterValues(bounds),
		bounds: bounds,
	}
}

// SyncInventory recomputes bounds from fresh inventory. While the visitor has
// not touched the filters, the selections follow the new full span so no
// listing is hidden by stale limits.
func (s *Session) SyncInventory(inventory []cars.CarDTO) {
	s.bounds = DeriveBounds(inventory)
	if s.touched || len(inventory) == 0 {
		return
	}
	s.values = DefaultFilterValues(s.bounds)
}

// SetValues records a visitor-driven change and stops future reseeding.
func (s *Session) SetValues(values FilterValues) {
	s.values = values
	s.touched = true
}

// Reset snaps the selection back to the current full span. Clearing filters
// is itself a visitor action, so reseeding stays off.
func (s *Session) Reset() {
	s.values = DefaultFilterValues(s.bounds)
	s.touched = true
}

// Values returns the current selections.
func (s *Session) Values() FilterValues {
	return s.values
}

// Bounds returns the current widget limits.
func (s *Session) Bounds() FilterBounds {
	return s.bounds
}

// Touched reports whether the visitor has changed the filters.
func (s *Session) Touched() bool {
	return s.touched
}

// Apply filters the inventory with the session's current selections.
func (s *Session) Apply(inventory []cars.CarDTO) []cars.CarDTO {
	return Filter(inventory, s.values)
}
