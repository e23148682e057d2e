package hdrmap

import "slices"

// Entry is a handle to the storage slot of one header name.
// It is either [*VacantEntry] or [*OccupiedEntry].
type Entry interface {
	// Name returns the canonical header name of the entry.
	Name() Name

	entry()
}

// VacantEntry is a slot that has no values yet.
type VacantEntry struct {
	m    *Map
	name Name
}

func (*VacantEntry) entry() {}

// Name returns the canonical header name of the entry.
func (e *VacantEntry) Name() Name { return e.name }

// Insert stores v as the sole value of the name and returns the now occupied entry.
func (e *VacantEntry) Insert(v RawValue) *OccupiedEntry {
	if s := e.m.lookup(e.name); s != nil {
		// the slot was filled through another handle
		s.vals = append(s.vals[:0], v)
		return &OccupiedEntry{m: e.m, s: s}
	}
	return &OccupiedEntry{m: e.m, s: e.m.create(e.name, v)}
}

// OccupiedEntry is a slot holding one or more values.
type OccupiedEntry struct {
	m *Map
	s *slot
}

func (*OccupiedEntry) entry() {}

// Name returns the canonical header name of the entry.
func (e *OccupiedEntry) Name() Name { return e.s.name }

// Values returns a copy of the stored values in insertion order.
func (e *OccupiedEntry) Values() []RawValue { return slices.Clone(e.s.vals) }

// Len returns the number of stored values.
func (e *OccupiedEntry) Len() int { return len(e.s.vals) }

// Set replaces all stored values with v.
func (e *OccupiedEntry) Set(v RawValue) {
	clear(e.s.vals)
	e.s.vals = append(e.s.vals[:0], v)
}

// Append adds v after the stored values.
func (e *OccupiedEntry) Append(v RawValue) {
	e.s.vals = append(e.s.vals, v)
}

// Remove deletes the name from the map and returns its values.
// The entry must not be used afterwards.
func (e *OccupiedEntry) Remove() []RawValue {
	e.m.remove(e.s.name)
	return e.s.vals
}
