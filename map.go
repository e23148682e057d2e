package hdrmap

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/ioutil"
	"github.com/ghettovoice/hdrmap/internal/util"
)

type slot struct {
	name Name
	vals []RawValue
}

// Map is a multi-valued map of canonical header names to raw values.
// The zero value is an empty map ready to use.
type Map struct {
	slots map[Name]*slot
	order []Name
}

// New creates an empty [Map].
// Options are optional, default options are used if nil (see [Options]).
func New(opts *Options) *Map {
	return &Map{
		slots: make(map[Name]*slot, opts.capacity()),
		order: make([]Name, 0, opts.capacity()),
	}
}

func (m *Map) lookup(name Name) *slot {
	if m == nil {
		return nil
	}
	return m.slots[name]
}

func (m *Map) create(name Name, v RawValue) *slot {
	if m.slots == nil {
		m.slots = make(map[Name]*slot, defCapacity)
	}
	s := &slot{name: name, vals: []RawValue{v}}
	m.slots[name] = s
	m.order = append(m.order, name)
	return s
}

// Entry returns the storage slot for the name.
// The result is either [*VacantEntry] or [*OccupiedEntry]. The lookup itself
// doesn't mutate the map.
func (m *Map) Entry(name Name) Entry {
	name = CanonicName(name)
	if s := m.lookup(name); s != nil {
		return &OccupiedEntry{m: m, s: s}
	}
	return &VacantEntry{m: m, name: name}
}

// GetAll returns a copy of all values stored for the name in insertion order.
// It returns nil if there are no values.
func (m *Map) GetAll(name Name) []RawValue {
	s := m.lookup(CanonicName(name))
	if s == nil {
		return nil
	}
	return slices.Clone(s.vals)
}

// Values returns an iterator over the values stored for the name.
func (m *Map) Values(name Name) iter.Seq[RawValue] {
	return func(yield func(RawValue) bool) {
		s := m.lookup(CanonicName(name))
		if s == nil {
			return
		}
		for _, v := range s.vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Get returns the first value stored for the name.
func (m *Map) Get(name Name) (RawValue, bool) {
	return util.IterFirst(m.Values(name))
}

// Has checks whether the map has at least one value for the name.
func (m *Map) Has(name Name) bool { return m.lookup(CanonicName(name)) != nil }

// Set replaces all values of the name with v.
func (m *Map) Set(name Name, v RawValue) *Map {
	switch e := m.Entry(name).(type) {
	case *VacantEntry:
		e.Insert(v)
	case *OccupiedEntry:
		e.Set(v)
	}
	return m
}

// Append adds v after the values already stored for the name.
func (m *Map) Append(name Name, v RawValue) *Map {
	switch e := m.Entry(name).(type) {
	case *VacantEntry:
		e.Insert(v)
	case *OccupiedEntry:
		e.Append(v)
	}
	return m
}

// Del removes all values of the name and returns them.
func (m *Map) Del(name Name) []RawValue {
	if e, ok := m.Entry(name).(*OccupiedEntry); ok {
		return e.Remove()
	}
	return nil
}

func (m *Map) remove(name Name) {
	delete(m.slots, name)
	m.order = slices.DeleteFunc(m.order, func(n Name) bool { return n == name })
}

// Len returns the number of distinct names in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Names returns an iterator over the names in order of their first insertion.
func (m *Map) Names() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		if m == nil {
			return
		}
		for _, n := range m.order {
			if !yield(n) {
				return
			}
		}
	}
}

// All returns an iterator over all name/value pairs.
// Names follow the order of [Map.Names], values of a name follow insertion order.
func (m *Map) All() iter.Seq2[Name, RawValue] {
	return func(yield func(Name, RawValue) bool) {
		if m == nil {
			return
		}
		for _, n := range m.order {
			for _, v := range m.slots[n].vals {
				if !yield(n, v) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	m2 := New(&Options{Capacity: len(m.order)})
	for _, n := range m.order {
		s := m.slots[n]
		m2.slots[n] = &slot{name: n, vals: slices.Clone(s.vals)}
		m2.order = append(m2.order, n)
	}
	return m2
}

// Equal reports whether both maps hold the same values under the same names.
// The order of distinct names is not significant, the order of values of a name is.
func (m *Map) Equal(val any) bool {
	var other *Map
	switch v := val.(type) {
	case *Map:
		other = v
	default:
		return false
	}

	if m == other {
		return true
	}
	if m.Len() != other.Len() {
		return false
	}
	for n := range m.Names() {
		s2 := other.lookup(n)
		if s2 == nil || !slices.Equal(m.slots[n].vals, s2.vals) {
			return false
		}
	}
	return true
}

// Validate checks that every name is a token and every value fits on a header line.
func (m *Map) Validate() error {
	for n, v := range m.All() {
		if !n.IsValid() {
			return errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("%w %q", ErrInvalidName, n)))
		}
		if !v.IsValid() {
			return errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("%w %q of header %q", ErrInvalidValue, v, n)))
		}
	}
	return nil
}

// RenderTo writes every value as a separate "Name: value\r\n" line.
func (m *Map) RenderTo(w io.Writer) (num int, err error) {
	if m == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, n := range m.order {
		cw.Call(m.slots[n].renderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

func (s *slot) renderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, v := range s.vals {
		cw.Fprint(s.name, ": ", v, "\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the map.
func (m *Map) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	m.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (m *Map) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Render()
}

// Format implements [fmt.Formatter] for custom formatting.
func (m *Map) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, m.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(m.String()))
		return
	default:
		type hideMethods Map
		type Map hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Map)(m))
		return
	}
}

// LogValue implements [slog.LogValuer] for structured logging.
func (m *Map) LogValue() slog.Value {
	if m == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, len(m.order))
	for _, n := range m.order {
		vals := m.slots[n].vals
		if len(vals) == 1 {
			attrs = append(attrs, slog.String(string(n), util.Ellipsis(string(vals[0]), 128)))
			continue
		}
		strs := make([]string, len(vals))
		for i, v := range vals {
			strs[i] = util.Ellipsis(string(v), 128)
		}
		attrs = append(attrs, slog.Any(string(n), strs))
	}
	return slog.GroupValue(attrs...)
}
