package enum

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// isReservedMemberName reports whether name collides with the enum's own
// query surface.
func isReservedMemberName(name string) bool {
	return name == "Name" || name == "GetEnumItems"
}

// Enum is a named, immutable, closed set of Items.
//
// An Enum is created once by New (or FromMap) and registered globally under
// its name; it never changes afterwards. Like Item, equality is
// identity-based: every Enum carries a unique token minted at construction.
type Enum struct {
	name   string
	byName map[string]*Item
	items  []*Item
	id     uuid.UUID
}

// New assembles the given members into an enumeration named name, registers
// it, and returns it.
//
// Members are validated in sequence order and the first failure wins, so the
// returned error names the first offending member. The checks, in order:
//
//   - ErrInvalidArgument: empty enum name, or a nil member.
//   - ErrDuplicateEnum: name is already registered.
//   - ErrReservedName: a member named "Name" or "GetEnumItems".
//   - ErrDuplicateItem: a member name repeated within items.
//   - ErrTypeMismatch: a member whose EnumType is not name.
//
// Construction is atomic with respect to the registry: on any failure
// nothing is registered, and on success the enum is registered exactly once.
// The order of items is preserved and is the order Items returns.
func New(name string, items []*Item) (*Enum, error) {
	if name == "" {
		return nil, fmt.Errorf("create enum: %w: empty name", ErrInvalidArgument)
	}
	if _, ok := Lookup(name); ok {
		return nil, fmt.Errorf("create enum %q: %w", name, ErrDuplicateEnum)
	}

	byName := make(map[string]*Item, len(items))
	ordered := make([]*Item, 0, len(items))
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("create enum %q: %w: nil item at index %d", name, ErrInvalidArgument, i)
		}
		if isReservedMemberName(it.name) {
			return nil, fmt.Errorf("create enum %q: %w: %q", name, ErrReservedName, it.name)
		}
		if _, dup := byName[it.name]; dup {
			return nil, fmt.Errorf("create enum %q: %w: %q", name, ErrDuplicateItem, it.name)
		}
		if it.enumType != name {
			return nil, fmt.Errorf("create enum %q: %w: item %q belongs to %q", name, ErrTypeMismatch, it.name, it.enumType)
		}
		byName[it.name] = it
		ordered = append(ordered, it)
	}

	e := &Enum{
		name:   name,
		byName: byName,
		items:  ordered,
		id:     uuid.New(),
	}
	if err := register(e); err != nil {
		return nil, err
	}
	return e, nil
}

// FromMap builds members from a mapping of member name to auxiliary data and
// assembles them with New. A nil data value declares a member with no
// auxiliary attributes.
//
// Go map iteration order is randomized, so FromMap orders members by sorted
// member name. That order is what Items returns and what validation errors
// report.
func FromMap(name string, members map[string]map[string]any) (*Enum, error) {
	names := make([]string, 0, len(members))
	for memberName := range members {
		names = append(names, memberName)
	}
	sort.Strings(names)

	items := make([]*Item, 0, len(names))
	for _, memberName := range names {
		it, err := NewItem(name, memberName, members[memberName])
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return New(name, items)
}

// MustNew is like New but panics on error. It is intended for package-level
// enum declarations, in the manner of template.Must.
func MustNew(name string, items []*Item) *Enum {
	e, err := New(name, items)
	if err != nil {
		panic(err)
	}
	return e
}

// MustFromMap is like FromMap but panics on error.
func MustFromMap(name string, members map[string]map[string]any) *Enum {
	e, err := FromMap(name, members)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the enumeration's identifier, unique across the process.
func (e *Enum) Name() string {
	return e.name
}

// Item returns the member with the given name, if present.
func (e *Enum) Item(name string) (*Item, bool) {
	it, ok := e.byName[name]
	return it, ok
}

// Items returns every member in construction order. The returned slice is an
// independent snapshot: mutating it does not affect the enum or subsequent
// calls.
func (e *Enum) Items() []*Item {
	snapshot := make([]*Item, len(e.items))
	copy(snapshot, e.items)
	return snapshot
}

// Len returns the number of members.
func (e *Enum) Len() int {
	return len(e.items)
}

// Equal reports whether other is the same enum instance, by identity token.
func (e *Enum) Equal(other *Enum) bool {
	return other != nil && e.id == other.id
}

// String renders the enum as "Enum.<Name>" for diagnostics and logging.
func (e *Enum) String() string {
	return "Enum." + e.name
}
