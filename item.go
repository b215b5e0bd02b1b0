package enum

import (
	"fmt"

	"github.com/google/uuid"
)

// Reserved auxiliary-data keys. The item populates these itself, so caller
// data may not shadow them.
const (
	keyName     = "Name"
	keyEnumType = "EnumType"
)

// Item is a single immutable member of an enumeration.
//
// An Item is created once by NewItem and never changes afterwards: its name,
// owning-enum name, and auxiliary data are fixed at construction. Equality is
// identity-based, not structural — every Item carries a unique token minted
// at construction, and two Items are equal only if they share that token.
// Two separately constructed Items with identical fields are therefore
// distinct values.
type Item struct {
	name     string
	enumType string
	data     map[string]any
	id       uuid.UUID
}

// NewItem constructs a single enum member.
//
// enumType is the name of the enum the member will belong to and name is the
// member's identifier; both must be non-empty. data carries optional
// auxiliary attributes and may be nil. The data map is shallow-copied, so
// later mutation of the caller's map does not affect the item.
//
// NewItem returns ErrInvalidArgument for empty names, and ErrReservedKey if
// data contains the "Name" or "EnumType" key. It never touches the registry.
func NewItem(enumType, name string, data map[string]any) (*Item, error) {
	if enumType == "" {
		return nil, fmt.Errorf("create item %q: %w: empty enum type", name, ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("create item for enum %q: %w: empty member name", enumType, ErrInvalidArgument)
	}

	copied := make(map[string]any, len(data))
	for k, v := range data {
		if k == keyName || k == keyEnumType {
			return nil, fmt.Errorf("create item %s.%s: %w: %q", enumType, name, ErrReservedKey, k)
		}
		copied[k] = v
	}

	return &Item{
		name:     name,
		enumType: enumType,
		data:     copied,
		id:       uuid.New(),
	}, nil
}

// Name returns the member's identifier, unique within its owning enum.
func (it *Item) Name() string {
	return it.name
}

// EnumType returns the name of the enum this item belongs to.
func (it *Item) EnumType() string {
	return it.enumType
}

// Get returns the auxiliary attribute stored under key, if present.
func (it *Item) Get(key string) (any, bool) {
	v, ok := it.data[key]
	return v, ok
}

// Data returns a shallow copy of the item's auxiliary attributes.
// Mutating the returned map does not affect the item.
func (it *Item) Data() map[string]any {
	copied := make(map[string]any, len(it.data))
	for k, v := range it.data {
		copied[k] = v
	}
	return copied
}

// Equal reports whether other is the same item instance.
//
// Comparison uses the identity token assigned at construction, never field
// contents: items built separately are unequal even when their name, enum
// type, and data all match. A nil other is never equal.
func (it *Item) Equal(other *Item) bool {
	return other != nil && it.id == other.id
}

// String renders the item as "Enum.<EnumType>.<Name>" for diagnostics and
// logging. The form is not a parseable wire format.
func (it *Item) String() string {
	return "Enum." + it.enumType + "." + it.name
}
