package enum

import "errors"

// Sentinel errors for enum construction failures.
// These errors can be used with errors.Is() for error checking; the values
// returned by the factories wrap them with the name of the first offending
// enum or member.
var (
	// ErrInvalidArgument indicates a malformed input to a factory, such as
	// an empty enum or member name or a nil member in the item sequence.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReservedKey indicates that auxiliary data uses one of the reserved
	// keys "Name" or "EnumType", which the item itself populates.
	ErrReservedKey = errors.New("reserved data key")

	// ErrReservedName indicates a member name that collides with the enum's
	// own query surface ("Name" or "GetEnumItems").
	ErrReservedName = errors.New("reserved member name")

	// ErrDuplicateItem indicates two members of one enum sharing a name.
	ErrDuplicateItem = errors.New("duplicate member name")

	// ErrDuplicateEnum indicates that an enum name is already registered.
	// The registry is write-once per name; the first registration wins.
	ErrDuplicateEnum = errors.New("enum already registered")

	// ErrTypeMismatch indicates a member whose owning-enum name does not
	// match the enum being assembled. It guards against attaching an item
	// created for a different enum.
	ErrTypeMismatch = errors.New("enum type mismatch")
)
