// Package enum provides runtime-defined, identity-comparable enumerations.
//
// Go has no construct for a closed set of named symbolic values built at
// runtime. This package fills that gap: calling code declares an enumeration
// once, populates it with a fixed collection of distinct members (optionally
// carrying auxiliary data), and thereafter treats membership, equality, and
// string rendering as stable operations.
//
// # Usage
//
// Build members with NewItem, then assemble and register the enumeration:
//
//	red, _ := enum.NewItem("Color", "Red", map[string]any{"hex": "#ff0000"})
//	blue, _ := enum.NewItem("Color", "Blue", nil)
//	color, err := enum.New("Color", []*enum.Item{red, blue})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(color)                      // Enum.Color
//	if it, ok := color.Item("Red"); ok {
//		fmt.Println(it)                 // Enum.Color.Red
//	}
//
// Or declare the whole enumeration from a mapping:
//
//	size, err := enum.FromMap("Size", map[string]map[string]any{
//		"Small": nil,
//		"Large": {"scale": 2},
//	})
//
// Enumerations can also be declared in YAML catalogs and loaded with
// LoadCatalog, LoadCatalogFile, or LoadCatalogDir.
//
// # Identity
//
// Items and Enums compare by identity, not by field contents. Every value
// carries a unique token minted at construction, and Equal tests only that
// token, so two separately constructed items with identical names and data
// are distinct. This makes members safe to compare across scopes without
// risk of forged or accidentally equal values.
//
// # Registry
//
// Successful construction registers the enumeration in a process-wide
// registry under its name. Registration is write-once per name: a second
// enum with a taken name is rejected with ErrDuplicateEnum and nothing is
// overwritten. Lookup retrieves one enum by name and Enums returns a
// snapshot of all of them. Reset empties the registry and exists for test
// isolation only.
//
// # Thread Safety
//
// All operations are safe for concurrent use. The registry is guarded by a
// sync.RWMutex, and the check-then-insert on registration happens under a
// single lock, so concurrent New calls racing on one name admit exactly one
// winner. Items and Enums are immutable after construction and may be shared
// freely between goroutines.
//
// # Error Handling
//
// All failures are synchronous and fail-fast. Construction is all-or-nothing:
// a validation failure aborts the call with no partial registration. Errors
// wrap the package's sentinel values, so callers can test them with
// errors.Is.
package enum
