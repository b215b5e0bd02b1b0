package enum

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalog is the YAML document shape accepted by LoadCatalog.
type catalog struct {
	Enums []enumDecl `yaml:"enums"`
}

// enumDecl declares one enumeration and its members.
type enumDecl struct {
	Name  string     `yaml:"name"`
	Items []itemDecl `yaml:"items"`
}

// itemDecl declares one member. Data carries the member's auxiliary
// attributes and may be omitted.
type itemDecl struct {
	Name string         `yaml:"name"`
	Data map[string]any `yaml:"data,omitempty"`
}

// LoadCatalog reads a YAML catalog of enum declarations and registers each
// declared enum, in document order. A catalog looks like:
//
//	enums:
//	  - name: Color
//	    items:
//	      - name: Red
//	        data:
//	          hex: "#ff0000"
//	      - name: Blue
//
// Every declaration goes through NewItem and New, so all of their validation
// and failure modes apply. Member order within a declaration is preserved.
//
// Loading stops at the first failing declaration. The registry is write-once,
// so enums registered by earlier declarations in the same catalog remain
// registered; the failing declaration itself registers nothing.
func LoadCatalog(r io.Reader) ([]*Enum, error) {
	var doc catalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document, nothing to declare.
			return nil, nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	enums := make([]*Enum, 0, len(doc.Enums))
	for _, decl := range doc.Enums {
		items := make([]*Item, 0, len(decl.Items))
		for _, member := range decl.Items {
			it, err := NewItem(decl.Name, member.Name, member.Data)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		e, err := New(decl.Name, items)
		if err != nil {
			return nil, err
		}
		enums = append(enums, e)
	}
	return enums, nil
}

// LoadCatalogFile loads a single YAML catalog file.
func LoadCatalogFile(path string) ([]*Enum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer f.Close()

	enums, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return enums, nil
}

// LoadCatalogDir loads every .yaml/.yml catalog in dir, in sorted filename
// order, and returns all registered enums in load order. Subdirectories and
// other files are ignored.
func LoadCatalogDir(dir string) ([]*Enum, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog dir: %w", err)
	}

	var enums []*Enum
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		loaded, err := LoadCatalogFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		enums = append(enums, loaded...)
	}
	return enums, nil
}
