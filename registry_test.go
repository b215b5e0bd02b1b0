package enum

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestLookup(t *testing.T) {
	Reset()

	it, err := NewItem("Shape", "Circle", nil)
	if err != nil {
		t.Fatalf("NewItem() unexpected error: %v", err)
	}
	shape, err := New("Shape", []*Item{it})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	got, ok := Lookup("Shape")
	if !ok {
		t.Fatal("Lookup(Shape) not found after registration")
	}
	if !got.Equal(shape) {
		t.Error("Lookup(Shape) returned a different enum than New")
	}

	if _, ok := Lookup("Missing"); ok {
		t.Error("Lookup(Missing) found an unregistered name")
	}
}

func TestEnums_Snapshot(t *testing.T) {
	Reset()

	it, err := NewItem("Shape", "Circle", nil)
	if err != nil {
		t.Fatalf("NewItem() unexpected error: %v", err)
	}
	shape, err := New("Shape", []*Item{it})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	all := Enums()
	if len(all) != 1 {
		t.Fatalf("Enums() returned %d entries, want 1", len(all))
	}
	if !all["Shape"].Equal(shape) {
		t.Error("Enums()[Shape] is not the registered enum")
	}

	// Mutating the snapshot must not reach the registry.
	delete(all, "Shape")
	if _, ok := Lookup("Shape"); !ok {
		t.Error("mutating the Enums() snapshot altered the registry")
	}
}

func TestReset(t *testing.T) {
	Reset()

	it, err := NewItem("Shape", "Circle", nil)
	if err != nil {
		t.Fatalf("NewItem() unexpected error: %v", err)
	}
	if _, err := New("Shape", []*Item{it}); err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	Reset()

	if _, ok := Lookup("Shape"); ok {
		t.Error("Lookup(Shape) found an enum after Reset")
	}
	if n := len(Enums()); n != 0 {
		t.Errorf("Enums() returned %d entries after Reset, want 0", n)
	}

	// The name is available again.
	it, err = NewItem("Shape", "Square", nil)
	if err != nil {
		t.Fatalf("NewItem() unexpected error: %v", err)
	}
	if _, err := New("Shape", []*Item{it}); err != nil {
		t.Errorf("New(Shape) after Reset failed: %v", err)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	Reset()

	const goroutines = 50

	// All goroutines race to register the same name; exactly one must win.
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			it, err := NewItem("Contested", fmt.Sprintf("M%d", id), nil)
			if err != nil {
				errs[id] = err
				return
			}
			_, errs[id] = New("Contested", []*Item{it})
		}(i)
	}
	wg.Wait()

	var wins, rejections int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrDuplicateEnum):
			rejections++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("got %d successful registrations, want exactly 1", wins)
	}
	if rejections != goroutines-1 {
		t.Errorf("got %d duplicate rejections, want %d", rejections, goroutines-1)
	}

	if _, ok := Lookup("Contested"); !ok {
		t.Error("winning registration not visible via Lookup")
	}
}

func TestConcurrentReads(t *testing.T) {
	Reset()

	const goroutines = 20

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	// Writers register distinct names while readers take snapshots.
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("Enum%d", id)
			it, err := NewItem(name, "Only", nil)
			if err != nil {
				t.Errorf("NewItem() unexpected error: %v", err)
				return
			}
			if _, err := New(name, []*Item{it}); err != nil {
				t.Errorf("New(%s) unexpected error: %v", name, err)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Enums()
				Lookup("Enum0")
			}
		}()
	}
	wg.Wait()

	if n := len(Enums()); n != goroutines {
		t.Errorf("Enums() returned %d entries, want %d", n, goroutines)
	}
}
