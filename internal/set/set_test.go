package set

import (
	"slices"
	"testing"
)

func TestSetBasics(t *testing.T) {
	s := NewSet(1, 2, 3)
	if s.Size() != 3 {
		t.Errorf("Size = %d, want 3", s.Size())
	}
	if !s.ContainsAll(1, 2, 3) {
		t.Error("missing initial elements")
	}

	s.Add(3, 4)
	if s.Size() != 4 {
		t.Errorf("Size after Add = %d, want 4", s.Size())
	}
	if s.ContainsAll(1, 5) {
		t.Error("ContainsAll reports missing element as present")
	}

	values := s.Values()
	slices.Sort(values)
	want := []int{1, 2, 3, 4}
	if !slices.Equal(values, want) {
		t.Errorf("Values = %v, want %v", values, want)
	}
}

func TestSetAlgebra(t *testing.T) {
	a := NewSet("x", "y")
	b := NewSet("y", "z")

	u := Union(a, b)
	if u.Size() != 3 || !u.ContainsAll("x", "y", "z") {
		t.Errorf("Union = %v", u.Values())
	}

	i := Intersect(a, b)
	if i.Size() != 1 || !i.Contains("y") {
		t.Errorf("Intersect = %v", i.Values())
	}

	d := Difference(a, b)
	if d.Size() != 1 || !d.Contains("x") {
		t.Errorf("Difference = %v", d.Values())
	}
}
