package ecs

import "testing"

func TestEntityStoreGenerations(t *testing.T) {
	var s entityStore
	a := s.create()
	b := s.create()
	if a.id() != 1 || b.id() != 2 {
		t.Fatalf("ids should start at 1, got %v and %v", a, b)
	}
	if !s.destroy(a) {
		t.Fatalf("destroy should return true for a live entity")
	}
	if s.destroy(a) {
		t.Fatalf("destroy should return false the second time")
	}
	c := s.create()
	if c.id() != a.id() || c.generation() == a.generation() {
		t.Fatalf("expected id %d reused with a new generation, got %v", a.id(), c)
	}
	if s.isAlive(a) || !s.isAlive(c) || s.isAlive(Entity(0)) {
		t.Fatalf("liveness mismatch")
	}
}

func TestSparseSet(t *testing.T) {
	var s SparseSet[string]
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")
	s.Remove(1)

	if s.Has(1) || s.Len() != 2 {
		t.Fatalf("expected id 1 removed, len 2, got len %d", s.Len())
	}
	if v, ok := s.Get(3); !ok || v != "c" {
		t.Fatalf("swap-remove broke lookup of id 3: %q %v", v, ok)
	}
	s.Set(2, "B")
	if v, _ := s.Get(2); v != "B" {
		t.Fatalf("Set should update in place, got %q", v)
	}
	s.Clear()
	if s.Len() != 0 || s.Has(2) {
		t.Fatalf("Clear should empty the set")
	}
}
