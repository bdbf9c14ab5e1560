// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package names

import (
	"slices"
	"testing"
)

type body struct {
	name uint32
}

func newList() *List[*body] {
	return New(func(name uint32) *body { return &body{name: name} })
}

func TestGenReservesWithoutBody(t *testing.T) {
	l := newList()
	got := l.Gen(3)
	if len(got) != 3 {
		t.Fatalf("Gen(3) returned %d names", len(got))
	}
	for _, n := range got {
		if n == 0 {
			t.Fatal("Gen returned name 0")
		}
		if l.Is(n) {
			t.Errorf("Is(%d) = true for a reserved name", n)
		}
		if !l.Reserved(n) {
			t.Errorf("Reserved(%d) = false after Gen", n)
		}
		if _, ok := l.Get(n); ok {
			t.Errorf("Get(%d) found a body for a reserved name", n)
		}
	}
}

func TestCreateInitializes(t *testing.T) {
	l := newList()
	for _, n := range l.Create(2) {
		b, ok := l.Get(n)
		if !ok || b.name != n {
			t.Errorf("Get(%d) = (%v, %v), want initialized body", n, b, ok)
		}
	}
}

func TestEnsureInit(t *testing.T) {
	l := newList()
	n := l.Gen(1)[0]
	first := l.EnsureInit(n)
	if !l.Is(n) {
		t.Fatal("EnsureInit did not initialize")
	}
	if second := l.EnsureInit(n); second != first {
		t.Error("EnsureInit replaced an existing body")
	}
}

func TestEnsureInitAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnsureInit of an absent name did not panic")
		}
	}()
	newList().EnsureInit(42)
}

func TestNamesUnique(t *testing.T) {
	l := newList()
	seen := map[uint32]bool{}
	batch := l.Gen(50)
	batch = append(batch, l.Create(50)...)
	l.Delete(batch[10:30])
	batch = append(batch[:10], batch[30:]...)
	batch = append(batch, l.Gen(40)...)
	for _, n := range batch {
		if seen[n] {
			t.Fatalf("name %d handed out twice while present", n)
		}
		seen[n] = true
	}
	if l.Len() != len(batch) {
		t.Errorf("Len() = %d, want %d", l.Len(), len(batch))
	}
}

func TestGenDeleteRestores(t *testing.T) {
	l := newList()
	l.Create(4)
	before := l.Names()
	slices.Sort(before)

	gen := l.Gen(8)
	l.Delete(gen)

	after := l.Names()
	slices.Sort(after)
	if !slices.Equal(before, after) {
		t.Errorf("names after Gen+Delete = %v, want %v", after, before)
	}
}

func TestDeleteIgnoresZeroAndAbsent(t *testing.T) {
	l := newList()
	n := l.Create(1)[0]
	removed := l.Delete([]uint32{0, 999, n, n})
	if len(removed) != 1 || removed[0].name != n {
		t.Errorf("Delete removed %v, want body of %d", removed, n)
	}
	if l.Reserved(n) {
		t.Error("name still present after Delete")
	}
}

func TestDeleteReservedReturnsNoBody(t *testing.T) {
	l := newList()
	n := l.Gen(1)[0]
	if removed := l.Delete([]uint32{n}); len(removed) != 0 {
		t.Errorf("Delete of reserved name returned %d bodies", len(removed))
	}
}

func TestReserve(t *testing.T) {
	l := newList()
	if !l.Reserve(7) {
		t.Fatal("Reserve(7) failed on empty list")
	}
	if l.Reserve(7) || l.Reserve(0) {
		t.Error("Reserve accepted a present or zero name")
	}
	for _, n := range l.Gen(10) {
		if n == 7 {
			t.Error("Gen returned a reserved name")
		}
	}
}

func TestEach(t *testing.T) {
	l := newList()
	created := l.Create(3)
	l.Gen(2)
	var visited []uint32
	l.Each(func(name uint32, b *body) { visited = append(visited, name) })
	slices.Sort(visited)
	slices.Sort(created)
	if !slices.Equal(visited, created) {
		t.Errorf("Each visited %v, want %v", visited, created)
	}
}

func TestSet(t *testing.T) {
	l := newList()
	name := l.Gen(1)[0]
	if !l.Set(name, &body{name: 99}) {
		t.Fatal("Set on reserved name failed")
	}
	if b, ok := l.Get(name); !ok || b.name != 99 {
		t.Errorf("Get() = %v, %v", b, ok)
	}
	if l.Set(name+100, &body{}) {
		t.Error("Set on absent name succeeded")
	}
}
