// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package names implements the name allocator shared by every object
// category of a context.
//
// A name moves through three states:
//
//	reserved     present, no body (after Gen)
//	initialized  present with a body (after Create, or EnsureInit on a reserved name)
//	deleted      absent (after Delete); the name may be handed out again
//
// Name 0 is never allocated. Names are not reused while present, in either
// state. A List is not safe for concurrent use; the owning context
// serializes access.
package names

import "fmt"

// entry is the table slot of one present name.
type entry[T any] struct {
	body        T
	initialized bool
}

// List maps names of one object category to optional bodies.
type List[T any] struct {
	entries map[uint32]*entry[T]
	factory func(name uint32) T
	next    uint32
	free    []uint32
}

// New creates an empty List whose bodies are built by factory.
func New[T any](factory func(name uint32) T) *List[T] {
	return &List[T]{
		entries: make(map[uint32]*entry[T]),
		factory: factory,
		next:    1,
	}
}

// alloc returns a name that is not present in the table.
func (l *List[T]) alloc() uint32 {
	for len(l.free) > 0 {
		n := l.free[len(l.free)-1]
		l.free = l.free[:len(l.free)-1]
		if _, present := l.entries[n]; !present {
			return n
		}
	}
	for {
		n := l.next
		l.next++
		if l.next == 0 {
			l.next = 1
		}
		if _, present := l.entries[n]; !present && n != 0 {
			return n
		}
	}
}

// Gen reserves n new names without creating bodies.
func (l *List[T]) Gen(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		name := l.alloc()
		l.entries[name] = &entry[T]{}
		out[i] = name
	}
	return out
}

// Create reserves n new names and initializes each with a default body.
func (l *List[T]) Create(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		name := l.alloc()
		l.entries[name] = &entry[T]{body: l.factory(name), initialized: true}
		out[i] = name
	}
	return out
}

// Reserve inserts a caller-chosen name in the reserved state. It reports
// false if the name is zero or already present.
func (l *List[T]) Reserve(name uint32) bool {
	if name == 0 {
		return false
	}
	if _, present := l.entries[name]; present {
		return false
	}
	l.entries[name] = &entry[T]{}
	return true
}

// EnsureInit initializes a reserved name and returns its body. It panics if
// the name is absent: callers must check Reserved first.
func (l *List[T]) EnsureInit(name uint32) T {
	e, present := l.entries[name]
	if !present {
		panic(fmt.Sprintf("names: EnsureInit of absent name %d", name))
	}
	if !e.initialized {
		e.body = l.factory(name)
		e.initialized = true
	}
	return e.body
}

// Set initializes a present name with body, replacing any previous body.
// It reports false if the name is absent.
func (l *List[T]) Set(name uint32, body T) bool {
	e, present := l.entries[name]
	if !present {
		return false
	}
	e.body = body
	e.initialized = true
	return true
}

// Get returns the body of an initialized name.
func (l *List[T]) Get(name uint32) (T, bool) {
	if e, present := l.entries[name]; present && e.initialized {
		return e.body, true
	}
	var zero T
	return zero, false
}

// Is reports whether name is initialized.
func (l *List[T]) Is(name uint32) bool {
	e, present := l.entries[name]
	return present && e.initialized
}

// Reserved reports whether name is present in either state.
func (l *List[T]) Reserved(name uint32) bool {
	_, present := l.entries[name]
	return present
}

// Delete removes every present name in names. Zero and absent names are
// ignored. The bodies removed are returned in order for cleanup.
func (l *List[T]) Delete(names []uint32) []T {
	var removed []T
	for _, name := range names {
		e, present := l.entries[name]
		if name == 0 || !present {
			continue
		}
		delete(l.entries, name)
		l.free = append(l.free, name)
		if e.initialized {
			removed = append(removed, e.body)
		}
	}
	return removed
}

// Len returns the number of present names.
func (l *List[T]) Len() int { return len(l.entries) }

// Each calls fn for every initialized name. Iteration order is unspecified.
func (l *List[T]) Each(fn func(name uint32, body T)) {
	for name, e := range l.entries {
		if e.initialized {
			fn(name, e.body)
		}
	}
}

// Names returns every present name. Order is unspecified.
func (l *List[T]) Names() []uint32 {
	out := make([]uint32, 0, len(l.entries))
	for name := range l.entries {
		out = append(out, name)
	}
	return out
}
