// Package FixedSet is the set facade over RobinMap. The element type is the table's key and the value
// type is struct{}, so slots store elements only; capacity is fixed at construction and iteration is
// in insertion order.
package FixedSet

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	Fixed_Utils "github.com/g-m-twostay/fixed-utils"
	"github.com/g-m-twostay/fixed-utils/Maps/RobinMap"
)

// New creates a FixedSet for up to c elements, hashed by memory content with the given seed. As with
// FixedMap.New, only use it on elements without indirection; strings go through NewStr or NewFunc.
func New[E comparable](c uint32, seed uint) *FixedSet[E] {
	hr := Fixed_Utils.Hasher(seed)
	return NewFunc[E](c, RobinMap.DefaultBuckets(c), func(e *E) uint64 {
		return hr.HashMem(unsafe.Pointer(e), unsafe.Sizeof(*e))
	}, func(a, b E) bool { return a == b })
}

// NewStr creates a FixedSet of strings hashed by content.
func NewStr(c uint32) *FixedSet[string] {
	return NewFunc[string](c, RobinMap.DefaultBuckets(c), func(e *string) uint64 {
		return xxhash.Sum64String(*e)
	}, func(a, b string) bool { return a == b })
}

// NewFunc creates a FixedSet with explicit bucket count and collaborators; buckets >= c >= 1.
func NewFunc[E any](c, buckets uint32, hash func(*E) uint64, eq func(E, E) bool) *FixedSet[E] {
	return &FixedSet[E]{RobinMap.New[E, struct{}](c, buckets, hash, eq)}
}

// From creates a FixedSet whose capacity is exactly the number of elements given.
func From[E comparable](seed uint, es ...E) *FixedSet[E] {
	u := New[E](uint32(len(es)), seed)
	for _, e := range es {
		u.Put(e)
	}
	return u
}

type FixedSet[E any] struct {
	t *RobinMap.RobinMap[E, struct{}]
}

// Put adds e and returns true, or returns false if e was already present. Putting a new element into
// a full set goes through the table's checking policy.
func (u *FixedSet[E]) Put(e E) bool {
	c := u.t.Find(e)
	if c.Exists() {
		return false
	}
	return u.t.Insert(c, e, struct{}{}).Exists()
}

func (u *FixedSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *FixedSet[E]) Remove(e E) bool {
	if c := u.t.Find(e); c.Exists() {
		u.t.Erase(c)
		return true
	}
	return false
}

func (u *FixedSet[E]) Size() uint32 {
	return u.t.Size()
}

func (u *FixedSet[E]) Cap() uint32 {
	return u.t.Cap()
}

func (u *FixedSet[E]) Full() bool {
	return u.t.Full()
}

// Take returns the oldest element, or the zero value if the set is empty.
func (u *FixedSet[E]) Take() (e E) {
	if i := u.t.Begin(); i != u.t.Null() {
		e = *u.t.KeyAt(i)
	}
	return
}

// Range calls f on the elements oldest first and stops when f returns false. Removing the element f
// is visiting is allowed, removing others during the walk isn't.
func (u *FixedSet[E]) Range(f func(E) bool) {
	for i := u.t.Begin(); i != u.t.Null(); {
		p := u.t.Prev(i)
		if !f(*u.t.KeyAt(i)) {
			return
		}
		if u.t.Next(p) == i {
			i = u.t.Next(i)
		} else { // f removed i; p now links to what followed it
			i = u.t.Next(p)
		}
	}
}

// RangeRev is Range newest first.
func (u *FixedSet[E]) RangeRev(f func(E) bool) {
	for i := u.t.Prev(u.t.Null()); i != u.t.Null(); {
		p := u.t.Prev(i) // taken before f, which may remove i
		if !f(*u.t.KeyAt(i)) {
			return
		}
		i = p
	}
}

func (u *FixedSet[E]) Clear() {
	u.t.Clear()
}

// Clone is the deep copy; assigning a FixedSet aliases its storage.
func (u *FixedSet[E]) Clone() *FixedSet[E] {
	return &FixedSet[E]{u.t.Clone()}
}
