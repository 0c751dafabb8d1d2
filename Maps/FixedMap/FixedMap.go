// Package FixedMap is the map facade over RobinMap: capacity fixed at construction, iteration in
// insertion order, no allocation after New.
package FixedMap

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	Fixed_Utils "github.com/g-m-twostay/fixed-utils"
	"github.com/g-m-twostay/fixed-utils/Maps"
	"github.com/g-m-twostay/fixed-utils/Maps/RobinMap"
)

// New creates a FixedMap for up to c entries, hashing keys by their memory content with the given
// seed. Only use it on keys without indirection (integers, arrays of them, padding-free structs);
// keys holding references, strings included, hash by header instead of content and must go through
// NewStr or NewFunc.
func New[K comparable, V any](c uint32, seed uint) *FixedMap[K, V] {
	hr := Fixed_Utils.Hasher(seed)
	return NewFunc[K, V](c, RobinMap.DefaultBuckets(c), func(k *K) uint64 {
		return hr.HashMem(unsafe.Pointer(k), unsafe.Sizeof(*k))
	}, func(a, b K) bool { return a == b })
}

// NewStr creates a FixedMap with string keys hashed by content.
func NewStr[V any](c uint32) *FixedMap[string, V] {
	return NewFunc[string, V](c, RobinMap.DefaultBuckets(c), func(k *string) uint64 {
		return xxhash.Sum64String(*k)
	}, func(a, b string) bool { return a == b })
}

// NewFunc creates a FixedMap with explicit bucket count and collaborators; buckets >= c >= 1. hash
// must spread bits over the whole 64-bit range and agree with eq.
func NewFunc[K, V any](c, buckets uint32, hash func(*K) uint64, eq func(K, K) bool) *FixedMap[K, V] {
	return &FixedMap[K, V]{RobinMap.New[K, V](c, buckets, hash, eq)}
}

// From creates a FixedMap whose capacity is exactly the number of pairs given.
func From[K comparable, V any](seed uint, ps ...Maps.Pair[K, V]) *FixedMap[K, V] {
	u := New[K, V](uint32(len(ps)), seed)
	for _, p := range ps {
		u.Store(p.Key, p.Val)
	}
	return u
}

type FixedMap[K, V any] struct {
	t *RobinMap.RobinMap[K, V]
}

// Store maps key to val, overwriting any previous value. Storing a new key into a full map goes
// through the table's checking policy.
func (u *FixedMap[K, V]) Store(key K, val V) {
	if c := u.t.Find(key); c.Exists() {
		*u.t.Value(c) = val
	} else {
		u.t.Insert(c, key, val)
	}
}

func (u *FixedMap[K, V]) Load(key K) (val V, ok bool) {
	if c := u.t.Find(key); c.Exists() {
		val, ok = *u.t.Value(c), true
	}
	return
}

// LoadOrStore returns the existing value for key if present, otherwise stores val. loaded is true if
// the value was already there.
func (u *FixedMap[K, V]) LoadOrStore(key K, val V) (V, bool) {
	c := u.t.Find(key)
	if c.Exists() {
		return *u.t.Value(c), true
	}
	u.t.Insert(c, key, val)
	return val, false
}

func (u *FixedMap[K, V]) LoadAndDelete(key K) (val V, ok bool) {
	if c := u.t.Find(key); c.Exists() {
		val, ok = *u.t.Value(c), true
		u.t.Erase(c)
	}
	return
}

func (u *FixedMap[K, V]) HasKey(key K) bool {
	return u.t.Has(key)
}

func (u *FixedMap[K, V]) Remove(key K) bool {
	_, ok := u.LoadAndDelete(key)
	return ok
}

func (u *FixedMap[K, V]) Size() uint32 {
	return u.t.Size()
}

func (u *FixedMap[K, V]) Cap() uint32 {
	return u.t.Cap()
}

func (u *FixedMap[K, V]) Full() bool {
	return u.t.Full()
}

// Range calls f on the entries oldest first and stops when f returns false. Entries stored during the
// walk are visited; removing the entry f is visiting is allowed, removing others during the walk isn't.
// If f removes the newest entry and then stores a new key, the new entry reuses the freed slot at the
// tail and is not visited.
func (u *FixedMap[K, V]) Range(f func(K, V) bool) {
	for i := u.t.Begin(); i != u.t.Null(); {
		p := u.t.Prev(i)
		if !f(*u.t.KeyAt(i), *u.t.ValueAt(i)) {
			return
		}
		if u.t.Next(p) == i {
			i = u.t.Next(i)
		} else { // f removed i; p now links to what followed it
			i = u.t.Next(p)
		}
	}
}

// RangeRev is Range newest first; entries stored during the walk are not visited.
func (u *FixedMap[K, V]) RangeRev(f func(K, V) bool) {
	for i := u.t.Prev(u.t.Null()); i != u.t.Null(); {
		p := u.t.Prev(i) // taken before f, which may remove i
		if !f(*u.t.KeyAt(i), *u.t.ValueAt(i)) {
			return
		}
		i = p
	}
}

// Pairs returns an iterator over a walk of the map; ok is false once exhausted.
func (u *FixedMap[K, V]) Pairs() func() (K, V, bool) {
	i := u.t.Begin()
	return func() (k K, v V, ok bool) {
		if i != u.t.Null() {
			k, v, ok = *u.t.KeyAt(i), *u.t.ValueAt(i), true
			i = u.t.Next(i)
		}
		return
	}
}

func (u *FixedMap[K, V]) Clear() {
	u.t.Clear()
}

// Clone is the deep copy; assigning a FixedMap aliases its storage.
func (u *FixedMap[K, V]) Clone() *FixedMap[K, V] {
	return &FixedMap[K, V]{u.t.Clone()}
}
