package RobinMap

import (
	"golang.org/x/exp/constraints"
	"slices"
)

type link[S constraints.Unsigned] struct {
	pv, nx S
}

// MakeSlab creates a Slab holding up to c payloads. All storage is allocated here; nothing grows later.
func MakeSlab[T any, S constraints.Unsigned](c S) Slab[T, S] {
	ls := make([]link[S], c+1)
	for i := range ls[:c] {
		ls[i] = link[S]{S(i), S(i) + 1} // pv==own index marks the slot free
	}
	ls[c] = link[S]{c, c}
	return Slab[T, S]{vs: make([]T, c), ls: ls, free: 0, Check: Abort}
}

// Slab is a fixed-capacity array of payload slots threaded by two intrusive lists: a circular ring of
// the occupied slots in insertion order, and a singly-linked pool of the free ones. Index c (==Null)
// is the ring's sentinel, so it doubles as the one-past-the-end and the "none" index. A slot's index
// stays valid from PushBack until Delete of that same slot; operations on other slots never move it.
type Slab[T any, S constraints.Unsigned] struct {
	vs    []T       // payloads, len c
	ls    []link[S] // len c+1, ls[c] is the ring sentinel
	free  S         // head of the free list, ==Null when the slab is full
	sz    S
	Check Checking
}

// Null is the sentinel index: end of iteration, and the result of asking for a neighbor that isn't there.
func (u *Slab[T, S]) Null() S {
	return S(len(u.vs))
}

func (u *Slab[T, S]) Cap() S {
	return S(len(u.vs))
}

func (u *Slab[T, S]) Size() S {
	return u.sz
}

func (u *Slab[T, S]) Full() bool {
	return u.free == u.Null()
}

// Occupied reports whether i names a live slot. Free slots are marked by being their own predecessor,
// which no live slot can be since the ring always passes through the sentinel.
func (u *Slab[T, S]) Occupied(i S) bool {
	return i < u.Null() && u.ls[i].pv != i
}

// PushBack takes a slot off the free pool, stores v in it and splices it at the tail of the occupied
// ring. Returns the slot's index, or Null after reporting a violation if the slab is full.
func (u *Slab[T, S]) PushBack(v T) S {
	if u.Full() {
		u.Check("PushBack on a full Slab")
		return u.Null()
	}
	i := u.free
	u.free = u.ls[i].nx
	n := u.Null()
	t := u.ls[n].pv
	u.vs[i] = v
	u.ls[i] = link[S]{t, n}
	u.ls[t].nx = i
	u.ls[n].pv = i
	u.sz++
	return i
}

// Delete frees the slot at i and returns the index the occupied ring visits after it (Null if i was
// the tail). The payload is zeroed so the slab drops whatever references it held.
func (u *Slab[T, S]) Delete(i S) S {
	if !u.Occupied(i) {
		u.Check("Delete of a slot not in use")
		return u.Null()
	}
	l := u.ls[i]
	u.ls[l.pv].nx = l.nx
	u.ls[l.nx].pv = l.pv
	u.vs[i] = *new(T)
	u.ls[i] = link[S]{i, u.free}
	u.free = i
	u.sz--
	return l.nx
}

// Front is the oldest live slot, Null when empty.
func (u *Slab[T, S]) Front() S {
	return u.ls[u.Null()].nx
}

// Back is the newest live slot, Null when empty.
func (u *Slab[T, S]) Back() S {
	return u.ls[u.Null()].pv
}

func (u *Slab[T, S]) Next(i S) S {
	return u.ls[i].nx
}

func (u *Slab[T, S]) Prev(i S) S {
	return u.ls[i].pv
}

func (u *Slab[T, S]) At(i S) *T {
	return &u.vs[i]
}

// Clear frees every occupied slot. Surviving free-list order is unspecified.
func (u *Slab[T, S]) Clear() {
	n := u.Null()
	for i := u.ls[n].nx; i != n; {
		nx := u.ls[i].nx
		u.vs[i] = *new(T)
		u.ls[i] = link[S]{i, u.free}
		u.free = i
		i = nx
	}
	u.ls[n] = link[S]{n, n}
	u.sz = 0
}

// Clone deep-copies the slab. Payloads are copied by assignment, so pointer payloads keep aliasing
// their referents; cloning the structure never aliases the storage itself.
func (u *Slab[T, S]) Clone() Slab[T, S] {
	c := *u
	c.vs = slices.Clone(u.vs)
	c.ls = slices.Clone(u.ls)
	return c
}
