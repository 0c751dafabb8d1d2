package Fixed_Utils

import (
	"math/bits"
	_ "runtime"
	"unsafe"
)

//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

type hold struct {
	rtype *uintptr
	ptr   unsafe.Pointer
}

// Hasher is a seed for the runtime's memory hashers, create it by converting any random uint value. All receivers produce full 64-bit hashes, so both the low byte and the higher bits of
// the result are independently usable by callers that split a hash into fingerprint and index parts.
// The receivers are thread-safe, but the memory contents aren't read in a thread-safe way, so only use
// it on synchronized memory.
type Hasher uint

// HashAny hashes an interface value based on memory content of v. It uses internal struct's memory
// layout, which is unsafe practice. Avoid using it.
func (u Hasher) HashAny(v any) uint64 {
	h := (*hold)(unsafe.Pointer(&v))
	return u.HashMem(h.ptr, *h.rtype)
}

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint64 {
	if size == 4 {
		return uint64(rtHash32(addr, uint(u)))
	} else if size == 8 {
		return uint64(rtHash64(addr, uint(u)))
	}
	return uint64(rtHash(addr, uint(u), size))
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return u.HashMem(unsafe.Pointer(&b[0]), uintptr(uint(len(b))))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint64 {
	if bits.UintSize == 32 {
		return uint64(rtHash32(unsafe.Pointer(&v), uint(u)))
	}
	return uint64(rtHash64(unsafe.Pointer(&v), uint(u)))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint) uint64 {
	if bits.UintSize == 32 {
		return uint64(rtHash32(unsafe.Pointer(&v), uint(u)))
	}
	return uint64(rtHash64(unsafe.Pointer(&v), uint(u)))
}

// HashString directly hashes the contents of a string, it's faster than HashAny(string).
func (u Hasher) HashString(v string) uint64 {
	return uint64(rtStrHash(unsafe.Pointer(&v), uint(u)))
}
