package cmps

import (
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	Fixed_Utils "github.com/g-m-twostay/fixed-utils"
	"github.com/g-m-twostay/fixed-utils/Maps/FixedMap"
	"github.com/g-m-twostay/fixed-utils/Sets/FixedSet"
)

// linkedhashmap is the ecosystem's insertion-ordered map; under any operation stream both maps must
// agree on contents and on iteration order.
func TestFixedMapMatchesLinkedHashMap(t *testing.T) {
	const c = 512
	fm := FixedMap.New[int, int](c, 0)
	lm := linkedhashmap.New()
	for op := 0; op < 8192; op++ {
		k := int(Fixed_Utils.CheapRandN(c))
		switch Fixed_Utils.CheapRandN(4) {
		case 0:
			fm.Remove(k)
			lm.Remove(k)
		default:
			fm.Store(k, op)
			lm.Put(k, op)
		}
	}
	if int(fm.Size()) != lm.Size() {
		t.Fatal("sizes diverged", fm.Size(), lm.Size())
	}
	ks := lm.Keys()
	i := 0
	fm.Range(func(k, v int) bool {
		if ks[i].(int) != k {
			t.Error("iteration order diverged at", i)
		}
		if want, _ := lm.Get(k); want.(int) != v {
			t.Error("value diverged for", k)
		}
		i++
		return true
	})
	if i != len(ks) {
		t.Error("iteration lengths diverged", i, len(ks))
	}
}

func BenchmarkFixedMap_PutGet(b *testing.B) {
	M := FixedMap.New[int, int](benchN, 0)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchN; i++ {
			M.Store(i, i)
		}
		for i := 0; i < benchN; i++ {
			sideEffN, sideEff = M.Load(i)
		}
		M.Clear()
	}
}

func BenchmarkLinkedHashMap_PutGet(b *testing.B) {
	for range b.N {
		M := linkedhashmap.New()
		for i := 0; i < benchN; i++ {
			M.Put(i, i)
		}
		for i := 0; i < benchN; i++ {
			_, sideEff = M.Get(i)
		}
	}
}

func BenchmarkFixedSet_PutIter(b *testing.B) {
	S := FixedSet.New[int](benchN, 0)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchN; i++ {
			S.Put(i)
		}
		S.Range(func(e int) bool {
			sideEffN = e
			return true
		})
		S.Clear()
	}
}

func BenchmarkLinkedHashSet_PutIter(b *testing.B) {
	for range b.N {
		S := linkedhashset.New()
		for i := 0; i < benchN; i++ {
			S.Add(i)
		}
		for _, e := range S.Values() {
			sideEffN = e.(int)
		}
	}
}
