package cmps

import (
	"math"
	"testing"

	"github.com/g-m-twostay/fixed-utils/Sets/FixedSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The trees pay O(log n) per insert for sorted iteration; the fixed set pays O(1) amortized for
// insertion-ordered iteration. Same workload, different order guarantee.

type llrbInt int

func (x llrbInt) Less(than llrb.Item) bool {
	return x < than.(llrbInt)
}

func BenchmarkFixedSet_InsertWalk(b *testing.B) {
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

func BenchmarkBTree_InsertWalk(b *testing.B) {
	for range b.N {
		T := btree.NewG[int](2, func(a, c int) bool { return a < c })
		for i := 0; i < benchN; i++ {
			T.ReplaceOrInsert(i)
		}
		T.Ascend(func(e int) bool {
			sideEffN = e
			return true
		})
	}
}

func BenchmarkLLRB_InsertWalk(b *testing.B) {
	for range b.N {
		T := llrb.New()
		for i := 0; i < benchN; i++ {
			T.ReplaceOrInsert(llrbInt(i))
		}
		T.AscendGreaterOrEqual(llrbInt(math.MinInt), func(e llrb.Item) bool {
			sideEffN = int(e.(llrbInt))
			return true
		})
	}
}
