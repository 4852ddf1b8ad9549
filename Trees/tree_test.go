package Trees

import (
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

var rg = rand.New(rand.NewPCG(0, 0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

func keysOf[K, A any](all iter.Seq2[K, A]) []K {
	var s []K
	for k := range all {
		s = append(s, k)
	}
	return s
}

// testInsert fills tree with random keys and checks it against a gods
// red-black tree, or against a sorted slice when the tree keeps duplicates.
func testInsert[A any](t *testing.T, tree Tree[int, A], dups bool) {
	t.Helper()
	content := make(map[int]struct{})
	oracle := redblacktree.NewWithIntComparator()
	var all []int
	for range tAddN {
		a := rg.IntN(tAddValRange)
		if err := tree.Insert(a); err != nil {
			t.Fatalf("failed to insert key %v: %v", a, err)
		}
		content[a] = struct{}{}
		oracle.Put(a, nil)
		all = append(all, a)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	want := make([]int, 0, len(all))
	if dups {
		want = append(want, all...)
		slices.Sort(want)
	} else {
		for _, k := range oracle.Keys() {
			want = append(want, k.(int))
		}
	}
	if tree.Len() != len(want) {
		t.Errorf("tree size is %d, want %d", tree.Len(), len(want))
	}
	if got := keysOf(tree.All()); !slices.Equal(got, want) {
		t.Errorf("in-order keys differ from the oracle's")
	}
	for k := range content {
		if has, _ := tree.Search(k); !has {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for range tAddN {
		a := rg.IntN(tAddValRange * 2)
		_, in := content[a]
		if has, _ := tree.Search(a); has != in {
			t.Errorf("search of %v is %v, want %v", a, has, in)
		}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Len())
}

// testSorted inserts 0..n-1 ascending, then descending keys into a fresh
// tree each time, and checks the height stays within bound(n).
func testSorted[A any](t *testing.T, mk func() Tree[int, A], bound func(n float64) float64) {
	t.Helper()
	const n = 1 << 12
	for _, desc := range []bool{false, true} {
		tree := mk()
		for i := range n {
			if desc {
				i = n - 1 - i
			}
			if err := tree.Insert(i); err != nil {
				t.Fatal(err)
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
		if h := float64(tree.Height()); h > bound(n) {
			t.Errorf("height %v above %v", h, bound(n))
		}
		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		if !slices.Equal(keysOf(tree.All()), want) {
			t.Error("in-order keys aren't 0..n-1")
		}
	}
}

func avlBound(n float64) float64 { return 1.44 * math.Log2(n+2) }

func rbBound(n float64) float64 { return 2 * math.Log2(n+1) }
