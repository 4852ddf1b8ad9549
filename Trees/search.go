package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Queues"
)

// search is the descent shared by all trees. Equal keys stop the descent.
// Time: O(D); Space: O(1)
func search[K any, P keyed[K, P]](cur P, key K, o order[K]) (bool, error) {
	var nilP P
	for cur != nilP {
		c, err := o.compare(key, cur.getKey())
		if err != nil {
			return false, err
		}
		l, r := cur.children()
		if c < 0 {
			cur = l
		} else if c > 0 {
			cur = r
		} else {
			return true, nil
		}
	}
	return false, nil
}

// inOrder traversal of the subtree at root, iterative with an explicit stack.
// Time: amortized O(1) per pair; Space: O(D)
func inOrder[K, A any, P node[K, A, P]](root P) iter.Seq2[K, A] {
	return func(yield func(K, A) bool) {
		var nilP P
		st := make([]P, 0, 32)
		for cur := root; cur != nilP || len(st) > 0; {
			for ; cur != nilP; cur, _ = cur.children() {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.getKey(), cur.getAux()) {
				return
			}
			_, cur = cur.children()
		}
	}
}

// depth counts the nodes on the longest path from cur down. Recursive.
func depth[K any, P keyed[K, P]](cur P) int {
	var nilP P
	if cur == nilP {
		return 0
	}
	l, r := cur.children()
	return 1 + max(depth[K](l), depth[K](r))
}

// levels is a breadth first walk collecting the keys of each depth.
func levels[K any, P keyed[K, P]](root P) [][]K {
	var nilP P
	if root == nilP {
		return nil
	}
	var ls [][]K
	q := Queues.MakeArrayQueue[P](16)
	for q.Push(root); !q.Empty(); {
		l := make([]K, 0, q.Size())
		for range q.Size() {
			cur, _ := q.Pop()
			l = append(l, cur.getKey())
			a, b := cur.children()
			if a != nilP {
				q.Push(a)
			}
			if b != nilP {
				q.Push(b)
			}
		}
		ls = append(ls, l)
	}
	return ls
}

// checkOrder walks keys in order and reports the first key smaller than its
// predecessor. When strict, equal neighbours are reported as well.
func checkOrder[K, A any](all iter.Seq2[K, A], o order[K], strict bool) error {
	first := true
	var prev K
	for k := range all {
		if !first {
			c, err := o.compare(prev, k)
			if err != nil {
				return err
			}
			if c > 0 || (strict && c == 0) {
				return &CorruptError{k, "keys out of order"}
			}
		}
		prev, first = k, false
	}
	return nil
}
