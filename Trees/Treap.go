package Trees

import (
	"cmp"
	"iter"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Treap is a binary search tree on keys and a max-heap on priorities, which
// are drawn at random once for each new node. The expected height D is
// O(log n) whatever the insertion order, as long as priorities rarely
// collide: P should be wide enough for the intended size, uint32 or uint64
// in general.
// Unlike AVL and RBTree, Treap keeps repeated keys. A key equal to a node's
// key is inserted to the node's left subtree.
type Treap[K any, P constraints.Unsigned] struct {
	root *treapNode[K, P]
	size int
	src  rand.Source
	order[K]
}

// globalSource draws from the runtime seeded generator of math/rand/v2.
type globalSource struct{}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

// NewTreap returns an empty Treap ordered by cmp.Compare drawing priorities
// from src. A nil src uses the global generator, tests should pass a
// seeded one, for example rand.NewPCG(seed, seed), to reproduce exact shapes.
func NewTreap[K cmp.Ordered, P constraints.Unsigned](src rand.Source) *Treap[K, P] {
	return newTreap[K, P](ordered[K](), src)
}

// NewTreapFunc returns an empty Treap ordered by compare drawing priorities from src.
func NewTreapFunc[K any, P constraints.Unsigned](compare Comparator[K], src rand.Source) *Treap[K, P] {
	return newTreap[K, P](custom(compare), src)
}

func newTreap[K any, P constraints.Unsigned](o order[K], src rand.Source) *Treap[K, P] {
	if src == nil {
		src = globalSource{}
	}
	return &Treap[K, P]{src: src, order: o}
}

// insert key to the subtree rooting at *curPtr recursively. At most one
// rotation per level restores the heap order as the new leaf's priority
// bubbles up.
func (u *Treap[K, P]) insert(curPtr **treapNode[K, P], key K) error {
	cur := *curPtr
	if cur == nil {
		*curPtr = &treapNode[K, P]{key: key, priority: P(u.src.Uint64())}
		return nil
	}
	c, err := u.compare(key, cur.key)
	if err != nil {
		return err
	}
	if c <= 0 {
		if err = u.insert(&cur.left, key); err == nil && cur.left.priority > cur.priority {
			rotateTreapRight(curPtr)
		}
	} else {
		if err = u.insert(&cur.right, key); err == nil && cur.right.priority > cur.priority {
			rotateTreapLeft(curPtr)
		}
	}
	return err
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *Treap[K, P]) Insert(key K) error {
	err := u.insert(&u.root, key)
	if err == nil {
		u.size++
	}
	return err
}

// delete one node holding key from the subtree rooting at *curPtr. A node
// with two children is rotated down, lifting its child of higher priority,
// until it has at most one child and can be spliced out.
func (u *Treap[K, P]) delete(curPtr **treapNode[K, P], key K) (bool, error) {
	cur := *curPtr
	if cur == nil {
		return false, nil
	}
	c, err := u.compare(key, cur.key)
	if err != nil {
		return false, err
	}
	if c < 0 {
		return u.delete(&cur.left, key)
	} else if c > 0 {
		return u.delete(&cur.right, key)
	}
	if cur.left == nil {
		*curPtr = cur.right
	} else if cur.right == nil {
		*curPtr = cur.left
	} else if cur.left.priority < cur.right.priority {
		rotateTreapLeft(curPtr)
		return u.delete(&(*curPtr).left, key)
	} else {
		rotateTreapRight(curPtr)
		return u.delete(&(*curPtr).right, key)
	}
	return true, nil
}

// Delete [Deleter.Delete]. Recursive.
// Time: O(D)
func (u *Treap[K, P]) Delete(key K) error {
	deleted, err := u.delete(&u.root, key)
	if deleted {
		u.size--
	}
	return err
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *Treap[K, P]) Search(key K) (bool, error) {
	return search(u.root, key, u.order)
}

// All [Tree.All]. The auxiliary field is the node's priority.
func (u *Treap[K, P]) All() iter.Seq2[K, P] {
	return inOrder[K, P](u.root)
}

func (u *Treap[K, P]) Len() int {
	return u.size
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *Treap[K, P]) Height() int {
	return depth[K](u.root)
}

func (u *Treap[K, P]) Levels() [][]K {
	return levels[K](u.root)
}

// Check [Tree.Check]. Equal keys may sit on either side of each other.
func (u *Treap[K, P]) Check() error {
	if err := checkOrder(u.All(), u.order, false); err != nil {
		return err
	}
	return checkHeap(u.root)
}

func checkHeap[K any, P constraints.Unsigned](cur *treapNode[K, P]) error {
	if cur == nil {
		return nil
	}
	if (cur.left != nil && cur.left.priority > cur.priority) || (cur.right != nil && cur.right.priority > cur.priority) {
		return &CorruptError{cur.key, "child priority above parent's"}
	}
	if err := checkHeap(cur.left); err != nil {
		return err
	}
	return checkHeap(cur.right)
}
