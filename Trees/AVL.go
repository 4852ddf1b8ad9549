package Trees

import (
	"cmp"
	"iter"
)

// AVL is a height-balanced binary search tree with no repeated keys. For
// every node the heights of its two subtrees differ by at most 1, so the
// height D of the tree is less than 1.44*log2(n+2).
// Inserting a key that's already in the tree is a no-op. Deletion isn't
// supported.
type AVL[K any] struct {
	root *avlNode[K]
	size int
	order[K]
}

// NewAVL returns an empty AVL ordered by cmp.Compare.
func NewAVL[K cmp.Ordered]() *AVL[K] {
	return &AVL[K]{order: ordered[K]()}
}

// NewAVLFunc returns an empty AVL ordered by compare.
func NewAVLFunc[K any](compare Comparator[K]) *AVL[K] {
	return &AVL[K]{order: custom(compare)}
}

// insert key to the subtree rooting at *curPtr recursively. Returns
// whether a node was created. On the way back up the heights are updated
// and the first unbalanced node is fixed with a single or double rotation.
func (u *AVL[K]) insert(curPtr **avlNode[K], key K) (bool, error) {
	cur := *curPtr
	if cur == nil {
		*curPtr = &avlNode[K]{key: key, height: 1}
		return true, nil
	}
	c, err := u.compare(key, cur.key)
	if err != nil {
		return false, err
	}
	inserted := false
	if c < 0 {
		inserted, err = u.insert(&cur.left, key)
	} else if c > 0 {
		inserted, err = u.insert(&cur.right, key)
	} else {
		return false, nil
	}
	if !inserted {
		return false, err
	}
	cur.update()
	// the side of the child the new key landed in is the side the child leans to.
	if b := cur.balance(); b > 1 {
		if cur.left.balance() < 0 {
			rotateAVLLeft(&cur.left)
		}
		rotateAVLRight(curPtr)
	} else if b < -1 {
		if cur.right.balance() > 0 {
			rotateAVLRight(&cur.right)
		}
		rotateAVLLeft(curPtr)
	}
	return true, nil
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVL[K]) Insert(key K) error {
	inserted, err := u.insert(&u.root, key)
	if inserted {
		u.size++
	}
	return err
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *AVL[K]) Search(key K) (bool, error) {
	return search(u.root, key, u.order)
}

// All [Tree.All]. The auxiliary field is the node's height.
func (u *AVL[K]) All() iter.Seq2[K, int] {
	return inOrder[K, int](u.root)
}

func (u *AVL[K]) Len() int {
	return u.size
}

// Height [Tree.Height]. Time: O(1)
func (u *AVL[K]) Height() int {
	return heightOf(u.root)
}

func (u *AVL[K]) Levels() [][]K {
	return levels[K](u.root)
}

// Check [Tree.Check]. Recursive.
func (u *AVL[K]) Check() error {
	if err := checkOrder(u.All(), u.order, true); err != nil {
		return err
	}
	_, err := checkAVL(u.root)
	return err
}

// checkAVL recomputes the height of cur and compares it to the stored ones.
func checkAVL[K any](cur *avlNode[K]) (int, error) {
	if cur == nil {
		return 0, nil
	}
	lh, err := checkAVL(cur.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkAVL(cur.right)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); h != cur.height {
		return 0, &CorruptError{cur.key, "stored height differs from subtree height"}
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, &CorruptError{cur.key, "balance factor out of [-1,1]"}
	}
	return cur.height, nil
}
