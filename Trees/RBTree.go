package Trees

import (
	"cmp"
	"iter"
)

// Color of a RBTree node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// rotation is the fix-up a frame asks its caller to perform on the caller's
// own subtree. It names the rotations performed, outer first.
type rotation uint8

const (
	noRotation rotation = iota
	leftLeft            // single left rotation
	rightRight          // single right rotation
	leftRight           // left rotation of the left child, then right rotation
	rightLeft           // right rotation of the right child, then left rotation
)

// RBTree is a red-black tree with no repeated keys. The root is black, no
// red node has a red child, and every path from the root down to an empty
// subtree passes the same number of black nodes. The height D is at most
// 2*log2(n+1).
// Insertion fixes red-red conflicts bottom-up as the recursion unwinds.
// Nodes don't point to their parents, the parent of a frame's node is
// passed down the recursion instead. Inserting a key that's already in the
// tree is a no-op. Deletion isn't supported.
type RBTree[K any] struct {
	root *rbNode[K]
	size int
	order[K]
}

// NewRBTree returns an empty RBTree ordered by cmp.Compare.
func NewRBTree[K cmp.Ordered]() *RBTree[K] {
	return &RBTree[K]{order: ordered[K]()}
}

// NewRBTreeFunc returns an empty RBTree ordered by compare.
func NewRBTreeFunc[K any](compare Comparator[K]) *RBTree[K] {
	return &RBTree[K]{order: custom(compare)}
}

// perform the rotation r on the subtree *curPtr. The new subtree root is
// colored black and the old root, now its child, red.
func perform[K any](curPtr **rbNode[K], r rotation) {
	switch r {
	case leftLeft:
		rotateRBLeft(curPtr)
		(*curPtr).left.color = Red
	case rightRight:
		rotateRBRight(curPtr)
		(*curPtr).right.color = Red
	case rightLeft:
		rotateRBRight(&(*curPtr).right)
		rotateRBLeft(curPtr)
		(*curPtr).left.color = Red
	case leftRight:
		rotateRBLeft(&(*curPtr).left)
		rotateRBRight(curPtr)
		(*curPtr).right.color = Red
	default:
		return
	}
	(*curPtr).color = Black
}

// insert key to the subtree rooting at *curPtr, whose parent node is parent
// (nil for the root). Returns whether a node was created and the rotation
// parent has to perform on its own subtree.
// A red-red conflict is found at cur when cur isn't the root, is red, and
// the child just returned is red. If cur's sibling is black the conflict is
// resolved by rotating at parent. Otherwise cur and its sibling turn black
// and parent turns red, unless it's the root, which may raise a conflict
// one level up.
func (u *RBTree[K]) insert(curPtr **rbNode[K], parent *rbNode[K], key K) (bool, rotation, error) {
	cur := *curPtr
	if cur == nil {
		*curPtr = &rbNode[K]{key: key, color: Red}
		return true, noRotation, nil
	}
	c, err := u.compare(key, cur.key)
	if err != nil {
		return false, noRotation, err
	}
	var child **rbNode[K]
	if c < 0 {
		child = &cur.left
	} else if c > 0 {
		child = &cur.right
	} else {
		return false, noRotation, nil
	}
	inserted, r, err := u.insert(child, cur, key)
	if !inserted {
		return false, noRotation, err
	}
	conflict := parent != nil && cur.red() && (*child).red()
	perform(curPtr, r)
	if !conflict {
		return true, noRotation, nil
	}
	if parent.right == cur {
		if !parent.left.red() {
			if cur.left.red() {
				return true, rightLeft, nil
			}
			return true, leftLeft, nil
		}
		parent.left.color = Black
	} else {
		if !parent.right.red() {
			if cur.left.red() {
				return true, rightRight, nil
			}
			return true, leftRight, nil
		}
		parent.right.color = Black
	}
	cur.color = Black
	if parent != u.root {
		parent.color = Red
	}
	return true, noRotation, nil
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *RBTree[K]) Insert(key K) error {
	if u.root == nil {
		u.root, u.size = &rbNode[K]{key: key, color: Black}, 1
		return nil
	}
	inserted, _, err := u.insert(&u.root, nil, key)
	if inserted {
		u.size++
	}
	return err
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *RBTree[K]) Search(key K) (bool, error) {
	return search(u.root, key, u.order)
}

// All [Tree.All]. The auxiliary field is the node's Color.
func (u *RBTree[K]) All() iter.Seq2[K, Color] {
	return inOrder[K, Color](u.root)
}

func (u *RBTree[K]) Len() int {
	return u.size
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *RBTree[K]) Height() int {
	return depth[K](u.root)
}

func (u *RBTree[K]) Levels() [][]K {
	return levels[K](u.root)
}

// Check [Tree.Check]. Recursive.
func (u *RBTree[K]) Check() error {
	if u.root.red() {
		return &CorruptError{u.root.key, "red root"}
	}
	if err := checkOrder(u.All(), u.order, true); err != nil {
		return err
	}
	_, err := checkRB(u.root)
	return err
}

// checkRB returns the black-height of cur.
func checkRB[K any](cur *rbNode[K]) (int, error) {
	if cur == nil {
		return 1, nil
	}
	if cur.red() && (cur.left.red() || cur.right.red()) {
		return 0, &CorruptError{cur.key, "red node with a red child"}
	}
	lb, err := checkRB(cur.left)
	if err != nil {
		return 0, err
	}
	rb, err := checkRB(cur.right)
	if err != nil {
		return 0, err
	}
	if lb != rb {
		return 0, &CorruptError{cur.key, "unequal black-heights"}
	}
	if cur.color == Black {
		lb++
	}
	return lb, nil
}
