package Trees

import "golang.org/x/exp/constraints"

// keyed is the part of the node variants that the shared descent relies on.
// P is the pointer type of the node itself, its zero value is the empty subtree.
type keyed[K any, P comparable] interface {
	comparable
	getKey() K
	children() (P, P)
}

// node adds the auxiliary field used by traversal.
type node[K, A any, P comparable] interface {
	keyed[K, P]
	getAux() A
}

// A node in the AVL.
// height is 1 for a leaf, and the height of an empty subtree is 0.
type avlNode[K any] struct {
	key         K
	left, right *avlNode[K]
	height      int
}

func (n *avlNode[K]) getKey() K { return n.key }
func (n *avlNode[K]) getAux() int { return n.height }
func (n *avlNode[K]) children() (*avlNode[K], *avlNode[K]) { return n.left, n.right }

func heightOf[K any](n *avlNode[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// update the height of n from its children's.
func (n *avlNode[K]) update() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

// balance factor of n.
func (n *avlNode[K]) balance() int {
	return heightOf(n.left) - heightOf(n.right)
}

// rotateAVLLeft performs a left rotation on the subtree *curPtr. Both
// heights are recomputed bottom-up.
// Time: O(1); Space: O(1)
func rotateAVLLeft[K any](curPtr **avlNode[K]) {
	r := *curPtr
	rc := r.right
	r.right = rc.left
	rc.left = r
	r.update()
	rc.update()
	*curPtr = rc
}

// rotateAVLRight is the mirror of rotateAVLLeft.
// Time: O(1); Space: O(1)
func rotateAVLRight[K any](curPtr **avlNode[K]) {
	r := *curPtr
	lc := r.left
	r.left = lc.right
	lc.right = r
	r.update()
	lc.update()
	*curPtr = lc
}

// A node in the RBTree. The zero value is a red leaf.
type rbNode[K any] struct {
	key         K
	left, right *rbNode[K]
	color       Color
}

func (n *rbNode[K]) getKey() K { return n.key }
func (n *rbNode[K]) getAux() Color { return n.color }
func (n *rbNode[K]) children() (*rbNode[K], *rbNode[K]) { return n.left, n.right }

// red is false for the empty subtree, which counts as black.
func (n *rbNode[K]) red() bool {
	return n != nil && n.color == Red
}

func rotateRBLeft[K any](curPtr **rbNode[K]) {
	r := *curPtr
	rc := r.right
	r.right = rc.left
	rc.left = r
	*curPtr = rc
}

func rotateRBRight[K any](curPtr **rbNode[K]) {
	r := *curPtr
	lc := r.left
	r.left = lc.right
	lc.right = r
	*curPtr = lc
}

// A node in the Treap. priority is drawn once when the node is created.
type treapNode[K any, P constraints.Unsigned] struct {
	key         K
	left, right *treapNode[K, P]
	priority    P
}

func (n *treapNode[K, P]) getKey() K { return n.key }
func (n *treapNode[K, P]) getAux() P { return n.priority }
func (n *treapNode[K, P]) children() (*treapNode[K, P], *treapNode[K, P]) {
	return n.left, n.right
}

func rotateTreapLeft[K any, P constraints.Unsigned](curPtr **treapNode[K, P]) {
	r := *curPtr
	rc := r.right
	r.right = rc.left
	rc.left = r
	*curPtr = rc
}

func rotateTreapRight[K any, P constraints.Unsigned](curPtr **treapNode[K, P]) {
	r := *curPtr
	lc := r.left
	r.left = lc.right
	lc.right = r
	*curPtr = lc
}
