package Trees

import "iter"

// Tree represents A self-balancing binary search tree over keys of type K.
// Every node carries an auxiliary field of type A that its balancing scheme
// needs: the height for AVL, the Color for RBTree and the priority for Treap.
// Methods that compare keys return an error only when the key can't be
// ordered against the keys already in the tree, see KeyOrderError. In that
// case the tree is left exactly as it was before the call.
// A Tree is owned by one goroutine; callers sharing one must serialize all
// calls on it.
type Tree[K, A any] interface {
	//Insert key into the Tree. Duplicate handling depends on implementation.
	Insert(key K) error
	//Search reports whether key is in the Tree. A miss isn't an error.
	Search(key K) (bool, error)
	//All returns the in-order sequence of (key, auxiliary field) pairs. The
	//sequence can be ranged over any number of times. The tree mustn't be
	//modified while ranging.
	All() iter.Seq2[K, A]
	//Len is the number of nodes in the Tree.
	Len() int
	//Height of the Tree, 0 for an empty one.
	Height() int
	//Levels returns the keys level by level, root first.
	Levels() [][]K
	//Check returns A *CorruptError describing the first violated invariant,
	//or nil.
	Check() error
}

// Deleter is A Tree that also supports deletion. Deleting an absent key is a no-op.
type Deleter[K, A any] interface {
	Tree[K, A]
	Delete(key K) error
}

var (
	_ Tree[int, int]       = (*AVL[int])(nil)
	_ Tree[int, Color]     = (*RBTree[int])(nil)
	_ Deleter[int, uint32] = (*Treap[int, uint32])(nil)
)
