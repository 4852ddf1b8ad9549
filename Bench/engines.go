package Bench

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/g-m-twostay/go-trees/Trees"
)

// Engine is the part of a tree the runner times.
type Engine interface {
	Insert(key int) error
	Search(key int) (bool, error)
}

// treapStream separates the treap's priority stream from the query stream
// drawn with the same seed.
const treapStream = 0x9e3779b97f4a7c15

var factories = map[string]func(seed uint64) Engine{
	"AVL": func(uint64) Engine {
		return Trees.NewAVL[int]()
	},
	"RB": func(uint64) Engine {
		return Trees.NewRBTree[int]()
	},
	"Treap": func(seed uint64) Engine {
		return Trees.NewTreap[int, uint64](rand.NewPCG(seed, seed^treapStream))
	},
}

// EngineNames in sorted order.
func EngineNames() []string {
	return slices.Sorted(maps.Keys(factories))
}

// NewEngine returns an empty tree of the named engine.
func NewEngine(name string, seed uint64) (Engine, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, want one of %v", name, EngineNames())
	}
	return f(seed), nil
}
