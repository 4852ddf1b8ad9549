package Trees

import (
	"cmp"
	"errors"
	"runtime"

	"github.com/emirpasic/gods/utils"
)

// Comparator returns a negative number when a<b, 0 when a==b and a positive
// number when a>b. It must be a total order over the keys it's given. It may
// panic when it can't order a and b, the panic is reported as A KeyOrderError.
// Runtime errors other than failed type assertions aren't recovered.
type Comparator[K any] func(a, b K) int

// FromGods adapts a gods comparator, for example utils.IntComparator, for
// trees holding dynamic keys.
func FromGods(c utils.Comparator) Comparator[any] {
	return Comparator[any](c)
}

// AnyCompare orders two dynamic keys holding the same built-in ordered type.
// It panics with *KeyOrderError when the types differ or aren't ordered.
func AnyCompare(a, b any) int {
	switch x := a.(type) {
	case int:
		return compareAs(x, b)
	case int8:
		return compareAs(x, b)
	case int16:
		return compareAs(x, b)
	case int32:
		return compareAs(x, b)
	case int64:
		return compareAs(x, b)
	case uint:
		return compareAs(x, b)
	case uint8:
		return compareAs(x, b)
	case uint16:
		return compareAs(x, b)
	case uint32:
		return compareAs(x, b)
	case uint64:
		return compareAs(x, b)
	case uintptr:
		return compareAs(x, b)
	case float32:
		return compareAs(x, b)
	case float64:
		return compareAs(x, b)
	case string:
		return compareAs(x, b)
	}
	panic(&KeyOrderError{a, b, "unordered key type"})
}

func compareAs[T cmp.Ordered](x T, b any) int {
	if y, ok := b.(T); ok {
		return cmp.Compare(x, y)
	}
	panic(&KeyOrderError{x, b, "mixed key types"})
}

// order is embedded by every tree.
type order[K any] struct {
	cmp   Comparator[K]
	total bool //cmp never panics, skip the recover.
}

func ordered[K cmp.Ordered]() order[K] {
	return order[K]{cmp.Compare[K], true}
}

func custom[K any](c Comparator[K]) order[K] {
	return order[K]{c, false}
}

// compare a, the key being looked for, against b, a key in the tree. A
// comparator panic becomes a *KeyOrderError, except runtime errors other
// than failed type assertions, which are bugs in the comparator and panic
// again.
func (o order[K]) compare(a, b K) (c int, err error) {
	if o.total {
		return o.cmp(a, b), nil
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*KeyOrderError); ok {
				err = e
			} else if re, ok := r.(runtime.Error); ok && !isAssertion(re) {
				panic(r)
			} else {
				err = &KeyOrderError{a, b, r}
			}
		}
	}()
	return o.cmp(a, b), nil
}

func isAssertion(err error) bool {
	var te *runtime.TypeAssertionError
	return errors.As(err, &te)
}
