package Trees

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is wrapped by every KeyOrderError.
var ErrTypeMismatch = errors.New("Trees: key type mismatch")

// KeyOrderError is returned when Key can't be compared to Against, a key
// already in the tree. Cause is the value the comparator panicked with.
type KeyOrderError struct {
	Key, Against any
	Cause        any
}

func (e *KeyOrderError) Error() string {
	return fmt.Sprintf("Trees: can't order key %v (%T) against %v (%T): %v", e.Key, e.Key, e.Against, e.Against, e.Cause)
}

func (e *KeyOrderError) Unwrap() error {
	return ErrTypeMismatch
}

// CorruptError reports a node At whose subtree breaks an invariant.
type CorruptError struct {
	At     any
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("Trees: corrupt at key %v: %s", e.At, e.Reason)
}
