package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair is a key and its value as stored in a Dict.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v: %v)", p.Key, p.Value)
}
