package Trees

import "fmt"

// ExhaustedError is returned by Iterator.Next when there are no more elements.
// Order names the traversal that ran out.
type ExhaustedError struct {
	Order string
}

func (e *ExhaustedError) Error() string {
	return "Iterator is Exhausted: no more elements in " + e.Order + " traversal."
}

// LengthMismatchError is returned when building a Dict from key and value
// slices of different lengths. Nothing is inserted in that case.
type LengthMismatchError struct {
	Keys, Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length of keys %d should match length of values %d.", e.Keys, e.Values)
}
