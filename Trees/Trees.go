package Trees

import "golang.org/x/exp/constraints"

// Dictionary represents an ordered map with unique keys implemented using a
// binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty dictionary, the return value will be (x Pair, false bool). In this
// case the value of x is the zero value and shouldn't be used.
// Absence of a key is never an error.
// Implementations aren't safe for concurrent use.
type Dictionary[K constraints.Ordered, V any] interface {
	//Insert the pair (k, v). If k is already present its value is replaced
	//in place and the structure of the tree doesn't change. Returns true if
	//k was newly added.
	Insert(k K, v V) bool
	//Remove k and return its value. Returns (zero, false) if k is absent.
	Remove(k K) (V, bool)
	//Get the value of k.
	Get(k K) (V, bool)
	//Has k. Like Get without returning the value.
	Has(k K) bool
	//Minimum pair of the dictionary.
	Minimum() (Pair[K, V], bool)
	//Maximum pair of the dictionary.
	Maximum() (Pair[K, V], bool)
	//Size is the number of keys.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//InOrder iterator: ascending keys.
	InOrder() Iterator[K, V]
	//ReverseInOrder iterator: descending keys.
	ReverseInOrder() Iterator[K, V]
	//PreOrder iterator: node, left, right.
	PreOrder() Iterator[K, V]
	//PostOrder iterator: left, right, node.
	PostOrder() Iterator[K, V]
	//LevelOrder iterator: breadth first, left to right in each level.
	LevelOrder() Iterator[K, V]
	//Corrupt returns whether the tree has corrupt structures: a key out of
	//order, a wrong cached height or size, or, for balanced implementations,
	//a node whose children heights differ by more than 1.
	Corrupt() bool
}

// Iterator is a pull based cursor over the pairs of a Dictionary. The order
// is fixed by the factory that created it. It holds its own worklist of
// pending nodes, so the dictionary must not be modified while an Iterator
// is in use; the result of doing so is undefined. Discard the Iterator
// instead.
type Iterator[K constraints.Ordered, V any] interface {
	//HasNext reports whether Next will succeed.
	HasNext() bool
	//Next pair. Returns an *ExhaustedError once HasNext is false.
	Next() (Pair[K, V], error)
}

var _ Dictionary[int, struct{}] = (*Dict[int, struct{}])(nil)
