package Trees

import (
	"github.com/g-m-twostay/go-dicts/Queues"
	"golang.org/x/exp/constraints"
)

// All iterators keep pending nodes in a Queues.Deque. The pre, in and post
// order ones use it as a stack through the front; level order uses it as a
// FIFO. Nothing is computed until Next is called, except pushing the first
// nodes.

type inOrder[K constraints.Ordered, V any] struct {
	work    Queues.Deque[*node[K, V]]
	reverse bool
}

func (u *Dict[K, V]) newInOrder(reverse bool) *inOrder[K, V] {
	it := &inOrder[K, V]{reverse: reverse}
	it.pushSpine(u.root)
	return it
}

// InOrder [Dictionary.InOrder]
// Time: amortized O(1) per call to Next; Space: O(D)
func (u *Dict[K, V]) InOrder() Iterator[K, V] {
	return u.newInOrder(false)
}

// ReverseInOrder [Dictionary.ReverseInOrder]
// Time: amortized O(1) per call to Next; Space: O(D)
func (u *Dict[K, V]) ReverseInOrder() Iterator[K, V] {
	return u.newInOrder(true)
}

// pushSpine pushes n and its chain of left children, or right children if reverse.
func (it *inOrder[K, V]) pushSpine(n *node[K, V]) {
	for n != nil {
		it.work.PushFront(n)
		if it.reverse {
			n = n.r
		} else {
			n = n.l
		}
	}
}

func (it *inOrder[K, V]) HasNext() bool {
	return !it.work.Empty()
}

func (it *inOrder[K, V]) Next() (Pair[K, V], error) {
	n, err := it.work.PopFront()
	if err != nil {
		if it.reverse {
			return Pair[K, V]{}, &ExhaustedError{"reverse in-order"}
		}
		return Pair[K, V]{}, &ExhaustedError{"in-order"}
	}
	if it.reverse {
		it.pushSpine(n.l)
	} else {
		it.pushSpine(n.r)
	}
	return n.p, nil
}

type preOrder[K constraints.Ordered, V any] struct {
	work Queues.Deque[*node[K, V]]
}

// PreOrder [Dictionary.PreOrder]
// Time: O(1) per call to Next; Space: O(D)
func (u *Dict[K, V]) PreOrder() Iterator[K, V] {
	it := new(preOrder[K, V])
	if u.root != nil {
		it.work.PushFront(u.root)
	}
	return it
}

func (it *preOrder[K, V]) HasNext() bool {
	return !it.work.Empty()
}

func (it *preOrder[K, V]) Next() (Pair[K, V], error) {
	n, err := it.work.PopFront()
	if err != nil {
		return Pair[K, V]{}, &ExhaustedError{"pre-order"}
	}
	if n.r != nil {
		it.work.PushFront(n.r)
	}
	if n.l != nil {
		it.work.PushFront(n.l)
	}
	return n.p, nil
}

// postOrder descends from cur along left children, then turns right at the
// top of the stack unless that right subtree was just finished (last).
type postOrder[K constraints.Ordered, V any] struct {
	work      Queues.Deque[*node[K, V]]
	cur, last *node[K, V]
}

// PostOrder [Dictionary.PostOrder]
// Time: amortized O(1) per call to Next; Space: O(D)
func (u *Dict[K, V]) PostOrder() Iterator[K, V] {
	return &postOrder[K, V]{cur: u.root}
}

func (it *postOrder[K, V]) HasNext() bool {
	return it.cur != nil || !it.work.Empty()
}

func (it *postOrder[K, V]) Next() (Pair[K, V], error) {
	for {
		if it.cur != nil {
			it.work.PushFront(it.cur)
			it.cur = it.cur.l
			continue
		}
		top := it.work.PeekFront()
		if top == nil {
			return Pair[K, V]{}, &ExhaustedError{"post-order"}
		}
		if top.r != nil && top.r != it.last {
			it.cur = top.r
			continue
		}
		it.work.PopFront()
		it.last = top
		return top.p, nil
	}
}

type levelOrder[K constraints.Ordered, V any] struct {
	work Queues.Queue[*node[K, V]]
}

// LevelOrder [Dictionary.LevelOrder]
// Time: O(1) per call to Next; Space: O(width of the tree)
func (u *Dict[K, V]) LevelOrder() Iterator[K, V] {
	it := &levelOrder[K, V]{Queues.MakeDeque[*node[K, V]](4).AsQueue()}
	if u.root != nil {
		it.work.Push(u.root)
	}
	return it
}

func (it *levelOrder[K, V]) HasNext() bool {
	return !it.work.Empty()
}

func (it *levelOrder[K, V]) Next() (Pair[K, V], error) {
	n, err := it.work.Pop()
	if err != nil {
		return Pair[K, V]{}, &ExhaustedError{"level-order"}
	}
	if n.l != nil {
		it.work.Push(n.l)
	}
	if n.r != nil {
		it.work.Push(n.r)
	}
	return n.p, nil
}
