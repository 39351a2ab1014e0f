package Trees

import "golang.org/x/exp/constraints"

// NewAVL returns an empty Dict that maintains the AVL property: at every
// node, the heights of the two subtrees differ by at most 1. Thus the
// height D of the tree is less than 1.44*log2(n+2).
// Every insertion or removal does at most one single or double rotation
// per level on the path it touched.
func NewAVL[K constraints.Ordered, V any]() *Dict[K, V] {
	return &Dict[K, V]{maintain: rebalance[K, V], balanced: true}
}

// AVLFrom is the NewAVL equivalence of From.
func AVLFrom[K constraints.Ordered, V any](keys []K, values []V) (*Dict[K, V], error) {
	return NewAVL[K, V]().fill(keys, values)
}

// rebalance the node at curPtr, whose subtrees are already AVL, after one of
// them changed height by at most 1. curPtr is passed by reference.
//
//	bf > 1,  bf(l) >= 0: right rotation
//	bf > 1,  bf(l) < 0:  left rotation on l, then right rotation
//	bf < -1, bf(r) <= 0: left rotation
//	bf < -1, bf(r) > 0:  right rotation on r, then left rotation
//
// Time: O(1); Space: O(1)
func rebalance[K constraints.Ordered, V any](curPtr **node[K, V]) {
	cur := *curPtr
	cur.updateHeight()
	if bf := cur.balance(); bf > 1 {
		if cur.l.balance() < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else if bf < -1 {
		if cur.r.balance() > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	}
}
