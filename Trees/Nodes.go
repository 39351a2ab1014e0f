package Trees

import "golang.org/x/exp/constraints"

// A node in a Dict. A node is owned by exactly one parent slot (a child
// field of another node, or Dict.root).
// h is the height of the subtree rooting at this node; a leaf has h=1.
type node[K constraints.Ordered, V any] struct {
	p    Pair[K, V]
	l, r *node[K, V]
	h    int
}

// height of n, 0 if n is nil.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return n.h
}

// updateHeight from the cached heights of the children.
// Time: O(1); Space: O(1)
func (n *node[K, V]) updateHeight() {
	n.h = max(n.l.height(), n.r.height()) + 1
}

// balance factor of n: height of left minus height of right. 0 if n is nil.
func (n *node[K, V]) balance() int {
	if n == nil {
		return 0
	}
	return n.l.height() - n.r.height()
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// rotateLeft performs a left rotation on the node at *n. n is passed by reference in order
// to modify its content. (*n).r mustn't be nil.
//
//	  y                x
//	 / \              / \
//	t1  x     -->    y   t3
//	   / \          / \
//	  t2  t3       t1  t2
//
// Time: O(1); Space: O(1)
func rotateLeft[K constraints.Ordered, V any](n **node[K, V]) {
	y := *n
	x := y.r
	y.r = x.l
	x.l = y
	y.updateHeight()
	x.updateHeight()
	*n = x
}

// rotateRight performs a right rotation on the node at *n. n is passed by reference in order
// to modify its content. (*n).l mustn't be nil.
//
//	    y            x
//	   / \          / \
//	  x   t3  -->  t1  y
//	 / \              / \
//	t1  t2           t2  t3
//
// Time: O(1); Space: O(1)
func rotateRight[K constraints.Ordered, V any](n **node[K, V]) {
	y := *n
	x := y.l
	y.l = x.r
	x.r = y
	y.updateHeight()
	x.updateHeight()
	*n = x
}
