package Trees

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Dict is an ordered dictionary on a binary search tree with no repeated keys.
// How the tree is kept balanced is decided by maintain, which is called on
// every node whose subtree was structurally changed, bottom up, after an
// insertion or removal. New gives a Dict that never rotates; NewAVL gives
// one that maintains the AVL property.
// Both keep the height of every subtree cached in its root node.
// The zero value is an empty unbalanced Dict.
type Dict[K constraints.Ordered, V any] struct {
	root     *node[K, V]
	count    uint
	maintain func(**node[K, V]) // nil means only heights are kept.
	balanced bool
}

// New returns an empty Dict that doesn't balance itself. Its depth
// depends on the insertion order and is n in the worst case.
func New[K constraints.Ordered, V any]() *Dict[K, V] {
	return &Dict[K, V]{}
}

// From builds a Dict that doesn't balance itself by inserting keys[i], values[i]
// in order. Returns a *LengthMismatchError without inserting anything if the
// slices don't have the same length.
// Time: O(n*D)
func From[K constraints.Ordered, V any](keys []K, values []V) (*Dict[K, V], error) {
	return New[K, V]().fill(keys, values)
}

func (u *Dict[K, V]) fill(keys []K, values []V) (*Dict[K, V], error) {
	if len(keys) != len(values) {
		return nil, &LengthMismatchError{len(keys), len(values)}
	}
	for i, k := range keys {
		u.Insert(k, values[i])
	}
	return u, nil
}

// fix the subtree at curPtr after its children changed.
func (u *Dict[K, V]) fix(curPtr **node[K, V]) {
	if u.maintain == nil {
		(*curPtr).updateHeight()
	} else {
		u.maintain(curPtr)
	}
}

// Size returns the number of keys in the dictionary.
// Time: O(1); Space: O(1)
func (u *Dict[K, V]) Size() uint {
	return u.count
}

// Empty [Dictionary.Empty]
func (u *Dict[K, V]) Empty() bool {
	return u.count == 0
}

// Height of the tree, 0 if it's empty.
func (u *Dict[K, V]) Height() int {
	return u.root.height()
}

// Balanced reports whether u maintains the AVL property.
func (u *Dict[K, V]) Balanced() bool {
	return u.balanced
}

// Clear removes every key. O(1).
func (u *Dict[K, V]) Clear() {
	u.root, u.count = nil, 0
}

// insert the pair (k, v) to the subtree rooting at cur recursively. cur is
// passed by reference so a replaced subtree gets linked back to its parent.
// Returns true if a node was created, in which case every node on the way
// back up is fixed. An existing key only has its value overwritten.
func (u *Dict[K, V]) insert(curPtr **node[K, V], k K, v V) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[K, V]{p: Pair[K, V]{k, v}, h: 1}
		u.count++
		return true
	}
	inserted := false
	if k < cur.p.Key {
		inserted = u.insert(&cur.l, k, v)
	} else if k > cur.p.Key {
		inserted = u.insert(&cur.r, k, v)
	} else {
		cur.p.Value = v
		return false
	}
	if inserted {
		u.fix(curPtr)
	}
	return inserted
}

// Insert [Dictionary.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *Dict[K, V]) Insert(k K, v V) bool {
	return u.insert(&u.root, k, v)
}

// remove k from the subtree rooting at cur recursively. cur is passed by
// reference. Returns the detached node, or nil if k doesn't exist in the
// subtree. The detached node has both children cleared.
// A node with two children is replaced by its in-order successor, which is
// itself detached from the right subtree with a recursive remove first, so
// the right subtree is already fixed when the successor takes it over.
// remove doesn't touch count: detaching the successor is a relocation, not
// a removal.
func (u *Dict[K, V]) remove(curPtr **node[K, V], k K) *node[K, V] {
	cur := *curPtr
	if cur == nil {
		return nil
	}
	var removed *node[K, V]
	if k < cur.p.Key {
		removed = u.remove(&cur.l, k)
	} else if k > cur.p.Key {
		removed = u.remove(&cur.r, k)
	} else {
		removed = cur
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			succ := u.remove(&cur.r, cur.r.leftmost().p.Key)
			succ.l, succ.r = cur.l, cur.r
			*curPtr = succ
		}
		cur.l, cur.r = nil, nil
	}
	if removed != nil && *curPtr != nil {
		u.fix(curPtr)
	}
	return removed
}

// Remove [Dictionary.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *Dict[K, V]) Remove(k K) (v V, ok bool) {
	if n := u.remove(&u.root, k); n != nil {
		u.count--
		return n.p.Value, true
	}
	return
}

func (u *Dict[K, V]) find(k K) *node[K, V] {
	for cur := u.root; cur != nil; {
		if k < cur.p.Key {
			cur = cur.l
		} else if k > cur.p.Key {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Get [Dictionary.Get]
// Time: O(D); Space: O(1)
func (u *Dict[K, V]) Get(k K) (v V, ok bool) {
	if n := u.find(k); n != nil {
		return n.p.Value, true
	}
	return
}

// Has [Dictionary.Has]
// Time: O(D); Space: O(1)
func (u *Dict[K, V]) Has(k K) bool {
	return u.find(k) != nil
}

// Minimum [Dictionary.Minimum]
// Time: O(D); Space: O(1)
func (u *Dict[K, V]) Minimum() (p Pair[K, V], ok bool) {
	if u.root == nil {
		return
	}
	return u.root.leftmost().p, true
}

// Maximum [Dictionary.Maximum]
// Time: O(D); Space: O(1)
func (u *Dict[K, V]) Maximum() (p Pair[K, V], ok bool) {
	if u.root == nil {
		return
	}
	return u.root.rightmost().p, true
}

// Range calls f on every pair in ascending order of keys until f returns false.
// Time: O(n); Space: O(D)
func (u *Dict[K, V]) Range(f func(k K, v V) bool) {
	for it := u.newInOrder(false); it.HasNext(); {
		p, _ := it.Next()
		if !f(p.Key, p.Value) {
			return
		}
	}
}

// String lists the pairs in ascending order, e.g. "Tree [2]: (a: 1), (b: 2)".
func (u *Dict[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Tree [")
	sb.WriteString(strconv.FormatUint(uint64(u.count), 10))
	sb.WriteString("]")
	sep := ": "
	u.Range(func(k K, v V) bool {
		sb.WriteString(sep)
		sb.WriteString(Pair[K, V]{k, v}.String())
		sep = ", "
		return true
	})
	return sb.String()
}

// Corrupt [Dictionary.Corrupt]
// Time: O(n); Space: O(D)
func (u *Dict[K, V]) Corrupt() bool {
	var n uint
	var check func(c *node[K, V], lo, hi *K) (int, bool)
	check = func(c *node[K, V], lo, hi *K) (int, bool) {
		if c == nil {
			return 0, true
		}
		if (lo != nil && c.p.Key <= *lo) || (hi != nil && c.p.Key >= *hi) {
			return 0, false
		}
		n++
		lh, ok := check(c.l, lo, &c.p.Key)
		if !ok {
			return 0, false
		}
		rh, ok := check(c.r, &c.p.Key, hi)
		if !ok || c.h != max(lh, rh)+1 {
			return 0, false
		}
		if u.balanced && (lh-rh > 1 || rh-lh > 1) {
			return 0, false
		}
		return c.h, true
	}
	_, ok := check(u.root, nil, nil)
	return !ok || n != u.count
}
