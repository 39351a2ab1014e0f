package Queues

// Deque is a double ended queue on a circular array. The zero value is an
// empty Deque ready to use. Grows by 3/2 when full; never shrinks unless
// Shrink is called.
type Deque[T any] struct {
	sz, head uint
	content  []T
}

// MakeDeque returns an empty Deque with capacity initCap.
func MakeDeque[T any](initCap uint) *Deque[T] {
	return &Deque[T]{0, 0, make([]T, initCap)}
}

func (u *Deque[T]) Empty() bool {
	return u.sz == 0
}

func (u *Deque[T]) Size() uint {
	return u.sz
}

// idx of the i-th element counting from head.
func (u *Deque[T]) idx(i uint) uint {
	return (u.head + i) % uint(len(u.content))
}

func (u *Deque[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if tail := u.head + u.sz; tail <= uint(len(u.content)) {
		copy(nc, u.content[u.head:tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:tail-uint(len(u.content))])
	}
	u.content, u.head = nc, 0
}

func (u *Deque[T]) grow() {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 2)
	}
}

// Shrink the underlying array to fit the current size.
func (u *Deque[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the Deque, releasing references held by the underlying array.
func (u *Deque[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *Deque[T]) PushBack(item T) {
	u.grow()
	u.content[u.idx(u.sz)] = item
	u.sz++
}

func (u *Deque[T]) PushFront(item T) {
	u.grow()
	u.head = (u.head + uint(len(u.content)) - 1) % uint(len(u.content))
	u.content[u.head] = item
	u.sz++
}

func (u *Deque[T]) PopFront() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = u.idx(1)
	u.sz--
	return item, nil
}

func (u *Deque[T]) PopBack() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	i := u.idx(u.sz - 1)
	item = u.content[i]
	u.content[i] = *new(T)
	u.sz--
	return item, nil
}

// PeekFront returns the zero value of T if the Deque is empty.
func (u *Deque[T]) PeekFront() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.head]
}

// PeekBack returns the zero value of T if the Deque is empty.
func (u *Deque[T]) PeekBack() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.idx(u.sz-1)]
}

// AsQueue views u as a FIFO: Push to the back, Pop from the front.
func (u *Deque[T]) AsQueue() Queue[T] {
	return fifo[T]{u}
}

// AsStack views u as a LIFO: Push to the front, Pop from the front.
func (u *Deque[T]) AsStack() Stack[T] {
	return lifo[T]{u}
}

type fifo[T any] struct{ *Deque[T] }

func (q fifo[T]) Push(item T)     { q.PushBack(item) }
func (q fifo[T]) Pop() (T, error) { return q.PopFront() }
func (q fifo[T]) Peek() T         { return q.PeekFront() }

type lifo[T any] struct{ *Deque[T] }

func (s lifo[T]) Push(item T)     { s.PushFront(item) }
func (s lifo[T]) Pop() (T, error) { return s.PopFront() }
func (s lifo[T]) Peek() T         { return s.PeekFront() }
