package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// Stack is a LIFO container.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
