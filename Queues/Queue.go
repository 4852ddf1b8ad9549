package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, *EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the oldest item, the zero value if there's none.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the items.
	Shrink()
	//Clear the queue, keeping the backing array.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queues: queue is empty"
}
