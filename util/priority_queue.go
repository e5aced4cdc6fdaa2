package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQItem[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

type _PQHeap[T any, P constraints.Ordered] []_PQItem[T, P]

func (self _PQHeap[T, P]) Len() int {
	return len(self)
}
func (self _PQHeap[T, P]) Less(i, j int) bool {
	return self[i].priority < self[j].priority
}
func (self _PQHeap[T, P]) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}
func (self *_PQHeap[T, P]) Push(x any) {
	*self = append(*self, x.(_PQItem[T, P]))
}
func (self *_PQHeap[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}

// Min-queue with lazy decrease-key: stale entries are left in the queue and
// have to be skipped by the caller.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items *_PQHeap[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	items := make(_PQHeap[T, P], 0, cap)
	return PriorityQueue[T, P]{items: &items}
}

func (self PriorityQueue[T, P]) Enqueue(value T, priority P) {
	heap.Push(self.items, _PQItem[T, P]{value: value, priority: priority})
}
func (self PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var value T
		return value, false
	}
	item := heap.Pop(self.items).(_PQItem[T, P])
	return item.value, true
}
func (self PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}
func (self PriorityQueue[T, P]) Clear() {
	*self.items = (*self.items)[:0]
}
