package util

//*******************************************
// list
//*******************************************

type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}
func (self List[T]) Get(index int) T {
	return self[index]
}
func (self List[T]) Set(index int, value T) {
	self[index] = value
}
func (self List[T]) Length() int {
	return len(self)
}
func (self *List[T]) Clear() {
	*self = (*self)[:0]
}

//*******************************************
// dict
//*******************************************

type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](cap int) Dict[K, V] {
	return make(map[K]V, cap)
}

func (self Dict[K, V]) Get(key K) V {
	return self[key]
}
func (self Dict[K, V]) Set(key K, value V) {
	self[key] = value
}
func (self Dict[K, V]) ContainsKey(key K) bool {
	_, ok := self[key]
	return ok
}
func (self Dict[K, V]) Length() int {
	return len(self)
}

//*******************************************
// tuple
//*******************************************

type Tuple[TA any, TB any] struct {
	A TA
	B TB
}

func MakeTuple[TA any, TB any](a TA, b TB) Tuple[TA, TB] {
	return Tuple[TA, TB]{A: a, B: b}
}
