package sif

import (
	"fmt"

	. "github.com/moskvax/sif/util"
)

//*******************************************
// edge label arena
//*******************************************

// Owns every label of one search run. Indices handed out by Add stay valid
// until Reset; pointers returned by Get only until the next Add.
type EdgeLabels struct {
	labels List[EdgeLabel]
}

func NewEdgeLabels(cap int) *EdgeLabels {
	return &EdgeLabels{
		labels: NewList[EdgeLabel](cap),
	}
}

func (self *EdgeLabels) Add(label EdgeLabel) uint32 {
	idx := self.labels.Length()
	if uint64(idx) >= uint64(INVALID_LABEL) {
		panic("edge labels: label index space exhausted")
	}
	pred := label.Predecessor()
	if pred != INVALID_LABEL && int(pred) >= idx {
		panic(fmt.Sprintf("edge labels: predecessor %d does not exist", pred))
	}
	self.labels.Add(label)
	return uint32(idx)
}
func (self *EdgeLabels) Get(idx uint32) *EdgeLabel {
	return &self.labels[idx]
}
func (self *EdgeLabels) Len() int {
	return self.labels.Length()
}
func (self *EdgeLabels) Reset() {
	self.labels.Clear()
}

// Walks the predecessor chain from idx back to the origin and returns the
// label indices in path order (origin first).
func (self *EdgeLabels) Path(idx uint32) []uint32 {
	path := make([]uint32, 0, 16)
	for curr := idx; curr != INVALID_LABEL; curr = self.labels[curr].Predecessor() {
		if len(path) > self.labels.Length() {
			panic("edge labels: predecessor chain contains a cycle")
		}
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
