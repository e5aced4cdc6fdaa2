package graph

import (
	"fmt"
)

//*******************************************
// graph id
//*******************************************

// Identifies a node or directed edge within the tiled hierarchy. Packs the
// tile id (22 bits), the hierarchy level (3 bits) and the index within the
// tile (21 bits).
type GraphId uint64

const (
	MAX_TILE_ID  uint32 = 1<<22 - 1
	MAX_LEVEL    uint32 = 1<<3 - 1
	MAX_GRAPH_ID uint32 = 1<<21 - 1

	INVALID_GRAPH_ID GraphId = 0x3fffffffffff
)

func NewGraphId(tileid, level, id uint32) GraphId {
	if tileid > MAX_TILE_ID {
		panic(fmt.Sprintf("tile id %v exceeds %v", tileid, MAX_TILE_ID))
	}
	if level > MAX_LEVEL {
		panic(fmt.Sprintf("level %v exceeds %v", level, MAX_LEVEL))
	}
	if id > MAX_GRAPH_ID {
		panic(fmt.Sprintf("id %v exceeds %v", id, MAX_GRAPH_ID))
	}
	return GraphId(uint64(tileid) | uint64(level)<<22 | uint64(id)<<25)
}

func (self GraphId) TileId() uint32 {
	return uint32(self & 0x3fffff)
}
func (self GraphId) Level() uint32 {
	return uint32((self >> 22) & 0x7)
}
func (self GraphId) Id() uint32 {
	return uint32((self >> 25) & 0x1fffff)
}

// GraphId of the tile (index 0) this id belongs to.
func (self GraphId) TileBase() GraphId {
	return self & 0x1ffffff
}
func (self GraphId) IsValid() bool {
	return self != INVALID_GRAPH_ID
}
func (self GraphId) String() string {
	if !self.IsValid() {
		return "invalid"
	}
	return fmt.Sprintf("%d/%d/%d", self.TileId(), self.Level(), self.Id())
}
