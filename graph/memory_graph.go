package graph

import (
	"fmt"

	. "github.com/moskvax/sif/util"
	"golang.org/x/exp/slices"
)

//*******************************************
// in-memory graph
//*******************************************

var _ IGraphReader = &MemoryGraph{}

type _MemoryTile struct {
	nodes     List[NodeInfo]
	edges     List[DirectedEdge]
	out_edges List[List[GraphId]]
}

// Graph held fully in memory, tiles keyed by their base GraphId. Built once
// and then only read, so it can be shared between concurrent searches.
type MemoryGraph struct {
	tiles      Dict[GraphId, *_MemoryTile]
	departures Dict[uint32, List[TransitDeparture]]
	transfers  Dict[Tuple[uint32, uint32], TransitTransfer]

	// nodes joined by transitions share their local edge indices
	node_groups Dict[GraphId, GraphId]
	local_count Dict[GraphId, uint32]
}

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		tiles:      NewDict[GraphId, *_MemoryTile](10),
		departures: NewDict[uint32, List[TransitDeparture]](10),
		transfers:  NewDict[Tuple[uint32, uint32], TransitTransfer](10),

		node_groups: NewDict[GraphId, GraphId](10),
		local_count: NewDict[GraphId, uint32](10),
	}
}

func (self *MemoryGraph) _GetTile(id GraphId) *_MemoryTile {
	return self.tiles[id.TileBase()]
}

func (self *MemoryGraph) GetNode(node GraphId) (*NodeInfo, bool) {
	tile := self._GetTile(node)
	if tile == nil || int(node.Id()) >= tile.nodes.Length() {
		return nil, false
	}
	return &tile.nodes[node.Id()], true
}
func (self *MemoryGraph) GetEdge(edge GraphId) (*DirectedEdge, bool) {
	tile := self._GetTile(edge)
	if tile == nil || int(edge.Id()) >= tile.edges.Length() {
		return nil, false
	}
	return &tile.edges[edge.Id()], true
}
func (self *MemoryGraph) GetOutEdges(node GraphId) []GraphId {
	tile := self._GetTile(node)
	if tile == nil || int(node.Id()) >= tile.out_edges.Length() {
		return nil
	}
	return tile.out_edges[node.Id()]
}
func (self *MemoryGraph) GetNextDeparture(lineid uint32, curr_time uint32) (*TransitDeparture, bool) {
	deps := self.departures[lineid]
	i, _ := slices.BinarySearchFunc(deps, curr_time, func(dep TransitDeparture, t uint32) int {
		return _CompareTime(dep.DepartureTime, t)
	})
	if i >= deps.Length() {
		return nil, false
	}
	return &deps[i], true
}
func (self *MemoryGraph) GetTransfer(from_stop, to_stop uint32) (*TransitTransfer, bool) {
	transfer, ok := self.transfers[MakeTuple(from_stop, to_stop)]
	if !ok {
		return nil, false
	}
	return &transfer, true
}

//*******************************************
// build methods
//*******************************************

func (self *MemoryGraph) AddNode(tileid, level uint32, node NodeInfo) GraphId {
	base := NewGraphId(tileid, level, 0)
	tile, ok := self.tiles[base]
	if !ok {
		tile = &_MemoryTile{
			nodes:     NewList[NodeInfo](10),
			edges:     NewList[DirectedEdge](10),
			out_edges: NewList[List[GraphId]](10),
		}
		self.tiles[base] = tile
	}
	id := NewGraphId(tileid, level, uint32(tile.nodes.Length()))
	node.EdgeCount = 0
	tile.nodes.Add(node)
	tile.out_edges.Add(NewList[GraphId](4))
	return id
}

func (self *MemoryGraph) _GroupRoot(node GraphId) GraphId {
	for self.node_groups.ContainsKey(node) {
		node = self.node_groups[node]
	}
	return node
}

// Adds a directed edge from -> to. The edge is stored in the tile of the start
// node. Regular edges get the next local edge index of the start node, which
// counts the edges of all nodes joined to it by transitions.
func (self *MemoryGraph) AddEdge(from, to GraphId, edge DirectedEdge) GraphId {
	tile := self._GetTile(from)
	if tile == nil || int(from.Id()) >= tile.nodes.Length() {
		panic(fmt.Sprintf("unknown start node %v", from))
	}
	if _, ok := self.GetNode(to); !ok {
		panic(fmt.Sprintf("unknown end node %v", to))
	}
	id := NewGraphId(from.TileId(), from.Level(), uint32(tile.edges.Length()))
	edge.EndNode = to
	if edge.TransUp || edge.TransDown {
		edge.LocalEdgeIdx = 0
	} else {
		root := self._GroupRoot(from)
		edge.LocalEdgeIdx = self.local_count[root]
		self.local_count[root] += 1
	}
	tile.edges.Add(edge)
	tile.out_edges[from.Id()].Add(id)
	tile.nodes[from.Id()].EdgeCount += 1
	return id
}

// Adds the edge a -> b and its opposing edge b -> a (access masks swapped)
// and links both through their opposing indices.
func (self *MemoryGraph) AddEdgePair(a, b GraphId, edge DirectedEdge) (GraphId, GraphId) {
	fwd_id := self.AddEdge(a, b, edge)
	bwd := edge
	bwd.ForwardAccess, bwd.ReverseAccess = edge.ReverseAccess, edge.ForwardAccess
	bwd_id := self.AddEdge(b, a, bwd)

	fwd_edge, _ := self.GetEdge(fwd_id)
	bwd_edge, _ := self.GetEdge(bwd_id)
	fwd_edge.OppIndex = bwd_edge.LocalEdgeIdx
	fwd_edge.OppLocalIdx = bwd_edge.LocalEdgeIdx
	bwd_edge.OppIndex = fwd_edge.LocalEdgeIdx
	bwd_edge.OppLocalIdx = fwd_edge.LocalEdgeIdx
	return fwd_id, bwd_id
}

// Adds a zero length edge between the same location on two hierarchy levels.
// Transitions have to be added before the regular edges of both nodes.
func (self *MemoryGraph) AddTransition(from, to GraphId) GraphId {
	if from.Level() == to.Level() {
		panic("transition edges have to connect different levels")
	}
	from_root := self._GroupRoot(from)
	to_root := self._GroupRoot(to)
	if from_root != to_root {
		if self.local_count[from_root] > 0 || self.local_count[to_root] > 0 {
			panic("transitions have to be added before regular edges")
		}
		self.node_groups[to_root] = from_root
	}
	edge := DirectedEdge{
		ForwardAccess: ALL_ACCESS,
		ReverseAccess: ALL_ACCESS,
		TransUp:       to.Level() > from.Level(),
		TransDown:     to.Level() < from.Level(),
	}
	return self.AddEdge(from, to, edge)
}

// Inserts the departure behind all departures of its line leaving at the
// same time or earlier.
func (self *MemoryGraph) AddDeparture(departure TransitDeparture) {
	deps := self.departures[departure.LineId]
	i, _ := slices.BinarySearchFunc(deps, departure.DepartureTime, func(dep TransitDeparture, t uint32) int {
		if dep.DepartureTime <= t {
			return -1
		}
		return 1
	})
	self.departures[departure.LineId] = slices.Insert(deps, i, departure)
}

// Appends departures without ordering them, _SortDepartures has to be
// called for the touched lines before the graph is read.
func (self *MemoryGraph) _AppendDeparture(departure TransitDeparture) {
	deps := self.departures[departure.LineId]
	deps.Add(departure)
	self.departures[departure.LineId] = deps
}

func (self *MemoryGraph) _SortDepartures(lines Dict[uint32, bool]) {
	for lineid := range lines {
		slices.SortStableFunc(self.departures[lineid], func(a, b TransitDeparture) int {
			return _CompareTime(a.DepartureTime, b.DepartureTime)
		})
	}
}

func _CompareTime(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (self *MemoryGraph) AddTransfer(transfer TransitTransfer) {
	self.transfers[MakeTuple(transfer.FromStop, transfer.ToStop)] = transfer
}
