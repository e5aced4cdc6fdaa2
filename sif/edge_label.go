package sif

import (
	"fmt"
	"math"

	"github.com/moskvax/sif/graph"
)

// Predecessor of an origin edge.
const INVALID_LABEL uint32 = math.MaxUint32

// Largest values the packed label fields can hold.
const (
	MAX_WALKING_DISTANCE uint32 = 1<<26 - 1
	MAX_USE              uint32 = 1<<6 - 1
	MAX_LOCAL_INDEX      uint32 = 1<<7 - 1
	MAX_RESTRICTIONS     uint32 = 1<<7 - 1
	MAX_TRAVEL_MODE      uint32 = 1<<4 - 1
)

//*******************************************
// packed attribute word
//*******************************************

type _BitField struct {
	name  string
	shift uint
	bits  uint
}

func (self _BitField) max() uint64 {
	return 1<<self.bits - 1
}
func (self _BitField) get(word uint64) uint32 {
	return uint32((word >> self.shift) & self.max())
}

// Out of range values are a caller bug, truncating them would silently
// corrupt the path.
func (self _BitField) set(word uint64, value uint32) uint64 {
	if uint64(value) > self.max() {
		panic(fmt.Sprintf("edge label: %s value %d exceeds %d-bit range", self.name, value, self.bits))
	}
	return (word &^ (self.max() << self.shift)) | (uint64(value) << self.shift)
}
func (self _BitField) setBool(word uint64, value bool) uint64 {
	if value {
		return self.set(word, 1)
	}
	return self.set(word, 0)
}

// 26+6+7+7+7+1+1+1+4+1+1+1+1 = 64 bits
var (
	_WALKING_DISTANCE = _BitField{"walking_distance", 0, 26}
	_USE              = _BitField{"use", 26, 6}
	_OPP_INDEX        = _BitField{"opp_index", 32, 7}
	_OPP_LOCAL_IDX    = _BitField{"opp_local_idx", 39, 7}
	_RESTRICTIONS     = _BitField{"restrictions", 46, 7}
	_TRANS_UP         = _BitField{"trans_up", 53, 1}
	_TRANS_DOWN       = _BitField{"trans_down", 54, 1}
	_SHORTCUT         = _BitField{"shortcut", 55, 1}
	_MODE             = _BitField{"mode", 56, 4}
	_DEST_ONLY        = _BitField{"dest_only", 60, 1}
	_HAS_TRANSIT      = _BitField{"has_transit", 61, 1}
	_ORIGIN           = _BitField{"origin", 62, 1}
	_TOLL             = _BitField{"toll", 63, 1}
)

//*******************************************
// edge label
//*******************************************

// Search state of one directed edge: cost to the end of the edge, sort cost
// and the index of the predecessor label. Labels live in an EdgeLabels arena
// and refer to each other by index only.
type EdgeLabel struct {
	edgeid     graph.GraphId
	opp_edgeid graph.GraphId
	endnode    graph.GraphId

	cost     Cost
	sortcost float32
	distance float32

	attributes uint64

	predecessor     uint32
	tripid          uint32
	prior_stopid    uint32
	blockid         uint32
	transition_cost uint32
}

// Creates a label for a forward search.
//
// restrictions is the restriction mask carried from the prior edge (used when
// edge is a transition so restrictions survive the level change),
// opp_local_idx the local index of the opposing edge at the end node.
func NewEdgeLabel(predecessor uint32, edgeid graph.GraphId, edge *graph.DirectedEdge, cost Cost,
	sortcost, dist float32, restrictions, opp_local_idx uint32, mode TravelMode) EdgeLabel {
	if edge.TransUp && edge.TransDown {
		panic("edge label: trans_up and trans_down are mutually exclusive")
	}
	var attr uint64
	attr = _USE.set(attr, uint32(edge.Use))
	attr = _OPP_INDEX.set(attr, edge.OppIndex)
	attr = _OPP_LOCAL_IDX.set(attr, opp_local_idx)
	attr = _RESTRICTIONS.set(attr, restrictions)
	attr = _TRANS_UP.setBool(attr, edge.TransUp)
	attr = _TRANS_DOWN.setBool(attr, edge.TransDown)
	attr = _SHORTCUT.setBool(attr, edge.Shortcut)
	attr = _MODE.set(attr, uint32(mode))
	attr = _DEST_ONLY.setBool(attr, edge.DestOnly)
	attr = _TOLL.setBool(attr, edge.Toll)

	return EdgeLabel{
		edgeid:      edgeid,
		opp_edgeid:  graph.INVALID_GRAPH_ID,
		endnode:     edge.EndNode,
		cost:        cost,
		sortcost:    sortcost,
		distance:    dist,
		attributes:  attr,
		predecessor: predecessor,
	}
}

// Creates a label for bidirectional A*. tc is the real transition cost in
// seconds, kept apart from cost for the reverse path.
func NewBidirEdgeLabel(predecessor uint32, edgeid, oppedgeid graph.GraphId, edge *graph.DirectedEdge,
	cost Cost, sortcost, dist float32, restrictions, opp_local_idx uint32, mode TravelMode, tc uint32) EdgeLabel {
	label := NewEdgeLabel(predecessor, edgeid, edge, cost, sortcost, dist, restrictions, opp_local_idx, mode)
	label.opp_edgeid = oppedgeid
	label.transition_cost = tc
	return label
}

// Creates a label for a multi-modal search.
func NewMultiModalEdgeLabel(predecessor uint32, edgeid graph.GraphId, edge *graph.DirectedEdge, cost Cost,
	sortcost, dist float32, restrictions, opp_local_idx uint32, mode TravelMode, walking_distance,
	tripid, prior_stopid, blockid uint32, has_transit bool) EdgeLabel {
	label := NewEdgeLabel(predecessor, edgeid, edge, cost, sortcost, dist, restrictions, opp_local_idx, mode)
	label.attributes = _WALKING_DISTANCE.set(label.attributes, walking_distance)
	label.attributes = _HAS_TRANSIT.setBool(label.attributes, has_transit)
	label.tripid = tripid
	label.prior_stopid = prior_stopid
	label.blockid = blockid
	return label
}

// Replaces predecessor and cost with a cheaper path to the same edge. Callers
// must only pass a better cost, the label does not check it.
func (self *EdgeLabel) Update(predecessor uint32, cost Cost, sortcost float32) {
	self.predecessor = predecessor
	self.cost = cost
	self.sortcost = sortcost
}

// Like Update but also replaces the walking distance and the trip (a
// different trip may depart earlier). The prior stop stays the same.
func (self *EdgeLabel) UpdateTransit(predecessor uint32, cost Cost, sortcost float32, walking_distance,
	tripid, blockid uint32) {
	self.Update(predecessor, cost, sortcost)
	self.attributes = _WALKING_DISTANCE.set(self.attributes, walking_distance)
	self.tripid = tripid
	self.blockid = blockid
}

func (self *EdgeLabel) Predecessor() uint32 {
	return self.predecessor
}
func (self *EdgeLabel) EdgeId() graph.GraphId {
	return self.edgeid
}
func (self *EdgeLabel) OppEdgeId() graph.GraphId {
	return self.opp_edgeid
}
func (self *EdgeLabel) EndNode() graph.GraphId {
	return self.endnode
}
func (self *EdgeLabel) Cost() Cost {
	return self.cost
}
func (self *EdgeLabel) SortCost() float32 {
	return self.sortcost
}
func (self *EdgeLabel) SetSortCost(sortcost float32) {
	self.sortcost = sortcost
}

// Straight line distance to the destination in meters.
func (self *EdgeLabel) Distance() float32 {
	return self.distance
}
func (self *EdgeLabel) Use() graph.Use {
	return graph.Use(_USE.get(self.attributes))
}
func (self *EdgeLabel) OppIndex() uint32 {
	return _OPP_INDEX.get(self.attributes)
}

// Local index of the incoming edge at the end node, compared against
// DirectedEdge.LocalEdgeIdx for transition costs and U-turn detection.
func (self *EdgeLabel) OppLocalIdx() uint32 {
	return _OPP_LOCAL_IDX.get(self.attributes)
}
func (self *EdgeLabel) Restrictions() uint32 {
	return _RESTRICTIONS.get(self.attributes)
}
func (self *EdgeLabel) TransUp() bool {
	return _TRANS_UP.get(self.attributes) == 1
}
func (self *EdgeLabel) TransDown() bool {
	return _TRANS_DOWN.get(self.attributes) == 1
}
func (self *EdgeLabel) Shortcut() bool {
	return _SHORTCUT.get(self.attributes) == 1
}
func (self *EdgeLabel) Mode() TravelMode {
	return TravelMode(_MODE.get(self.attributes))
}
func (self *EdgeLabel) DestOnly() bool {
	return _DEST_ONLY.get(self.attributes) == 1
}
func (self *EdgeLabel) HasTransit() bool {
	return _HAS_TRANSIT.get(self.attributes) == 1
}
func (self *EdgeLabel) Origin() bool {
	return _ORIGIN.get(self.attributes) == 1
}
func (self *EdgeLabel) SetOrigin() {
	self.attributes = _ORIGIN.set(self.attributes, 1)
}
func (self *EdgeLabel) Toll() bool {
	return _TOLL.get(self.attributes) == 1
}

// Walking distance in meters since the last transit stop.
func (self *EdgeLabel) WalkingDistance() uint32 {
	return _WALKING_DISTANCE.get(self.attributes)
}
func (self *EdgeLabel) TripId() uint32 {
	return self.tripid
}
func (self *EdgeLabel) PriorStopId() uint32 {
	return self.prior_stopid
}
func (self *EdgeLabel) BlockId() uint32 {
	return self.blockid
}

// Real transition cost in seconds. The reverse search applies turn costs at
// the opposite node, this is needed to recover the true elapsed time.
func (self *EdgeLabel) TransitionCost() uint32 {
	return self.transition_cost
}
func (self *EdgeLabel) SetTransitionCost(tc uint32) {
	self.transition_cost = tc
}

// Orders by sort cost. Equal sort costs are not ordered.
func (self *EdgeLabel) Less(other *EdgeLabel) bool {
	return self.sortcost < other.sortcost
}
