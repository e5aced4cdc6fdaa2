package sif

import (
	"github.com/moskvax/sif/graph"
)

const (
	// Costs within this many seconds count as equal for sorting.
	DEFAULT_UNIT_SIZE uint32 = 1

	DEFAULT_NOT_THRU_DISTANCE float32 = 5000
)

//*******************************************
// dynamic cost interface
//*******************************************

// Cost model of one travel mode. One instance serves a single search run (or
// the consecutive legs of one multi-modal route) and is not safe for
// concurrent use.
type IDynamicCost interface {
	// Can the edge be entered from pred? pred is nil for origin edges.
	Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool
	// Reverse search variant: opp_edge is the opposing edge of edge.
	AllowedReverse(edge *graph.DirectedEdge, pred *EdgeLabel, opp_edge *graph.DirectedEdge) bool
	AllowedNode(node *graph.NodeInfo) bool

	EdgeCost(edge *graph.DirectedEdge) Cost
	// Schedule based cost of a transit edge, including the wait from
	// curr_time until the departure.
	TransitEdgeCost(edge *graph.DirectedEdge, departure *graph.TransitDeparture, curr_time uint32) Cost
	TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost
	TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost
	TransferCost(transfer *graph.TransitTransfer) Cost
	TransferCostFactor() float32
	DefaultTransferCost() Cost

	// Multiplier turning the straight line distance into an A* estimate.
	AStarCostFactor() float32
	AllowTransitions() bool
	AllowMultiPass() bool
	UnitSize() uint32

	SetAllowTransitConnections(allow bool)
	AllowTransitConnections() bool
	UseMaxModeDistance()
	ResetMaxModeDistance()

	GetHierarchyLimits() []HierarchyLimits
	RelaxHierarchyLimits(factor float32)
	DisableHighwayTransitions()
	ResetHierarchyLimits()

	SetTravelMode(mode TravelMode)
	TravelMode() TravelMode
	SetNotThruDistance(d float32)
	NotThruDistance() float32
}

//*******************************************
// dynamic cost base
//*******************************************

var _ IDynamicCost = &DynamicCost{}

// Default implementation of IDynamicCost. Costing models embed it and
// override what they need; every cost method defaults to zero cost.
type DynamicCost struct {
	allow_transit_connections bool
	travelmode                TravelMode
	not_thru_distance         float32
	access_mask               uint32

	hierarchy_limits []HierarchyLimits
	// limits as configured, used by ResetHierarchyLimits
	base_limits []HierarchyLimits
}

func NewDynamicCost(config *Config, mode TravelMode) DynamicCost {
	limits := make([]HierarchyLimits, NUM_LEVELS)
	for level := uint32(0); level < NUM_LEVELS; level++ {
		limits[level] = NewHierarchyLimits(level, config)
	}
	base := make([]HierarchyLimits, NUM_LEVELS)
	copy(base, limits)
	return DynamicCost{
		allow_transit_connections: false,
		travelmode:                mode,
		not_thru_distance:         DEFAULT_NOT_THRU_DISTANCE,
		access_mask:               graph.ALL_ACCESS,
		hierarchy_limits:          limits,
		base_limits:               base,
	}
}

// Checks access, simple turn restrictions and not-thru edges far from the
// destination.
func (self *DynamicCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	if edge.ForwardAccess&self.access_mask == 0 {
		return false
	}
	if pred == nil {
		return true
	}
	if pred.Restrictions()&(1<<edge.LocalEdgeIdx) != 0 {
		return false
	}
	if edge.NotThru && pred.Distance() > self.not_thru_distance {
		return false
	}
	return true
}
func (self *DynamicCost) AllowedReverse(edge *graph.DirectedEdge, pred *EdgeLabel, opp_edge *graph.DirectedEdge) bool {
	if opp_edge.ForwardAccess&self.access_mask == 0 {
		return false
	}
	if pred == nil {
		return true
	}
	if opp_edge.Restrictions&(1<<pred.OppLocalIdx()) != 0 {
		return false
	}
	if edge.NotThru && pred.Distance() > self.not_thru_distance {
		return false
	}
	return true
}
func (self *DynamicCost) AllowedNode(node *graph.NodeInfo) bool {
	return node.Access&self.access_mask != 0
}

func (self *DynamicCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	return Cost{0, 0}
}
func (self *DynamicCost) TransitEdgeCost(edge *graph.DirectedEdge, departure *graph.TransitDeparture, curr_time uint32) Cost {
	return Cost{0, 0}
}
func (self *DynamicCost) TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost {
	return Cost{0, 0}
}
func (self *DynamicCost) TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost {
	return Cost{0, 0}
}
func (self *DynamicCost) TransferCost(transfer *graph.TransitTransfer) Cost {
	return Cost{0, 0}
}
func (self *DynamicCost) TransferCostFactor() float32 {
	return 0
}
func (self *DynamicCost) DefaultTransferCost() Cost {
	return Cost{0, 0}
}

func (self *DynamicCost) AStarCostFactor() float32 {
	return 0
}
func (self *DynamicCost) AllowTransitions() bool {
	return false
}
func (self *DynamicCost) AllowMultiPass() bool {
	return false
}
func (self *DynamicCost) UnitSize() uint32 {
	return DEFAULT_UNIT_SIZE
}

func (self *DynamicCost) SetAllowTransitConnections(allow bool) {
	self.allow_transit_connections = allow
}
func (self *DynamicCost) AllowTransitConnections() bool {
	return self.allow_transit_connections
}

// Switches to the shorter per-segment distance limit of multi-modal routes.
// Only modes with a distance limit override this.
func (self *DynamicCost) UseMaxModeDistance() {
}
func (self *DynamicCost) ResetMaxModeDistance() {
}

// The returned slice shares its backing array with the costing, changes
// are seen by later calls.
func (self *DynamicCost) GetHierarchyLimits() []HierarchyLimits {
	return self.hierarchy_limits
}
func (self *DynamicCost) RelaxHierarchyLimits(factor float32) {
	for i := range self.hierarchy_limits {
		self.hierarchy_limits[i].Relax(factor)
	}
}

// Keeps the search on the arterial level. Last resort when the highway level
// does not connect.
func (self *DynamicCost) DisableHighwayTransitions() {
	self.hierarchy_limits[LEVEL_ARTERIAL].DisableHighwayTransitions()
}

// Restores the configured limits and clears all counts.
func (self *DynamicCost) ResetHierarchyLimits() {
	copy(self.hierarchy_limits, self.base_limits)
}

func (self *DynamicCost) SetTravelMode(mode TravelMode) {
	self.travelmode = mode
}
func (self *DynamicCost) TravelMode() TravelMode {
	return self.travelmode
}
func (self *DynamicCost) SetNotThruDistance(d float32) {
	self.not_thru_distance = d
}
func (self *DynamicCost) NotThruDistance() float32 {
	return self.not_thru_distance
}
