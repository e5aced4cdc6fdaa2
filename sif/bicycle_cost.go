package sif

import (
	"github.com/moskvax/sif/graph"
)

// default cycling speed in kph per bicycle type
var _BICYCLE_SPEEDS = [...]float32{
	ROAD:     25,
	HYBRID:   18,
	CROSS:    20,
	MOUNTAIN: 16,
}

// share of the road penalty applied per road class, bigger roads weigh more
var _ROAD_CLASS_WEIGHT = [...]float32{
	graph.MOTORWAY:      1,
	graph.TRUNK:         1,
	graph.PRIMARY:       0.8,
	graph.SECONDARY:     0.6,
	graph.TERTIARY:      0.4,
	graph.UNCLASSIFIED:  0.2,
	graph.RESIDENTIAL:   0.1,
	graph.SERVICE_OTHER: 0.1,
}

const _DISMOUNT_FACTOR float32 = 1.5

//*******************************************
// bicycle costing
//*******************************************

type BicycleCost struct {
	DynamicCost

	bicycle_type     BicycleType
	speed            float32
	use_roads        float32
	maneuver_penalty float32
	gate_cost        float32
}

func NewBicycleCost(config *Config) *BicycleCost {
	if config == nil {
		config = DefaultConfig()
	}
	opts := config.CostingOptions.Bicycle
	base := NewDynamicCost(config, BICYCLE)
	base.access_mask = graph.BICYCLE_ACCESS

	typ := opts.BicycleType
	if int(typ) >= len(_BICYCLE_SPEEDS) {
		typ = HYBRID
	}
	speed := _BICYCLE_SPEEDS[typ]
	if opts.CyclingSpeed > 0 {
		speed = opts.CyclingSpeed
	}
	return &BicycleCost{
		DynamicCost:      base,
		bicycle_type:     typ,
		speed:            speed,
		use_roads:        _Clamp(opts.UseRoads, 0, 1),
		maneuver_penalty: opts.ManeuverPenalty,
		gate_cost:        opts.GateCost,
	}
}

// FactoryFunc for "bicycle".
func CreateBicycleCost(config *Config) IDynamicCost {
	return NewBicycleCost(config)
}

func (self *BicycleCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	if !self.DynamicCost.Allowed(edge, pred) {
		return false
	}
	if edge.Use == graph.USE_MOUNTAIN_BIKE && self.bicycle_type != MOUNTAIN {
		return false
	}
	if pred != nil && !pred.Origin() && pred.OppLocalIdx() == edge.LocalEdgeIdx && !edge.TransUp && !edge.TransDown {
		return false
	}
	return true
}

func (self *BicycleCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	sec := float32(edge.Length) * 3.6 / self.speed
	return Cost{sec * self._UseFactor(edge), sec}
}

// Always at least 1, so the A* estimate stays below the real cost.
func (self *BicycleCost) _UseFactor(edge *graph.DirectedEdge) float32 {
	switch edge.Use {
	case graph.USE_CYCLEWAY, graph.USE_MOUNTAIN_BIKE:
		return 1
	case graph.USE_FOOTWAY, graph.USE_SIDEWALK, graph.USE_STEPS:
		return _DISMOUNT_FACTOR
	}
	weight := float32(1)
	if int(edge.Classification) < len(_ROAD_CLASS_WEIGHT) {
		weight = _ROAD_CLASS_WEIGHT[edge.Classification]
	}
	return 1 + (1-self.use_roads)*weight
}

func (self *BicycleCost) TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost {
	return self._TransitionCost(node, edge.Use, pred.Use())
}
func (self *BicycleCost) TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost {
	return self._TransitionCost(node, opp_pred_edge.Use, opp_edge.Use)
}

func (self *BicycleCost) _TransitionCost(node *graph.NodeInfo, to, from graph.Use) Cost {
	var seconds, penalty float32
	if node.Type == graph.GATE {
		seconds += self.gate_cost
	}
	if to != from {
		penalty += self.maneuver_penalty
	}
	return Cost{seconds + penalty, seconds}
}

func (self *BicycleCost) AStarCostFactor() float32 {
	return 3.6 / self.speed
}
