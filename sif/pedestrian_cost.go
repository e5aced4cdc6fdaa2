package sif

import (
	"github.com/moskvax/sif/graph"
)

const DEFAULT_WALKING_SPEED float32 = 5.1

//*******************************************
// pedestrian costing
//*******************************************

type PedestrianCost struct {
	DynamicCost

	walking_speed                  float32
	max_distance                   uint32
	base_max_distance              uint32
	transit_start_end_max_distance uint32
	step_penalty                   float32
	walkway_factor                 float32
	gate_cost                      float32
}

func NewPedestrianCost(config *Config) *PedestrianCost {
	if config == nil {
		config = DefaultConfig()
	}
	opts := config.CostingOptions.Pedestrian
	base := NewDynamicCost(config, PEDESTRIAN)
	base.access_mask = graph.PEDESTRIAN_ACCESS

	speed := opts.WalkingSpeed
	if speed <= 0 {
		speed = DEFAULT_WALKING_SPEED
	}
	walkway_factor := opts.WalkwayFactor
	if walkway_factor <= 0 {
		walkway_factor = 1
	}
	return &PedestrianCost{
		DynamicCost:                    base,
		walking_speed:                  speed,
		max_distance:                   opts.MaxDistance,
		base_max_distance:              opts.MaxDistance,
		transit_start_end_max_distance: opts.TransitStartEndMaxDistance,
		step_penalty:                   opts.StepPenalty,
		walkway_factor:                 walkway_factor,
		gate_cost:                      opts.GateCost,
	}
}

// FactoryFunc for "pedestrian".
func CreatePedestrianCost(config *Config) IDynamicCost {
	return NewPedestrianCost(config)
}

func (self *PedestrianCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	if edge.Use.IsTransitLine() {
		return false
	}
	if edge.Use.IsTransitConnection() && !self.allow_transit_connections {
		return false
	}
	if !self.DynamicCost.Allowed(edge, pred) {
		return false
	}
	walked := edge.Length
	if pred != nil {
		walked += pred.WalkingDistance()
	}
	return walked <= self.max_distance
}

func (self *PedestrianCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	sec := float32(edge.Length) * 3.6 / self.walking_speed
	switch edge.Use {
	case graph.USE_FOOTWAY, graph.USE_SIDEWALK:
		return Cost{sec * self.walkway_factor, sec}
	}
	return Cost{sec, sec}
}

func (self *PedestrianCost) TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost {
	return self._TransitionCost(node, edge.Use, pred.Use())
}
func (self *PedestrianCost) TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost {
	return self._TransitionCost(node, opp_pred_edge.Use, opp_edge.Use)
}

func (self *PedestrianCost) _TransitionCost(node *graph.NodeInfo, to, from graph.Use) Cost {
	var seconds, penalty float32
	if node.Type == graph.GATE {
		seconds += self.gate_cost
	}
	if to == graph.USE_STEPS && from != graph.USE_STEPS {
		penalty += self.step_penalty
	}
	return Cost{seconds + penalty, seconds}
}

func (self *PedestrianCost) AStarCostFactor() float32 {
	return 3.6 / self.walking_speed * min(self.walkway_factor, 1)
}

// Limits walking to the distance allowed at the start and end of a transit
// route.
func (self *PedestrianCost) UseMaxModeDistance() {
	self.max_distance = self.transit_start_end_max_distance
}

// Back to the configured max_distance.
func (self *PedestrianCost) ResetMaxModeDistance() {
	self.max_distance = self.base_max_distance
}

func (self *PedestrianCost) MaxDistance() uint32 {
	return self.max_distance
}
