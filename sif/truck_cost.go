package sif

import (
	"github.com/moskvax/sif/graph"
)

const MAX_TRUCK_SPEED_KPH = 90

//*******************************************
// truck costing
//*******************************************

// Auto costing restricted to truck access, truck speeds and the vehicle
// dimensions.
type TruckCost struct {
	AutoCost

	low_class_penalty float32
	height            float32
	weight            float32
}

func NewTruckCost(config *Config) *TruckCost {
	if config == nil {
		config = DefaultConfig()
	}
	opts := config.CostingOptions.Truck
	auto := _NewAutoCost(config, opts.AutoOptions)
	auto.access_mask = graph.TRUCK_ACCESS
	return &TruckCost{
		AutoCost:          auto,
		low_class_penalty: opts.LowClassPenalty,
		height:            opts.Height,
		weight:            opts.Weight,
	}
}

// FactoryFunc for "truck".
func CreateTruckCost(config *Config) IDynamicCost {
	return NewTruckCost(config)
}

func (self *TruckCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	if !self.AutoCost.Allowed(edge, pred) {
		return false
	}
	if edge.MaxHeight > 0 && self.height > edge.MaxHeight {
		return false
	}
	if edge.MaxWeight > 0 && self.weight > edge.MaxWeight {
		return false
	}
	return true
}

func (self *TruckCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	speed := edge.TruckSpeed
	if speed == 0 {
		speed = edge.Speed
	}
	if speed > MAX_TRUCK_SPEED_KPH && !edge.Use.IsFerry() {
		speed = MAX_TRUCK_SPEED_KPH
	}
	sec := float32(edge.Length) * _SpeedFactor(speed)
	if edge.Use.IsFerry() {
		return Cost{sec * self.ferry_factor, sec}
	}
	return Cost{sec, sec}
}

func (self *TruckCost) TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost {
	cost := self.AutoCost.TransitionCost(edge, node, pred)
	if edge.Classification > graph.TERTIARY {
		cost.Cost += self.low_class_penalty
	}
	return cost
}

func (self *TruckCost) TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost {
	cost := self.AutoCost.TransitionCostReverse(idx, node, opp_edge, opp_pred_edge)
	if opp_pred_edge.Classification > graph.TERTIARY {
		cost.Cost += self.low_class_penalty
	}
	return cost
}

func (self *TruckCost) AStarCostFactor() float32 {
	return _SpeedFactor(MAX_TRUCK_SPEED_KPH)
}
