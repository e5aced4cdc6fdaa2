package sif

import (
	"github.com/moskvax/sif/graph"
)

const (
	MAX_SPEED_KPH      = 255
	MAX_AUTO_SPEED_KPH = 140
)

// seconds per meter for each speed in kph
var _SPEED_FACTOR = func() [MAX_SPEED_KPH + 1]float32 {
	var factors [MAX_SPEED_KPH + 1]float32
	factors[0] = 3.6
	for s := 1; s <= MAX_SPEED_KPH; s++ {
		factors[s] = 3.6 / float32(s)
	}
	return factors
}()

func _SpeedFactor(speed uint32) float32 {
	if speed > MAX_SPEED_KPH {
		speed = MAX_SPEED_KPH
	}
	return _SPEED_FACTOR[speed]
}

//*******************************************
// auto costing
//*******************************************

type AutoCost struct {
	DynamicCost

	maneuver_penalty         float32
	gate_cost                float32
	toll_booth_cost          float32
	alley_penalty            float32
	destination_only_penalty float32
	ferry_cost               float32
	ferry_factor             float32
	traffic_signal_cost      float32
}

func NewAutoCost(config *Config) *AutoCost {
	if config == nil {
		config = DefaultConfig()
	}
	cost := _NewAutoCost(config, config.CostingOptions.Auto)
	return &cost
}

func _NewAutoCost(config *Config, opts AutoOptions) AutoCost {
	base := NewDynamicCost(config, DRIVE)
	base.access_mask = graph.AUTO_ACCESS

	use_ferry := _Clamp(opts.UseFerry, 0, 1)
	return AutoCost{
		DynamicCost:              base,
		maneuver_penalty:         opts.ManeuverPenalty,
		gate_cost:                opts.GateCost,
		toll_booth_cost:          opts.TollBoothCost,
		alley_penalty:            opts.AlleyPenalty,
		destination_only_penalty: opts.DestinationOnlyPenalty,
		ferry_cost:               opts.FerryCost,
		ferry_factor:             2 - use_ferry,
		traffic_signal_cost:      opts.TrafficSignalCost,
	}
}

// FactoryFunc for "auto".
func CreateAutoCost(config *Config) IDynamicCost {
	return NewAutoCost(config)
}

func (self *AutoCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	if !self.DynamicCost.Allowed(edge, pred) {
		return false
	}
	// no U-turns
	if pred != nil && !pred.Origin() && pred.OppLocalIdx() == edge.LocalEdgeIdx && !edge.TransUp && !edge.TransDown {
		return false
	}
	return true
}

func (self *AutoCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	sec := float32(edge.Length) * _SpeedFactor(edge.Speed)
	if edge.Use.IsFerry() {
		return Cost{sec * self.ferry_factor, sec}
	}
	return Cost{sec, sec}
}

func (self *AutoCost) TransitionCost(edge *graph.DirectedEdge, node *graph.NodeInfo, pred *EdgeLabel) Cost {
	seconds, penalty := self._NodeCost(node)
	if edge.Use.IsFerry() && !pred.Use().IsFerry() {
		seconds += self.ferry_cost
	}
	penalty += self._EdgePenalty(edge.Use, pred.Use(), edge.DestOnly, pred.DestOnly())
	return Cost{seconds + penalty, seconds}
}

// Forward travel is opp_edge then opp_pred_edge through node.
func (self *AutoCost) TransitionCostReverse(idx uint32, node *graph.NodeInfo, opp_edge, opp_pred_edge *graph.DirectedEdge) Cost {
	seconds, penalty := self._NodeCost(node)
	if opp_pred_edge.Use.IsFerry() && !opp_edge.Use.IsFerry() {
		seconds += self.ferry_cost
	}
	penalty += self._EdgePenalty(opp_pred_edge.Use, opp_edge.Use, opp_pred_edge.DestOnly, opp_edge.DestOnly)
	return Cost{seconds + penalty, seconds}
}

func (self *AutoCost) _NodeCost(node *graph.NodeInfo) (float32, float32) {
	var seconds float32
	switch node.Type {
	case graph.GATE:
		seconds += self.gate_cost
	case graph.TOLL_BOOTH:
		seconds += self.toll_booth_cost
	}
	if node.TrafficSignal {
		seconds += self.traffic_signal_cost
	}
	return seconds, 0
}

// penalty for entering an edge of use `to` coming from `from`
func (self *AutoCost) _EdgePenalty(to, from graph.Use, to_dest_only, from_dest_only bool) float32 {
	var penalty float32
	if to != from {
		penalty += self.maneuver_penalty
	}
	if to == graph.USE_ALLEY && from != graph.USE_ALLEY {
		penalty += self.alley_penalty
	}
	if to_dest_only && !from_dest_only {
		penalty += self.destination_only_penalty
	}
	return penalty
}

func (self *AutoCost) AStarCostFactor() float32 {
	return _SpeedFactor(MAX_AUTO_SPEED_KPH)
}
func (self *AutoCost) AllowTransitions() bool {
	return true
}
func (self *AutoCost) AllowMultiPass() bool {
	return true
}

func _Clamp(value, lower, upper float32) float32 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
