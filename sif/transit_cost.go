package sif

import (
	"golang.org/x/exp/slog"

	"github.com/moskvax/sif/graph"
)

//*******************************************
// transit costing
//*******************************************

type TransitCost struct {
	DynamicCost

	bus_factor       float32
	rail_factor      float32
	transfer_factor  float32
	transfer_cost    float32
	transfer_penalty float32
}

func NewTransitCost(config *Config) *TransitCost {
	if config == nil {
		config = DefaultConfig()
	}
	opts := config.CostingOptions.Transit
	base := NewDynamicCost(config, PUBLIC_TRANSIT)
	return &TransitCost{
		DynamicCost:      base,
		bus_factor:       2 - _Clamp(opts.UseBus, 0, 1),
		rail_factor:      2 - _Clamp(opts.UseRail, 0, 1),
		transfer_factor:  1.5 - _Clamp(opts.UseTransfers, 0, 1),
		transfer_cost:    opts.TransferCost,
		transfer_penalty: opts.TransferPenalty,
	}
}

// FactoryFunc for "transit".
func CreateTransitCost(config *Config) IDynamicCost {
	return NewTransitCost(config)
}

func (self *TransitCost) Allowed(edge *graph.DirectedEdge, pred *EdgeLabel) bool {
	return edge.Use.IsTransitLine()
}
func (self *TransitCost) AllowedReverse(edge *graph.DirectedEdge, pred *EdgeLabel, opp_edge *graph.DirectedEdge) bool {
	return edge.Use.IsTransitLine()
}
func (self *TransitCost) AllowedNode(node *graph.NodeInfo) bool {
	return true
}

// Transit edges need a departure, see TransitEdgeCost.
func (self *TransitCost) EdgeCost(edge *graph.DirectedEdge) Cost {
	slog.Error("transit edge costed without departure", "line", edge.LineId)
	return Cost{0, 0}
}

func (self *TransitCost) TransitEdgeCost(edge *graph.DirectedEdge, departure *graph.TransitDeparture, curr_time uint32) Cost {
	var wait float32
	if departure.DepartureTime > curr_time {
		wait = float32(departure.DepartureTime - curr_time)
	}
	elapsed := float32(departure.ElapsedTime)
	factor := self.rail_factor
	if edge.Use == graph.USE_BUS {
		factor = self.bus_factor
	}
	return Cost{wait + elapsed*factor, wait + elapsed}
}

// nil transfer means no transfer record between the stops.
func (self *TransitCost) TransferCost(transfer *graph.TransitTransfer) Cost {
	if transfer == nil {
		return self.DefaultTransferCost()
	}
	secs := self.transfer_cost
	switch transfer.Type {
	case graph.TRANSFER_TIMED:
		secs = 0
	case graph.TRANSFER_MIN_TIME:
		secs = float32(transfer.MinTransferTime)
	}
	return Cost{secs + self.transfer_penalty*self.transfer_factor, secs}
}
func (self *TransitCost) TransferCostFactor() float32 {
	return self.transfer_factor
}
func (self *TransitCost) DefaultTransferCost() Cost {
	return Cost{self.transfer_cost + self.transfer_penalty, self.transfer_cost}
}
