package sif

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	. "github.com/moskvax/sif/util"
)

var ErrUnknownCosting = errors.New("please provide a valid costing")

var (
	_ IDynamicCost = &AutoCost{}
	_ IDynamicCost = &TruckCost{}
	_ IDynamicCost = &BicycleCost{}
	_ IDynamicCost = &PedestrianCost{}
	_ IDynamicCost = &TransitCost{}
)

//*******************************************
// cost factory
//*******************************************

// Creates a costing model from the options in config.
type FactoryFunc func(config *Config) IDynamicCost

// Registry of costing models by name. Register everything before the first
// Create, the factory is not guarded for concurrent registration.
type CostFactory struct {
	factory_funcs Dict[string, FactoryFunc]
}

func NewCostFactory() *CostFactory {
	return &CostFactory{
		factory_funcs: NewDict[string, FactoryFunc](8),
	}
}

// Registers fn under name. The first registration of a name wins.
func (self *CostFactory) Register(name string, fn FactoryFunc) {
	if self.factory_funcs.ContainsKey(name) {
		slog.Warn("costing already registered", "costing", name)
		return
	}
	self.factory_funcs.Set(name, fn)
}

// Creates a new costing model on every call, instances are never shared.
func (self *CostFactory) Create(name string, config *Config) (IDynamicCost, error) {
	if !self.factory_funcs.ContainsKey(name) {
		costingUnknownTotal.Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownCosting, name)
	}
	if config == nil {
		config = DefaultConfig()
	}
	costing := self.factory_funcs.Get(name)(config)
	costingCreatedTotal.WithLabelValues(name).Inc()
	slog.Debug("costing created", "costing", name)
	return costing, nil
}

// Registered names in sorted order.
func (self *CostFactory) Names() []string {
	names := maps.Keys(self.factory_funcs)
	slices.Sort(names)
	return names
}

func RegisterStandardCostings(factory *CostFactory) {
	factory.Register("auto", CreateAutoCost)
	factory.Register("truck", CreateTruckCost)
	factory.Register("bicycle", CreateBicycleCost)
	factory.Register("pedestrian", CreatePedestrianCost)
	factory.Register("transit", CreateTransitCost)
}
