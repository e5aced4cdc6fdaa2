package sif

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// Costing configuration. Every costing constructor receives the whole config
// and picks its own options from it.
type Config struct {
	HierarchyLimits []HierarchyLimitsOptions `yaml:"hierarchy_limits"`
	CostingOptions  struct {
		Auto       AutoOptions       `yaml:"auto"`
		Truck      TruckOptions      `yaml:"truck"`
		Bicycle    BicycleOptions    `yaml:"bicycle"`
		Pedestrian PedestrianOptions `yaml:"pedestrian"`
		Transit    TransitOptions    `yaml:"transit"`
	} `yaml:"costing_options"`
}

// Overrides for the limits of one hierarchy level. Unset values keep the
// defaults.
type HierarchyLimitsOptions struct {
	Level               uint32   `yaml:"level"`
	MaxUpTransitions    *uint32  `yaml:"max_up_transitions"`
	MaxDownTransitions  *uint32  `yaml:"max_down_transitions"`
	ExpansionWithinDist *float32 `yaml:"expansion_within_dist"`
}

func DefaultConfig() *Config {
	config := &Config{}
	config.CostingOptions.Auto = DefaultAutoOptions()
	config.CostingOptions.Truck = DefaultTruckOptions()
	config.CostingOptions.Bicycle = DefaultBicycleOptions()
	config.CostingOptions.Pedestrian = DefaultPedestrianOptions()
	config.CostingOptions.Transit = DefaultTransitOptions()
	return config
}

// Parses a yaml config. Options not present keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse costing config: %w", err)
	}
	for _, opts := range config.HierarchyLimits {
		if opts.Level >= NUM_LEVELS {
			return nil, fmt.Errorf("hierarchy limits: level %v out of range", opts.Level)
		}
	}
	return config, nil
}

func ReadConfig(file string) (*Config, error) {
	slog.Info("Reading costing config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read costing config file: " + err.Error())
		return nil, err
	}
	return ParseConfig(data)
}

//**********************************************************
// costing options
//**********************************************************

type AutoOptions struct {
	ManeuverPenalty        float32 `yaml:"maneuver_penalty"`
	GateCost               float32 `yaml:"gate_cost"`
	TollBoothCost          float32 `yaml:"toll_booth_cost"`
	AlleyPenalty           float32 `yaml:"alley_penalty"`
	DestinationOnlyPenalty float32 `yaml:"destination_only_penalty"`
	FerryCost              float32 `yaml:"ferry_cost"`
	UseFerry               float32 `yaml:"use_ferry"`
	TrafficSignalCost      float32 `yaml:"traffic_signal_cost"`
}

func DefaultAutoOptions() AutoOptions {
	return AutoOptions{
		ManeuverPenalty:        5,
		GateCost:               30,
		TollBoothCost:          15,
		AlleyPenalty:           5,
		DestinationOnlyPenalty: 600,
		FerryCost:              300,
		UseFerry:               0.5,
		TrafficSignalCost:      2,
	}
}

type TruckOptions struct {
	AutoOptions     `yaml:",inline"`
	LowClassPenalty float32 `yaml:"low_class_penalty"`
	Height          float32 `yaml:"height"`
	Weight          float32 `yaml:"weight"`
}

func DefaultTruckOptions() TruckOptions {
	return TruckOptions{
		AutoOptions:     DefaultAutoOptions(),
		LowClassPenalty: 30,
		Height:          4.11,
		Weight:          21.77,
	}
}

type BicycleOptions struct {
	BicycleType     BicycleType `yaml:"bicycle_type"`
	CyclingSpeed    float32     `yaml:"cycling_speed"`
	UseRoads        float32     `yaml:"use_roads"`
	ManeuverPenalty float32     `yaml:"maneuver_penalty"`
	GateCost        float32     `yaml:"gate_cost"`
}

func DefaultBicycleOptions() BicycleOptions {
	return BicycleOptions{
		BicycleType:     HYBRID,
		UseRoads:        0.5,
		ManeuverPenalty: 5,
		GateCost:        30,
	}
}

type PedestrianOptions struct {
	WalkingSpeed               float32 `yaml:"walking_speed"`
	MaxDistance                uint32  `yaml:"max_distance"`
	TransitStartEndMaxDistance uint32  `yaml:"transit_start_end_max_distance"`
	StepPenalty                float32 `yaml:"step_penalty"`
	WalkwayFactor              float32 `yaml:"walkway_factor"`
	GateCost                   float32 `yaml:"gate_cost"`
}

func DefaultPedestrianOptions() PedestrianOptions {
	return PedestrianOptions{
		WalkingSpeed:               5.1,
		MaxDistance:                100000,
		TransitStartEndMaxDistance: 2415,
		StepPenalty:                30,
		WalkwayFactor:              0.9,
		GateCost:                   30,
	}
}

type TransitOptions struct {
	UseBus          float32 `yaml:"use_bus"`
	UseRail         float32 `yaml:"use_rail"`
	UseTransfers    float32 `yaml:"use_transfers"`
	TransferCost    float32 `yaml:"transfer_cost"`
	TransferPenalty float32 `yaml:"transfer_penalty"`
}

func DefaultTransitOptions() TransitOptions {
	return TransitOptions{
		UseBus:          0.3,
		UseRail:         0.6,
		UseTransfers:    0.3,
		TransferCost:    15,
		TransferPenalty: 300,
	}
}

//**********************************************************
// enums
//**********************************************************

type BicycleType byte

const (
	ROAD     BicycleType = 0
	HYBRID   BicycleType = 1
	CROSS    BicycleType = 2
	MOUNTAIN BicycleType = 3
)

func (self BicycleType) String() string {
	switch self {
	case ROAD:
		return "road"
	case HYBRID:
		return "hybrid"
	case CROSS:
		return "cross"
	case MOUNTAIN:
		return "mountain"
	default:
		panic("unknown bicycle type")
	}
}
func (self BicycleType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *BicycleType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := BicycleTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func BicycleTypeFromString(s string) (BicycleType, error) {
	switch s {
	case "road":
		return ROAD, nil
	case "hybrid":
		return HYBRID, nil
	case "cross":
		return CROSS, nil
	case "mountain":
		return MOUNTAIN, nil
	default:
		return HYBRID, errors.New("unknown bicycle type")
	}
}
