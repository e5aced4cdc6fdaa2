package sif

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// travel mode
//*******************************************

type TravelMode byte

const (
	DRIVE          TravelMode = 0
	PEDESTRIAN     TravelMode = 1
	BICYCLE        TravelMode = 2
	PUBLIC_TRANSIT TravelMode = 3
)

func (self TravelMode) String() string {
	switch self {
	case DRIVE:
		return "drive"
	case PEDESTRIAN:
		return "pedestrian"
	case BICYCLE:
		return "bicycle"
	case PUBLIC_TRANSIT:
		return "public_transit"
	default:
		panic("unknown travel mode")
	}
}
func (self TravelMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *TravelMode) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	mode, err := TravelModeFromString(typ)
	*self = mode
	return err
}
func (self TravelMode) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *TravelMode) UnmarshalYAML(value *yaml.Node) error {
	mode, err := TravelModeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = mode
	return nil
}

func TravelModeFromString(s string) (TravelMode, error) {
	switch s {
	case "drive":
		return DRIVE, nil
	case "pedestrian":
		return PEDESTRIAN, nil
	case "bicycle":
		return BICYCLE, nil
	case "public_transit":
		return PUBLIC_TRANSIT, nil
	default:
		return DRIVE, errors.New("unknown travel mode")
	}
}
