package graph

import (
	"encoding/json"
	"errors"
)

//*******************************************
// access masks
//*******************************************

const (
	AUTO_ACCESS       uint32 = 1
	PEDESTRIAN_ACCESS uint32 = 2
	BICYCLE_ACCESS    uint32 = 4
	TRUCK_ACCESS      uint32 = 8
	EMERGENCY_ACCESS  uint32 = 16
	TAXI_ACCESS       uint32 = 32
	BUS_ACCESS        uint32 = 64
	HOV_ACCESS        uint32 = 128
	ALL_ACCESS        uint32 = 255
)

//*******************************************
// road class
//*******************************************

type RoadClass byte

const (
	MOTORWAY      RoadClass = 0
	TRUNK         RoadClass = 1
	PRIMARY       RoadClass = 2
	SECONDARY     RoadClass = 3
	TERTIARY      RoadClass = 4
	UNCLASSIFIED  RoadClass = 5
	RESIDENTIAL   RoadClass = 6
	SERVICE_OTHER RoadClass = 7
)

func (self RoadClass) String() string {
	switch self {
	case MOTORWAY:
		return "motorway"
	case TRUNK:
		return "trunk"
	case PRIMARY:
		return "primary"
	case SECONDARY:
		return "secondary"
	case TERTIARY:
		return "tertiary"
	case UNCLASSIFIED:
		return "unclassified"
	case RESIDENTIAL:
		return "residential"
	case SERVICE_OTHER:
		return "service_other"
	}
	return ""
}

//*******************************************
// edge use
//*******************************************

// Use of a directed edge. Values stay below 64 so they fit the 6 bits a
// path label reserves for them.
type Use byte

const (
	USE_ROAD               Use = 0
	USE_RAMP               Use = 1
	USE_TURN_CHANNEL       Use = 2
	USE_TRACK              Use = 3
	USE_DRIVEWAY           Use = 4
	USE_ALLEY              Use = 5
	USE_PARKING_AISLE      Use = 6
	USE_EMERGENCY_ACCESS   Use = 7
	USE_DRIVE_THRU         Use = 8
	USE_CULDESAC           Use = 9
	USE_CYCLEWAY           Use = 20
	USE_MOUNTAIN_BIKE      Use = 21
	USE_SIDEWALK           Use = 24
	USE_FOOTWAY            Use = 25
	USE_STEPS              Use = 26
	USE_OTHER              Use = 40
	USE_FERRY              Use = 41
	USE_RAIL_FERRY         Use = 42
	USE_RAIL               Use = 50
	USE_BUS                Use = 51
	USE_RAIL_CONNECTION    Use = 52
	USE_BUS_CONNECTION     Use = 53
	USE_TRANSIT_CONNECTION Use = 54
)

func (self Use) String() string {
	switch self {
	case USE_ROAD:
		return "road"
	case USE_RAMP:
		return "ramp"
	case USE_TURN_CHANNEL:
		return "turn_channel"
	case USE_TRACK:
		return "track"
	case USE_DRIVEWAY:
		return "driveway"
	case USE_ALLEY:
		return "alley"
	case USE_PARKING_AISLE:
		return "parking_aisle"
	case USE_EMERGENCY_ACCESS:
		return "emergency_access"
	case USE_DRIVE_THRU:
		return "drive_thru"
	case USE_CULDESAC:
		return "culdesac"
	case USE_CYCLEWAY:
		return "cycleway"
	case USE_MOUNTAIN_BIKE:
		return "mountain_bike"
	case USE_SIDEWALK:
		return "sidewalk"
	case USE_FOOTWAY:
		return "footway"
	case USE_STEPS:
		return "steps"
	case USE_OTHER:
		return "other"
	case USE_FERRY:
		return "ferry"
	case USE_RAIL_FERRY:
		return "rail_ferry"
	case USE_RAIL:
		return "rail"
	case USE_BUS:
		return "bus"
	case USE_RAIL_CONNECTION:
		return "rail_connection"
	case USE_BUS_CONNECTION:
		return "bus_connection"
	case USE_TRANSIT_CONNECTION:
		return "transit_connection"
	}
	return ""
}

func UseFromString(typ string) (Use, error) {
	for _, use := range _ALL_USES {
		if use.String() == typ {
			return use, nil
		}
	}
	return USE_OTHER, errors.New("unknown edge use")
}

var _ALL_USES = []Use{USE_ROAD, USE_RAMP, USE_TURN_CHANNEL, USE_TRACK, USE_DRIVEWAY, USE_ALLEY,
	USE_PARKING_AISLE, USE_EMERGENCY_ACCESS, USE_DRIVE_THRU, USE_CULDESAC, USE_CYCLEWAY,
	USE_MOUNTAIN_BIKE, USE_SIDEWALK, USE_FOOTWAY, USE_STEPS, USE_OTHER, USE_FERRY, USE_RAIL_FERRY,
	USE_RAIL, USE_BUS, USE_RAIL_CONNECTION, USE_BUS_CONNECTION, USE_TRANSIT_CONNECTION}

func (self Use) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Use) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	use, err := UseFromString(typ)
	*self = use
	return err
}

// Scheduled transit line (bus or rail).
func (self Use) IsTransitLine() bool {
	return self == USE_RAIL || self == USE_BUS
}

// Connection between the road network and a transit stop.
func (self Use) IsTransitConnection() bool {
	return self == USE_RAIL_CONNECTION || self == USE_BUS_CONNECTION || self == USE_TRANSIT_CONNECTION
}

func (self Use) IsFerry() bool {
	return self == USE_FERRY || self == USE_RAIL_FERRY
}

//*******************************************
// node type
//*******************************************

type NodeType byte

const (
	STREET_INTERSECTION NodeType = 0
	GATE                NodeType = 1
	BOLLARD             NodeType = 2
	TOLL_BOOTH          NodeType = 3
	RAIL_STOP           NodeType = 4
	BUS_STOP            NodeType = 5
	MULTI_USE_STOP      NodeType = 6
	BORDER_CONTROL      NodeType = 7
)

func (self NodeType) IsTransitStop() bool {
	return self == RAIL_STOP || self == BUS_STOP || self == MULTI_USE_STOP
}

//*******************************************
// transfer type
//*******************************************

type TransferType byte

const (
	TRANSFER_RECOMMENDED  TransferType = 0
	TRANSFER_TIMED        TransferType = 1
	TRANSFER_MIN_TIME     TransferType = 2
	TRANSFER_NOT_POSSIBLE TransferType = 3
)
