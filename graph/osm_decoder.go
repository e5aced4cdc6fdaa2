package graph

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

//*******************************************
// osm way decoder
//*******************************************

// Decodes the attributes of a directed edge (in way direction) from the tags
// of an OSM way. Returns false if the way is no routable highway.
func DecodeWay(way *osm.Way) (DirectedEdge, bool) {
	if way == nil || !IsValidHighway(way.Tags) {
		return DirectedEdge{}, false
	}
	return DecodeEdgeTags(way.Tags), true
}

func IsValidHighway(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" {
		return tags.Find("route") == "ferry"
	}
	_, ok := _HIGHWAY_TYPES[highway]
	return ok
}

type _HighwayType struct {
	class  RoadClass
	use    Use
	access uint32
}

var _VEHICLE_ACCESS = AUTO_ACCESS | TRUCK_ACCESS | BUS_ACCESS | TAXI_ACCESS | HOV_ACCESS | EMERGENCY_ACCESS

var _HIGHWAY_TYPES = map[string]_HighwayType{
	"motorway":       {MOTORWAY, USE_ROAD, _VEHICLE_ACCESS},
	"motorway_link":  {MOTORWAY, USE_RAMP, _VEHICLE_ACCESS},
	"trunk":          {TRUNK, USE_ROAD, ALL_ACCESS},
	"trunk_link":     {TRUNK, USE_RAMP, ALL_ACCESS},
	"primary":        {PRIMARY, USE_ROAD, ALL_ACCESS},
	"primary_link":   {PRIMARY, USE_RAMP, ALL_ACCESS},
	"secondary":      {SECONDARY, USE_ROAD, ALL_ACCESS},
	"secondary_link": {SECONDARY, USE_RAMP, ALL_ACCESS},
	"tertiary":       {TERTIARY, USE_ROAD, ALL_ACCESS},
	"tertiary_link":  {TERTIARY, USE_RAMP, ALL_ACCESS},
	"unclassified":   {UNCLASSIFIED, USE_ROAD, ALL_ACCESS},
	"residential":    {RESIDENTIAL, USE_ROAD, ALL_ACCESS},
	"living_street":  {RESIDENTIAL, USE_ROAD, ALL_ACCESS},
	"road":           {SERVICE_OTHER, USE_ROAD, ALL_ACCESS},
	"service":        {SERVICE_OTHER, USE_ROAD, ALL_ACCESS},
	"track":          {SERVICE_OTHER, USE_TRACK, ALL_ACCESS},
	"cycleway":       {SERVICE_OTHER, USE_CYCLEWAY, BICYCLE_ACCESS | PEDESTRIAN_ACCESS},
	"footway":        {SERVICE_OTHER, USE_FOOTWAY, PEDESTRIAN_ACCESS},
	"pedestrian":     {SERVICE_OTHER, USE_FOOTWAY, PEDESTRIAN_ACCESS},
	"path":           {SERVICE_OTHER, USE_FOOTWAY, PEDESTRIAN_ACCESS | BICYCLE_ACCESS},
	"steps":          {SERVICE_OTHER, USE_STEPS, PEDESTRIAN_ACCESS},
}

func DecodeEdgeTags(tags osm.Tags) DirectedEdge {
	e := DirectedEdge{}

	highway := tags.Find("highway")
	typ, ok := _HIGHWAY_TYPES[highway]
	if !ok {
		typ = _HighwayType{SERVICE_OTHER, USE_OTHER, ALL_ACCESS}
	}
	if tags.Find("route") == "ferry" {
		typ = _HighwayType{PRIMARY, USE_FERRY, AUTO_ACCESS | TRUCK_ACCESS | PEDESTRIAN_ACCESS | BICYCLE_ACCESS}
	}
	e.Classification = typ.class
	e.Use = typ.use
	switch highway {
	case "service":
		switch tags.Find("service") {
		case "alley":
			e.Use = USE_ALLEY
		case "driveway":
			e.Use = USE_DRIVEWAY
		case "parking_aisle":
			e.Use = USE_PARKING_AISLE
		case "drive-through":
			e.Use = USE_DRIVE_THRU
		}
	case "footway":
		if tags.Find("footway") == "sidewalk" {
			e.Use = USE_SIDEWALK
		}
	case "track":
		if tags.Find("mtb:scale") != "" {
			e.Use = USE_MOUNTAIN_BIKE
		}
	}

	access := _ApplyAccessTags(typ.access, tags)
	e.Speed = _GetTravelSpeed(highway, tags.Find("maxspeed"), tags.Find("tracktype"), tags.Find("surface"))
	if hgv := tags.Find("maxspeed:hgv"); hgv != "" {
		if v, err := strconv.Atoi(hgv); err == nil && v > 0 {
			e.TruckSpeed = uint32(v)
		}
	}

	switch _GetOneway(tags.Find("oneway"), highway) {
	case 1:
		e.ForwardAccess = access
		e.ReverseAccess = access & PEDESTRIAN_ACCESS
	case -1:
		e.ForwardAccess = access & PEDESTRIAN_ACCESS
		e.ReverseAccess = access
	default:
		e.ForwardAccess = access
		e.ReverseAccess = access
	}

	switch tags.Find("access") {
	case "destination", "delivery":
		e.DestOnly = true
	case "private":
		e.DestOnly = true
		e.NotThru = true
	}
	if tags.Find("motor_vehicle") == "destination" {
		e.DestOnly = true
	}
	e.Toll = tags.Find("toll") == "yes"
	e.MaxHeight = _ParseMeasure(tags.Find("maxheight"))
	e.MaxWeight = _ParseMeasure(tags.Find("maxweight"))
	return e
}

//*******************************************
// utility methods
//*******************************************

func _ApplyAccessTags(access uint32, tags osm.Tags) uint32 {
	if v := tags.Find("access"); v == "no" {
		access = 0
	}
	masks := []struct {
		key  string
		mask uint32
	}{
		{"motor_vehicle", AUTO_ACCESS | TRUCK_ACCESS | BUS_ACCESS | TAXI_ACCESS | HOV_ACCESS},
		{"motorcar", AUTO_ACCESS | TAXI_ACCESS | HOV_ACCESS},
		{"hgv", TRUCK_ACCESS},
		{"bicycle", BICYCLE_ACCESS},
		{"foot", PEDESTRIAN_ACCESS},
		{"psv", BUS_ACCESS | TAXI_ACCESS},
	}
	for _, m := range masks {
		switch tags.Find(m.key) {
		case "no", "private":
			access &^= m.mask
		case "yes", "designated", "permissive", "destination":
			access |= m.mask
		}
	}
	return access
}

// Returns 1 for oneway in way direction, -1 for reversed and 0 for both.
func _GetOneway(oneway string, highway string) int {
	switch oneway {
	case "yes", "true", "1":
		return 1
	case "-1", "reverse":
		return -1
	case "no", "false", "0":
		return 0
	}
	if highway == "motorway" || highway == "motorway_link" {
		return 1
	}
	return 0
}

func _GetTravelSpeed(highway string, maxspeed string, tracktype string, surface string) uint32 {
	var speed int

	if maxspeed != "" {
		if maxspeed == "walk" {
			speed = 10
		} else if maxspeed == "none" {
			speed = 110
		} else {
			t, err := strconv.Atoi(strings.TrimSuffix(maxspeed, " km/h"))
			if err != nil {
				speed = 20
			} else {
				speed = t
			}
		}
		speed = int(0.9 * float32(speed))
	} else {
		switch highway {
		case "motorway":
			speed = 100
		case "trunk":
			speed = 85
		case "motorway_link", "trunk_link":
			speed = 60
		case "primary":
			speed = 65
		case "secondary":
			speed = 60
		case "tertiary":
			speed = 50
		case "primary_link", "secondary_link":
			speed = 50
		case "tertiary_link":
			speed = 40
		case "unclassified", "residential":
			speed = 30
		case "living_street":
			speed = 10
		case "track":
			switch tracktype {
			case "grade1":
				speed = 40
			case "grade2":
				speed = 30
			case "grade3":
				speed = 20
			case "grade5":
				speed = 10
			default:
				speed = 15
			}
		case "footway", "pedestrian", "steps", "path":
			speed = 5
		default:
			speed = 20
		}
	}

	switch surface {
	case "cement", "compacted":
		speed = min(speed, 80)
	case "fine_gravel":
		speed = min(speed, 60)
	case "paving_stones", "metal", "bricks":
		speed = min(speed, 40)
	case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone":
		speed = min(speed, 30)
	case "cobblestone", "clay":
		speed = min(speed, 20)
	case "earth", "stone", "rocky", "sand":
		speed = min(speed, 15)
	case "mud":
		speed = min(speed, 10)
	}

	if speed <= 0 {
		speed = 10
	}
	return uint32(speed)
}

// Parses values like "3.8", "3.8 m" or "7.5 t". Returns 0 if not parseable.
func _ParseMeasure(value string) float32 {
	if value == "" {
		return 0
	}
	fields := strings.Fields(value)
	v, err := strconv.ParseFloat(fields[0], 32)
	if err != nil || v < 0 {
		return 0
	}
	return float32(v)
}
