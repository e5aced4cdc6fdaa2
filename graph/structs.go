package graph

import (
	"github.com/paulmach/orb"
)

//*******************************************
// tile records
//*******************************************

// Decoded directed edge as stored in a tile. Costing and path labels only
// read it.
type DirectedEdge struct {
	EndNode GraphId
	// index of the opposing edge at the end node
	OppIndex uint32
	// index of this edge among the outgoing edges of its start node on the
	// local level
	LocalEdgeIdx uint32
	// local index of the opposing edge at the end node
	OppLocalIdx uint32

	Length         uint32 // meters
	Speed          uint32 // kph
	TruckSpeed     uint32 // kph, 0 if not set
	Use            Use
	Classification RoadClass

	ForwardAccess uint32
	ReverseAccess uint32
	// bit i set means the turn onto the edge with local index i at the end
	// node is restricted
	Restrictions uint32

	TransUp   bool
	TransDown bool
	Shortcut  bool
	DestOnly  bool
	NotThru   bool
	Toll      bool

	MaxHeight float32 // meters, 0 if unrestricted
	MaxWeight float32 // metric tons, 0 if unrestricted

	// transit line served by this edge, only set for bus and rail edges
	LineId uint32
}

type NodeInfo struct {
	Loc           orb.Point
	Type          NodeType
	Access        uint32
	TrafficSignal bool
	EdgeCount     uint32
	StopIndex     uint32
}

type TransitDeparture struct {
	LineId        uint32 `csv:"line_id"`
	TripId        uint32 `csv:"trip_id"`
	BlockId       uint32 `csv:"block_id"`
	RouteId       uint32 `csv:"route_id"`
	DepartureTime uint32 `csv:"departure_time"` // seconds from midnight
	ElapsedTime   uint32 `csv:"elapsed_time"`   // seconds until arrival at the next stop
}

type TransitTransfer struct {
	FromStop        uint32       `csv:"from_stop"`
	ToStop          uint32       `csv:"to_stop"`
	Type            TransferType `csv:"transfer_type"`
	MinTransferTime uint32       `csv:"min_transfer_time"` // seconds
}
