package graph

//*******************************************
// graph reader interface
//*******************************************

// Read access to decoded tiles. Records returned are owned by the reader and
// must not be modified.
type IGraphReader interface {
	GetNode(node GraphId) (*NodeInfo, bool)
	GetEdge(edge GraphId) (*DirectedEdge, bool)
	GetOutEdges(node GraphId) []GraphId
	// first departure on the line leaving at or after curr_time
	GetNextDeparture(lineid uint32, curr_time uint32) (*TransitDeparture, bool)
	GetTransfer(from_stop, to_stop uint32) (*TransitTransfer, bool)
}
