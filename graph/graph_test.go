package graph

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/require"
)

func TestGraphIdFields(t *testing.T) {
	id := NewGraphId(MAX_TILE_ID, 2, MAX_GRAPH_ID)
	require.Equal(t, MAX_TILE_ID, id.TileId())
	require.Equal(t, uint32(2), id.Level())
	require.Equal(t, MAX_GRAPH_ID, id.Id())
	require.Equal(t, NewGraphId(MAX_TILE_ID, 2, 0), id.TileBase())
	require.True(t, id.IsValid())
	require.Equal(t, "12/1/7", NewGraphId(12, 1, 7).String())

	require.False(t, INVALID_GRAPH_ID.IsValid())
	require.Equal(t, "invalid", INVALID_GRAPH_ID.String())

	require.Panics(t, func() { NewGraphId(MAX_TILE_ID+1, 0, 0) })
	require.Panics(t, func() { NewGraphId(0, MAX_LEVEL+1, 0) })
	require.Panics(t, func() { NewGraphId(0, 0, MAX_GRAPH_ID+1) })
}

func TestMemoryGraphEdgePair(t *testing.T) {
	g := NewMemoryGraph()
	a := g.AddNode(1, 2, NodeInfo{Loc: orb.Point{8.0, 50.0}, Access: ALL_ACCESS})
	b := g.AddNode(1, 2, NodeInfo{Loc: orb.Point{8.01, 50.0}, Access: ALL_ACCESS})
	c := g.AddNode(1, 2, NodeInfo{Loc: orb.Point{8.02, 50.0}, Access: ALL_ACCESS})

	ab, ba := g.AddEdgePair(a, b, DirectedEdge{Length: 700, Speed: 50, ForwardAccess: AUTO_ACCESS, ReverseAccess: PEDESTRIAN_ACCESS})
	bc, _ := g.AddEdgePair(b, c, DirectedEdge{Length: 700, Speed: 50, ForwardAccess: ALL_ACCESS, ReverseAccess: ALL_ACCESS})

	fwd, ok := g.GetEdge(ab)
	require.True(t, ok)
	bwd, ok := g.GetEdge(ba)
	require.True(t, ok)
	require.Equal(t, b, fwd.EndNode)
	require.Equal(t, a, bwd.EndNode)
	require.Equal(t, PEDESTRIAN_ACCESS, bwd.ForwardAccess)
	require.Equal(t, AUTO_ACCESS, bwd.ReverseAccess)
	require.Equal(t, bwd.LocalEdgeIdx, fwd.OppLocalIdx)
	require.Equal(t, fwd.LocalEdgeIdx, bwd.OppLocalIdx)

	out := g.GetOutEdges(b)
	require.Equal(t, []GraphId{ba, bc}, out)
	node, _ := g.GetNode(b)
	require.Equal(t, uint32(2), node.EdgeCount)

	_, ok = g.GetNode(NewGraphId(5, 0, 0))
	require.False(t, ok)
	require.Nil(t, g.GetOutEdges(NewGraphId(5, 0, 0)))
}

func TestMemoryGraphTransitions(t *testing.T) {
	g := NewMemoryGraph()
	local := g.AddNode(1, 0, NodeInfo{Access: ALL_ACCESS})
	local_next := g.AddNode(1, 0, NodeInfo{Access: ALL_ACCESS})
	highway := g.AddNode(1, 2, NodeInfo{Access: ALL_ACCESS})
	highway_next := g.AddNode(1, 2, NodeInfo{Access: ALL_ACCESS})

	up := g.AddTransition(local, highway)
	down := g.AddTransition(highway, local)
	road := g.AddEdge(highway, highway_next, DirectedEdge{Length: 100})
	street := g.AddEdge(local, local_next, DirectedEdge{Length: 100})

	e, _ := g.GetEdge(up)
	require.True(t, e.TransUp)
	require.False(t, e.TransDown)
	require.Equal(t, uint32(0), e.Length)
	e, _ = g.GetEdge(down)
	require.True(t, e.TransDown)

	// regular edges of joined nodes never share a local index
	e1, _ := g.GetEdge(road)
	e2, _ := g.GetEdge(street)
	require.NotEqual(t, e1.LocalEdgeIdx, e2.LocalEdgeIdx)

	require.Panics(t, func() { g.AddTransition(local, local_next) })
	require.Panics(t, func() { g.AddTransition(local, g.AddNode(1, 1, NodeInfo{})) })
}

func TestMemoryGraphTransit(t *testing.T) {
	g := NewMemoryGraph()
	g.AddDeparture(TransitDeparture{LineId: 1, TripId: 2, DepartureTime: 3600})
	g.AddDeparture(TransitDeparture{LineId: 1, TripId: 1, DepartureTime: 1800})

	dep, ok := g.GetNextDeparture(1, 1000)
	require.True(t, ok)
	require.Equal(t, uint32(1), dep.TripId)
	dep, ok = g.GetNextDeparture(1, 1801)
	require.True(t, ok)
	require.Equal(t, uint32(2), dep.TripId)
	_, ok = g.GetNextDeparture(1, 3601)
	require.False(t, ok)

	g.AddTransfer(TransitTransfer{FromStop: 1, ToStop: 2, Type: TRANSFER_MIN_TIME, MinTransferTime: 120})
	transfer, ok := g.GetTransfer(1, 2)
	require.True(t, ok)
	require.Equal(t, uint32(120), transfer.MinTransferTime)
	_, ok = g.GetTransfer(2, 1)
	require.False(t, ok)
}

func TestDecodeWay(t *testing.T) {
	way := &osm.Way{Tags: osm.Tags{
		{Key: "highway", Value: "primary"},
		{Key: "maxspeed", Value: "50"},
		{Key: "oneway", Value: "yes"},
		{Key: "toll", Value: "yes"},
		{Key: "maxheight", Value: "3.8 m"},
	}}
	edge, ok := DecodeWay(way)
	require.True(t, ok)
	require.Equal(t, PRIMARY, edge.Classification)
	require.Equal(t, USE_ROAD, edge.Use)
	require.Equal(t, uint32(45), edge.Speed)
	require.Equal(t, ALL_ACCESS, edge.ForwardAccess)
	require.Equal(t, PEDESTRIAN_ACCESS, edge.ReverseAccess)
	require.True(t, edge.Toll)
	require.InDelta(t, 3.8, edge.MaxHeight, 0.001)

	_, ok = DecodeWay(&osm.Way{Tags: osm.Tags{{Key: "building", Value: "yes"}}})
	require.False(t, ok)
}

func TestDecodeEdgeTags(t *testing.T) {
	edge := DecodeEdgeTags(osm.Tags{{Key: "highway", Value: "motorway"}})
	require.Equal(t, uint32(100), edge.Speed)
	require.Equal(t, uint32(0), edge.ReverseAccess)
	require.Zero(t, edge.ForwardAccess&PEDESTRIAN_ACCESS)

	edge = DecodeEdgeTags(osm.Tags{{Key: "highway", Value: "service"}, {Key: "service", Value: "alley"}})
	require.Equal(t, USE_ALLEY, edge.Use)

	edge = DecodeEdgeTags(osm.Tags{{Key: "highway", Value: "footway"}, {Key: "footway", Value: "sidewalk"}})
	require.Equal(t, USE_SIDEWALK, edge.Use)
	require.Equal(t, PEDESTRIAN_ACCESS, edge.ForwardAccess)

	edge = DecodeEdgeTags(osm.Tags{{Key: "highway", Value: "residential"}, {Key: "access", Value: "private"}})
	require.True(t, edge.DestOnly)
	require.True(t, edge.NotThru)

	edge = DecodeEdgeTags(osm.Tags{{Key: "highway", Value: "residential"}, {Key: "hgv", Value: "no"}, {Key: "surface", Value: "cobblestone"}})
	require.Zero(t, edge.ForwardAccess&TRUCK_ACCESS)
	require.Equal(t, uint32(20), edge.Speed)

	edge = DecodeEdgeTags(osm.Tags{{Key: "route", Value: "ferry"}})
	require.True(t, edge.Use.IsFerry())
}

func TestUseFromString(t *testing.T) {
	for _, use := range _ALL_USES {
		parsed, err := UseFromString(use.String())
		require.NoError(t, err)
		require.Equal(t, use, parsed)
	}
	_, err := UseFromString("bogus")
	require.Error(t, err)

	require.True(t, USE_BUS.IsTransitLine())
	require.True(t, USE_TRANSIT_CONNECTION.IsTransitConnection())
	require.False(t, USE_ROAD.IsTransitLine())
	require.True(t, BUS_STOP.IsTransitStop())
}

func TestLoadSchedule(t *testing.T) {
	g := NewMemoryGraph()
	count, err := g.LoadDepartures(strings.NewReader(
		"line_id;trip_id;block_id;route_id;departure_time;elapsed_time\n" +
			"4;2;0;1;3600;300\n" +
			"4;1;0;1;1800;300\n"))
	require.NoError(t, err)
	require.Equal(t, 2, count)
	dep, ok := g.GetNextDeparture(4, 0)
	require.True(t, ok)
	require.Equal(t, uint32(1), dep.TripId)
	require.Equal(t, uint32(300), dep.ElapsedTime)

	count, err = g.LoadTransfers(strings.NewReader(
		"from_stop;to_stop;transfer_type;min_transfer_time\n" +
			"1;2;2;180\n"))
	require.NoError(t, err)
	require.Equal(t, 1, count)
	transfer, ok := g.GetTransfer(1, 2)
	require.True(t, ok)
	require.Equal(t, TRANSFER_MIN_TIME, transfer.Type)

	_, err = g.LoadTransfers(strings.NewReader("from_stop;to_stop;transfer_type\n1;2;9\n"))
	require.ErrorContains(t, err, "unknown transfer type")
	_, err = g.LoadDepartures(strings.NewReader("line_id;departure_time\n1;noon\n"))
	require.Error(t, err)
}

func TestNextDeparture(t *testing.T) {
	g := NewMemoryGraph()
	for i, dep := range []uint32{900, 300, 600, 300} {
		g.AddDeparture(TransitDeparture{LineId: 5, TripId: uint32(i), DepartureTime: dep})
	}
	cases := []struct {
		time uint32
		trip uint32
		ok   bool
	}{
		{0, 1, true},
		{300, 1, true},
		{301, 2, true},
		{900, 0, true},
		{901, 0, false},
	}
	for _, c := range cases {
		dep, ok := g.GetNextDeparture(5, c.time)
		require.Equal(t, c.ok, ok, "time %v", c.time)
		if ok {
			require.Equal(t, c.trip, dep.TripId, "time %v", c.time)
		}
	}
	_, ok := g.GetNextDeparture(6, 0)
	require.False(t, ok)

	// equal departure times keep their input order, across lines
	count, err := g.LoadDepartures(strings.NewReader(
		"line_id;trip_id;departure_time\n" +
			"6;3;500\n" +
			"5;9;100\n" +
			"6;1;200\n" +
			"6;2;500\n"))
	require.NoError(t, err)
	require.Equal(t, 4, count)
	dep, ok := g.GetNextDeparture(6, 0)
	require.True(t, ok)
	require.Equal(t, uint32(1), dep.TripId)
	dep, _ = g.GetNextDeparture(6, 201)
	require.Equal(t, uint32(3), dep.TripId)
	dep, _ = g.GetNextDeparture(5, 0)
	require.Equal(t, uint32(9), dep.TripId)
	dep, _ = g.GetNextDeparture(5, 101)
	require.Equal(t, uint32(1), dep.TripId)
}
