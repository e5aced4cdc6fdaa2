package sif

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moskvax/sif/graph"
)

type _LabelValues struct {
	walking      uint32
	use          graph.Use
	opp_index    uint32
	opp_local    uint32
	restrictions uint32
	mode         TravelMode
	flag         bool
	down         bool
	tripid       uint32
}

func _BuildLabel(v _LabelValues) EdgeLabel {
	edge := graph.DirectedEdge{
		EndNode:   graph.NewGraphId(3, 1, 4),
		Use:       v.use,
		OppIndex:  v.opp_index,
		TransUp:   v.flag && !v.down,
		TransDown: v.down,
		Shortcut:  v.flag,
		DestOnly:  v.flag,
		Toll:      v.flag,
	}
	label := NewMultiModalEdgeLabel(7, graph.NewGraphId(3, 1, 9), &edge, NewCost(12.5, 10), 20, 300,
		v.restrictions, v.opp_local, v.mode, v.walking, v.tripid, v.tripid+1, v.tripid+2, v.flag)
	if v.flag {
		label.SetOrigin()
	}
	return label
}

func TestEdgeLabelFieldRoundTrip(t *testing.T) {
	cases := map[string]_LabelValues{
		"min": {},
		"mid": {walking: MAX_WALKING_DISTANCE / 2, use: graph.USE_FOOTWAY, opp_index: 64, opp_local: 63,
			restrictions: 0x55, mode: BICYCLE, flag: true, tripid: 1 << 16},
		"max": {walking: MAX_WALKING_DISTANCE, use: graph.Use(MAX_USE), opp_index: MAX_LOCAL_INDEX,
			opp_local: MAX_LOCAL_INDEX, restrictions: MAX_RESTRICTIONS, mode: TravelMode(MAX_TRAVEL_MODE),
			flag: true, tripid: 1<<32 - 3},
		"max_down": {walking: MAX_WALKING_DISTANCE, use: graph.Use(MAX_USE), opp_index: MAX_LOCAL_INDEX,
			opp_local: MAX_LOCAL_INDEX, restrictions: MAX_RESTRICTIONS, mode: TravelMode(MAX_TRAVEL_MODE),
			flag: true, down: true, tripid: 1<<32 - 3},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			label := _BuildLabel(v)
			require.Equal(t, v.walking, label.WalkingDistance())
			require.Equal(t, v.use, label.Use())
			require.Equal(t, v.opp_index, label.OppIndex())
			require.Equal(t, v.opp_local, label.OppLocalIdx())
			require.Equal(t, v.restrictions, label.Restrictions())
			require.Equal(t, v.mode, label.Mode())
			require.Equal(t, v.flag && !v.down, label.TransUp())
			require.Equal(t, v.down, label.TransDown())
			require.Equal(t, v.flag, label.Shortcut())
			require.Equal(t, v.flag, label.DestOnly())
			require.Equal(t, v.flag, label.Toll())
			require.Equal(t, v.flag, label.HasTransit())
			require.Equal(t, v.flag, label.Origin())
			require.Equal(t, v.tripid, label.TripId())
			require.Equal(t, v.tripid+1, label.PriorStopId())
			require.Equal(t, v.tripid+2, label.BlockId())

			require.Equal(t, uint32(7), label.Predecessor())
			require.Equal(t, graph.NewGraphId(3, 1, 9), label.EdgeId())
			require.Equal(t, graph.NewGraphId(3, 1, 4), label.EndNode())
			require.Equal(t, graph.INVALID_GRAPH_ID, label.OppEdgeId())
			require.Equal(t, NewCost(12.5, 10), label.Cost())
			require.Equal(t, float32(20), label.SortCost())
			require.Equal(t, float32(300), label.Distance())
		})
	}
}

func TestEdgeLabelOverflowPanics(t *testing.T) {
	require.Panics(t, func() { _BuildLabel(_LabelValues{walking: MAX_WALKING_DISTANCE + 1}) })
	require.Panics(t, func() { _BuildLabel(_LabelValues{use: graph.Use(MAX_USE + 1)}) })
	require.Panics(t, func() { _BuildLabel(_LabelValues{opp_index: MAX_LOCAL_INDEX + 1}) })
	require.Panics(t, func() { _BuildLabel(_LabelValues{opp_local: MAX_LOCAL_INDEX + 1}) })
	require.Panics(t, func() { _BuildLabel(_LabelValues{restrictions: MAX_RESTRICTIONS + 1}) })
	require.Panics(t, func() { _BuildLabel(_LabelValues{mode: TravelMode(MAX_TRAVEL_MODE + 1)}) })

	edge := graph.DirectedEdge{TransUp: true, TransDown: true}
	require.Panics(t, func() {
		NewEdgeLabel(INVALID_LABEL, 0, &edge, Cost{}, 0, 0, 0, 0, DRIVE)
	})
}

func TestBidirEdgeLabel(t *testing.T) {
	edge := graph.DirectedEdge{Use: graph.USE_RAMP}
	edgeid := graph.NewGraphId(1, 0, 1)
	oppid := graph.NewGraphId(1, 0, 2)
	label := NewBidirEdgeLabel(INVALID_LABEL, edgeid, oppid, &edge, NewCost(5, 4), 5, 0, 0, 0, DRIVE, 17)
	require.Equal(t, oppid, label.OppEdgeId())
	require.Equal(t, uint32(17), label.TransitionCost())
	require.Equal(t, graph.USE_RAMP, label.Use())

	before := label
	label.SetTransitionCost(3)
	require.Equal(t, uint32(3), label.TransitionCost())
	before.transition_cost = 3
	require.Equal(t, before, label)
}

func TestEdgeLabelUpdate(t *testing.T) {
	edge := graph.DirectedEdge{Use: graph.USE_ROAD}
	label := NewEdgeLabel(INVALID_LABEL, 1, &edge, NewCost(100, 80), 150, 10, 3, 2, DRIVE)

	costs := []float32{90, 60, 59.5}
	for i, c := range costs {
		prev := label.Cost().Cost
		label.Update(uint32(i), NewCost(c, c), c+50)
		require.LessOrEqual(t, label.Cost().Cost, prev)
		require.Equal(t, uint32(i), label.Predecessor())
		require.Equal(t, c+50, label.SortCost())
	}
	// attributes survive relaxation
	require.Equal(t, uint32(3), label.Restrictions())
	require.Equal(t, uint32(2), label.OppLocalIdx())

	label.UpdateTransit(0, NewCost(10, 10), 10, 250, 42, 8)
	require.Equal(t, uint32(250), label.WalkingDistance())
	require.Equal(t, uint32(42), label.TripId())
	require.Equal(t, uint32(8), label.BlockId())
}

func TestEdgeLabelLess(t *testing.T) {
	edge := graph.DirectedEdge{}
	a := NewEdgeLabel(INVALID_LABEL, 1, &edge, NewCost(10, 10), 30, 0, 0, 0, DRIVE)
	b := NewEdgeLabel(INVALID_LABEL, 2, &edge, NewCost(20, 20), 25, 0, 0, 0, DRIVE)
	require.True(t, b.Less(&a))
	require.False(t, a.Less(&b))
	b.SetSortCost(30)
	require.False(t, a.Less(&b))
	require.False(t, b.Less(&a))
}

func TestEdgeLabelsPathChain(t *testing.T) {
	labels := NewEdgeLabels(4)
	edge := graph.DirectedEdge{}
	ids := []graph.GraphId{graph.NewGraphId(1, 0, 0), graph.NewGraphId(1, 0, 1), graph.NewGraphId(1, 0, 2), graph.NewGraphId(1, 0, 3)}

	a := labels.Add(NewEdgeLabel(INVALID_LABEL, ids[0], &edge, Cost{}, 0, 0, 0, 0, DRIVE))
	b := labels.Add(NewEdgeLabel(INVALID_LABEL, ids[1], &edge, NewCost(100, 100), 100, 0, 0, 0, DRIVE))
	c := labels.Add(NewEdgeLabel(INVALID_LABEL, ids[2], &edge, NewCost(100, 100), 100, 0, 0, 0, DRIVE))
	d := labels.Add(NewEdgeLabel(INVALID_LABEL, ids[3], &edge, NewCost(100, 100), 100, 0, 0, 0, DRIVE))

	secs := []float32{10, 15, 5}
	chain := []uint32{a, b, c, d}
	for i := 1; i < len(chain); i++ {
		pred := labels.Get(chain[i-1])
		cost := pred.Cost().Add(NewCost(secs[i-1], secs[i-1]))
		labels.Get(chain[i]).Update(chain[i-1], cost, cost.Cost)
	}

	require.Equal(t, float32(30), labels.Get(d).Cost().Secs)
	require.Equal(t, chain, labels.Path(d))
	path := make([]graph.GraphId, 0, 4)
	for _, idx := range labels.Path(d) {
		path = append(path, labels.Get(idx).EdgeId())
	}
	require.Equal(t, ids, path)
}

func TestEdgeLabelsAdd(t *testing.T) {
	labels := NewEdgeLabels(2)
	edge := graph.DirectedEdge{}
	require.Panics(t, func() {
		labels.Add(NewEdgeLabel(0, 1, &edge, Cost{}, 0, 0, 0, 0, DRIVE))
	})
	idx := labels.Add(NewEdgeLabel(INVALID_LABEL, 1, &edge, Cost{}, 0, 0, 0, 0, DRIVE))
	require.Equal(t, uint32(0), idx)
	require.Equal(t, 1, labels.Len())

	// a chain closed by a bad update is detected
	labels.Add(NewEdgeLabel(idx, 2, &edge, Cost{}, 0, 0, 0, 0, DRIVE))
	labels.Get(0).Update(1, Cost{}, 0)
	require.Panics(t, func() { labels.Path(1) })

	labels.Reset()
	require.Equal(t, 0, labels.Len())
}
