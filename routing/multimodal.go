package routing

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/moskvax/sif/graph"
	"github.com/moskvax/sif/sif"
	. "github.com/moskvax/sif/util"
)

//*******************************************
// multi-modal path search
//*******************************************

// Time dependent Dijkstra combining walking with scheduled transit. Walking
// is limited to the start/end distance of the pedestrian costing between
// transit legs.
type MultiModal struct {
	reader     graph.IGraphReader
	edgelabels *sif.EdgeLabels
	edgestatus Dict[graph.GraphId, _EdgeStatus]
	queue      PriorityQueue[uint32, float32]

	pedestrian sif.IDynamicCost
	transit    sif.IDynamicCost
	start_time uint32
	dest_node  graph.GraphId
}

func NewMultiModal(reader graph.IGraphReader) *MultiModal {
	return &MultiModal{
		reader:     reader,
		edgelabels: sif.NewEdgeLabels(100),
		edgestatus: NewDict[graph.GraphId, _EdgeStatus](100),
		queue:      NewPriorityQueue[uint32, float32](100),
	}
}

// Computes the cheapest route leaving origin at start_time (seconds after
// midnight). The pedestrian costing walks with the transit distance limit and
// transit connections during the search, its settings are restored on return.
func (self *MultiModal) GetBestPath(origin, dest graph.GraphId, start_time uint32, pedestrian, transit sif.IDynamicCost) ([]PathInfo, error) {
	if _, ok := self.reader.GetNode(origin); !ok {
		return nil, fmt.Errorf("%w: origin %v", ErrUnknownNode, origin)
	}
	if _, ok := self.reader.GetNode(dest); !ok {
		return nil, fmt.Errorf("%w: destination %v", ErrUnknownNode, dest)
	}
	allow_connections := pedestrian.AllowTransitConnections()
	pedestrian.SetAllowTransitConnections(true)
	pedestrian.UseMaxModeDistance()
	defer func() {
		pedestrian.SetAllowTransitConnections(allow_connections)
		pedestrian.ResetMaxModeDistance()
	}()
	self.pedestrian = pedestrian
	self.transit = transit
	self.start_time = start_time
	self.dest_node = dest

	self.edgelabels.Reset()
	self.edgestatus = NewDict[graph.GraphId, _EdgeStatus](100)
	self.queue.Clear()

	self._Expand(origin, sif.INVALID_LABEL)
	for {
		idx, ok := self.queue.Dequeue()
		if !ok {
			break
		}
		label := self.edgelabels.Get(idx)
		status := self.edgestatus[label.EdgeId()]
		if status.settled {
			continue
		}
		status.settled = true
		self.edgestatus[label.EdgeId()] = status
		if label.EndNode() == dest {
			labelsCreated.Observe(float64(self.edgelabels.Len()))
			searchPassesTotal.WithLabelValues("found").Inc()
			return _FormPath(self.edgelabels, idx), nil
		}
		self._Expand(label.EndNode(), idx)
	}
	labelsCreated.Observe(float64(self.edgelabels.Len()))
	searchPassesTotal.WithLabelValues("not_found").Inc()
	return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, dest)
}

func (self *MultiModal) _Expand(node_id graph.GraphId, pred_idx uint32) {
	node, ok := self.reader.GetNode(node_id)
	if !ok {
		return
	}
	var pred *sif.EdgeLabel
	if pred_idx != sif.INVALID_LABEL {
		label := *self.edgelabels.Get(pred_idx)
		pred = &label
	}

	for _, edge_id := range self.reader.GetOutEdges(node_id) {
		edge, ok := self.reader.GetEdge(edge_id)
		if !ok || edge.TransUp || edge.TransDown {
			continue
		}
		status, has_label := self.edgestatus[edge_id]
		if has_label && status.settled {
			continue
		}

		var label sif.EdgeLabel
		if edge.Use.IsTransitLine() {
			label, ok = self._TransitLabel(edge_id, edge, node, pred, pred_idx)
		} else {
			label, ok = self._WalkLabel(edge_id, edge, node, pred, pred_idx)
		}
		if !ok {
			continue
		}

		if has_label {
			curr := self.edgelabels.Get(status.label)
			if label.Cost().Cost < curr.Cost().Cost {
				// walked distance, prior stop and transit state all follow the new path
				*curr = label
				self.queue.Enqueue(status.label, label.SortCost())
			}
			continue
		}
		idx := self.edgelabels.Add(label)
		self.edgestatus[edge_id] = _EdgeStatus{label: idx}
		self.queue.Enqueue(idx, label.SortCost())
	}
}

func (self *MultiModal) _CurrentTime(pred *sif.EdgeLabel) uint32 {
	if pred == nil {
		return self.start_time
	}
	return self.start_time + uint32(pred.Cost().Secs)
}

func (self *MultiModal) _TransitLabel(edge_id graph.GraphId, edge *graph.DirectedEdge, node *graph.NodeInfo, pred *sif.EdgeLabel, pred_idx uint32) (sif.EdgeLabel, bool) {
	if pred == nil || !self.transit.Allowed(edge, pred) {
		return sif.EdgeLabel{}, false
	}
	curr_time := self._CurrentTime(pred)

	// staying on the trip (or a trip of the same block) needs no transfer
	cost := pred.Cost()
	on_board := pred.Mode() == sif.PUBLIC_TRANSIT
	departure, ok := self.reader.GetNextDeparture(edge.LineId, curr_time)
	if !ok {
		return sif.EdgeLabel{}, false
	}
	if on_board && departure.TripId != pred.TripId() && (departure.BlockId == 0 || departure.BlockId != pred.BlockId()) {
		on_board = false
	}
	if !on_board && pred.HasTransit() {
		from_stop := pred.PriorStopId()
		if pred.Mode() == sif.PUBLIC_TRANSIT {
			from_stop = node.StopIndex
		}
		// nil if the stops have no transfer record
		transfer, _ := self.reader.GetTransfer(from_stop, node.StopIndex)
		if transfer != nil && transfer.Type == graph.TRANSFER_NOT_POSSIBLE {
			return sif.EdgeLabel{}, false
		}
		transfer_cost := self.transit.TransferCost(transfer)
		cost = cost.Add(transfer_cost)
		curr_time += uint32(transfer_cost.Secs)
		departure, ok = self.reader.GetNextDeparture(edge.LineId, curr_time)
		if !ok {
			return sif.EdgeLabel{}, false
		}
	}
	cost = cost.Add(self.transit.TransitEdgeCost(edge, departure, curr_time))

	return sif.NewMultiModalEdgeLabel(pred_idx, edge_id, edge, cost, cost.Cost, 0,
		0, edge.OppLocalIdx, sif.PUBLIC_TRANSIT, 0, departure.TripId, node.StopIndex,
		departure.BlockId, true), true
}

func (self *MultiModal) _WalkLabel(edge_id graph.GraphId, edge *graph.DirectedEdge, node *graph.NodeInfo, pred *sif.EdgeLabel, pred_idx uint32) (sif.EdgeLabel, bool) {
	if !self.pedestrian.Allowed(edge, pred) {
		return sif.EdgeLabel{}, false
	}
	cost := self.pedestrian.EdgeCost(edge)
	walking_distance := edge.Length
	prior_stop := node.StopIndex
	has_transit := false
	if pred != nil {
		cost = cost.Add(pred.Cost()).Add(self.pedestrian.TransitionCost(edge, node, pred))
		walking_distance += pred.WalkingDistance()
		has_transit = pred.HasTransit()
		if !node.Type.IsTransitStop() {
			prior_stop = pred.PriorStopId()
		}
	}
	if walking_distance > sif.MAX_WALKING_DISTANCE {
		slog.Debug("walking distance exceeds label range", "edge", edge_id.String())
		return sif.EdgeLabel{}, false
	}
	label := sif.NewMultiModalEdgeLabel(pred_idx, edge_id, edge, cost, cost.Cost, 0,
		edge.Restrictions&sif.MAX_RESTRICTIONS, edge.OppLocalIdx, sif.PEDESTRIAN, walking_distance,
		0, prior_stop, 0, has_transit)
	if pred == nil {
		label.SetOrigin()
	}
	return label, true
}
