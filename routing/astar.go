package routing

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/exp/slog"

	"github.com/moskvax/sif/graph"
	"github.com/moskvax/sif/sif"
	. "github.com/moskvax/sif/util"
)

// factor applied to the hierarchy limits on the second pass
const RELAX_FACTOR float32 = 16

//*******************************************
// a* path search
//*******************************************

// Forward A* over a hierarchical graph. An AStar keeps its labels between
// calls and must not be used by more than one search at a time.
type AStar struct {
	reader     graph.IGraphReader
	edgelabels *sif.EdgeLabels
	edgestatus Dict[graph.GraphId, _EdgeStatus]
	queue      PriorityQueue[uint32, float32]

	costing      sif.IDynamicCost
	astar_factor float32
	dest_node    graph.GraphId
	dest_loc     orb.Point
}

func NewAStar(reader graph.IGraphReader) *AStar {
	return &AStar{
		reader:     reader,
		edgelabels: sif.NewEdgeLabels(100),
		edgestatus: NewDict[graph.GraphId, _EdgeStatus](100),
		queue:      NewPriorityQueue[uint32, float32](100),
	}
}

// Computes the cheapest path from origin to dest. Costings allowing multiple
// passes are searched again with relaxed hierarchy limits and finally
// without highway transitions before giving up.
func (self *AStar) GetBestPath(origin, dest graph.GraphId, costing sif.IDynamicCost) ([]PathInfo, error) {
	if _, ok := self.reader.GetNode(origin); !ok {
		return nil, fmt.Errorf("%w: origin %v", ErrUnknownNode, origin)
	}
	dest_info, ok := self.reader.GetNode(dest)
	if !ok {
		return nil, fmt.Errorf("%w: destination %v", ErrUnknownNode, dest)
	}
	self.costing = costing
	self.astar_factor = costing.AStarCostFactor()
	self.dest_node = dest
	self.dest_loc = dest_info.Loc

	passes := 1
	if costing.AllowMultiPass() {
		passes = 3
	}
	defer costing.ResetHierarchyLimits()
	for pass := 0; pass < passes; pass++ {
		costing.ResetHierarchyLimits()
		if pass > 0 {
			costing.RelaxHierarchyLimits(RELAX_FACTOR)
		}
		if pass > 1 {
			costing.DisableHighwayTransitions()
		}
		idx, found := self._Search(origin)
		labelsCreated.Observe(float64(self.edgelabels.Len()))
		if found {
			searchPassesTotal.WithLabelValues("found").Inc()
			return _FormPath(self.edgelabels, idx), nil
		}
		searchPassesTotal.WithLabelValues("not_found").Inc()
		slog.Debug("no path found", "pass", pass, "origin", origin.String(), "destination", dest.String())
	}
	return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, dest)
}

func (self *AStar) _Init() {
	self.edgelabels.Reset()
	self.edgestatus = NewDict[graph.GraphId, _EdgeStatus](100)
	self.queue.Clear()
}

func (self *AStar) _Search(origin graph.GraphId) (uint32, bool) {
	self._Init()
	self._Expand(origin, sif.INVALID_LABEL, false)
	for {
		idx, ok := self.queue.Dequeue()
		if !ok {
			return sif.INVALID_LABEL, false
		}
		label := self.edgelabels.Get(idx)
		status := self.edgestatus[label.EdgeId()]
		if status.settled || status.label != idx {
			continue
		}
		status.settled = true
		self.edgestatus[label.EdgeId()] = status
		if self._IsDestination(label.EndNode()) {
			return idx, true
		}
		self._Expand(label.EndNode(), idx, false)
	}
}

// The destination may be the node itself or the same location on another
// level.
func (self *AStar) _IsDestination(node_id graph.GraphId) bool {
	if node_id == self.dest_node {
		return true
	}
	for _, edge_id := range self.reader.GetOutEdges(node_id) {
		edge, ok := self.reader.GetEdge(edge_id)
		if ok && (edge.TransUp || edge.TransDown) && edge.EndNode == self.dest_node {
			return true
		}
	}
	return false
}

// Expands the edges leaving node. pred_idx is INVALID_LABEL at the origin.
func (self *AStar) _Expand(node_id graph.GraphId, pred_idx uint32, from_transition bool) {
	node, ok := self.reader.GetNode(node_id)
	if !ok {
		return
	}
	var pred *sif.EdgeLabel
	if pred_idx != sif.INVALID_LABEL {
		// copy, Add invalidates pointers into the arena
		label := *self.edgelabels.Get(pred_idx)
		pred = &label
		if !self.costing.AllowedNode(node) {
			return
		}
	}
	// levels above the configured limits have no transitions to count
	var limits *sif.HierarchyLimits
	if all := self.costing.GetHierarchyLimits(); int(node_id.Level()) < len(all) {
		limits = &all[node_id.Level()]
	}
	if pred != nil && limits != nil && limits.StopExpanding(pred.Distance()) {
		return
	}

	for _, edge_id := range self.reader.GetOutEdges(node_id) {
		edge, ok := self.reader.GetEdge(edge_id)
		if !ok {
			continue
		}
		if edge.TransUp || edge.TransDown {
			if from_transition || limits == nil || !self.costing.AllowTransitions() {
				continue
			}
			if edge.TransUp {
				if !limits.AllowUpwardTransition() {
					continue
				}
				limits.CountUpTransition()
			} else {
				if !limits.AllowDownwardTransition() {
					continue
				}
				limits.CountDownTransition()
			}
			self._Expand(edge.EndNode, pred_idx, true)
			continue
		}

		status, has_label := self.edgestatus[edge_id]
		if has_label && status.settled {
			continue
		}
		if !self.costing.Allowed(edge, pred) {
			continue
		}
		end, ok := self.reader.GetNode(edge.EndNode)
		if !ok {
			continue
		}

		cost := self.costing.EdgeCost(edge)
		if pred != nil {
			cost = cost.Add(pred.Cost()).Add(self.costing.TransitionCost(edge, node, pred))
		}
		dist := float32(geo.Distance(end.Loc, self.dest_loc))
		sortcost := cost.Cost + dist*self.astar_factor

		var walking_distance uint32
		if self.costing.TravelMode() == sif.PEDESTRIAN {
			walking_distance = min(edge.Length, sif.MAX_WALKING_DISTANCE)
			if pred != nil {
				walking_distance = min(pred.WalkingDistance()+edge.Length, sif.MAX_WALKING_DISTANCE)
			}
		}

		if has_label {
			label := self.edgelabels.Get(status.label)
			if cost.Cost < label.Cost().Cost {
				// the walked distance belongs to the new predecessor chain
				label.UpdateTransit(pred_idx, cost, sortcost, walking_distance, 0, 0)
				self.queue.Enqueue(status.label, sortcost)
			}
			continue
		}
		label := sif.NewMultiModalEdgeLabel(pred_idx, edge_id, edge, cost, sortcost, dist,
			edge.Restrictions&sif.MAX_RESTRICTIONS, edge.OppLocalIdx, self.costing.TravelMode(),
			walking_distance, 0, 0, 0, false)
		if pred == nil {
			label.SetOrigin()
		}
		idx := self.edgelabels.Add(label)
		self.edgestatus[edge_id] = _EdgeStatus{label: idx}
		self.queue.Enqueue(idx, sortcost)
	}
}
