package routing

import (
	"errors"

	"github.com/moskvax/sif/graph"
	"github.com/moskvax/sif/sif"
)

var (
	ErrNoPath      = errors.New("no path found")
	ErrUnknownNode = errors.New("unknown node")
)

// One edge of a computed path.
type PathInfo struct {
	Mode sif.TravelMode
	// seconds from the start of the route to the end of the edge
	ElapsedTime float32
	TripId      uint32
	EdgeId      graph.GraphId
}

func _FormPath(labels *sif.EdgeLabels, idx uint32) []PathInfo {
	indices := labels.Path(idx)
	path := make([]PathInfo, 0, len(indices))
	for _, i := range indices {
		label := labels.Get(i)
		path = append(path, PathInfo{
			Mode:        label.Mode(),
			ElapsedTime: label.Cost().Secs,
			TripId:      label.TripId(),
			EdgeId:      label.EdgeId(),
		})
	}
	return path
}

type _EdgeStatus struct {
	label   uint32
	settled bool
}
