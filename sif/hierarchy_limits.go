package sif

import (
	"fmt"
	"math"
)

//*******************************************
// hierarchy levels
//*******************************************

const (
	LEVEL_LOCAL    uint32 = 0
	LEVEL_ARTERIAL uint32 = 1
	LEVEL_HIGHWAY  uint32 = 2

	NUM_LEVELS = 3

	UNLIMITED_TRANSITIONS uint32 = math.MaxUint32
)

// defaults indexed by level (local, arterial, highway)
var (
	DEFAULT_MAX_UP_TRANSITIONS    = [NUM_LEVELS]uint32{100, 400, 0}
	DEFAULT_MAX_DOWN_TRANSITIONS  = [NUM_LEVELS]uint32{0, UNLIMITED_TRANSITIONS, UNLIMITED_TRANSITIONS}
	DEFAULT_EXPANSION_WITHIN_DIST = [NUM_LEVELS]float32{5000, 100000, 1000000}
)

//*******************************************
// hierarchy limits
//*******************************************

// Budget of transitions away from one hierarchy level during a single search.
type HierarchyLimits struct {
	MaxUpTransitions    uint32
	MaxDownTransitions  uint32
	UpTransitionCount   uint32
	DownTransitionCount uint32
	// distance to the destination (meters) within which the level is always
	// expanded, regardless of the transition counts
	ExpansionWithinDist float32
}

// Builds the limits of a level from the defaults and any override in the
// config.
func NewHierarchyLimits(level uint32, config *Config) HierarchyLimits {
	if level >= NUM_LEVELS {
		panic(fmt.Sprintf("hierarchy level %v out of range", level))
	}
	limits := HierarchyLimits{
		MaxUpTransitions:    DEFAULT_MAX_UP_TRANSITIONS[level],
		MaxDownTransitions:  DEFAULT_MAX_DOWN_TRANSITIONS[level],
		ExpansionWithinDist: DEFAULT_EXPANSION_WITHIN_DIST[level],
	}
	if config == nil {
		return limits
	}
	for _, opts := range config.HierarchyLimits {
		if opts.Level != level {
			continue
		}
		if opts.MaxUpTransitions != nil {
			limits.MaxUpTransitions = *opts.MaxUpTransitions
		}
		if opts.MaxDownTransitions != nil {
			limits.MaxDownTransitions = *opts.MaxDownTransitions
		}
		if opts.ExpansionWithinDist != nil {
			limits.ExpansionWithinDist = *opts.ExpansionWithinDist
		}
	}
	return limits
}

func (self *HierarchyLimits) AllowUpwardTransition() bool {
	return self.MaxUpTransitions == UNLIMITED_TRANSITIONS || self.UpTransitionCount < self.MaxUpTransitions
}
func (self *HierarchyLimits) AllowDownwardTransition() bool {
	return self.MaxDownTransitions == UNLIMITED_TRANSITIONS || self.DownTransitionCount < self.MaxDownTransitions
}

func (self *HierarchyLimits) CountUpTransition() {
	if self.UpTransitionCount < math.MaxUint32 {
		self.UpTransitionCount += 1
	}
}
func (self *HierarchyLimits) CountDownTransition() {
	if self.DownTransitionCount < math.MaxUint32 {
		self.DownTransitionCount += 1
	}
}

func (self *HierarchyLimits) RemainingUpTransitions() uint32 {
	return _Remaining(self.MaxUpTransitions, self.UpTransitionCount)
}
func (self *HierarchyLimits) RemainingDownTransitions() uint32 {
	return _Remaining(self.MaxDownTransitions, self.DownTransitionCount)
}

// True once the level has used up its upward transitions and the search is
// farther than ExpansionWithinDist from the destination. Levels without an
// upward budget (the top level, or after DisableHighwayTransitions) never
// stop.
func (self *HierarchyLimits) StopExpanding(dist float32) bool {
	if self.MaxUpTransitions == 0 || self.MaxUpTransitions == UNLIMITED_TRANSITIONS {
		return false
	}
	return dist > self.ExpansionWithinDist && self.UpTransitionCount >= self.MaxUpTransitions
}

// Scales the transition budgets and the expansion distance by factor.
// Factors <= 1 (and NaN) leave the limits unchanged so the remaining budget
// never shrinks.
func (self *HierarchyLimits) Relax(factor float32) {
	if !(factor > 1) {
		return
	}
	self.MaxUpTransitions = _ScaleTransitions(self.MaxUpTransitions, factor)
	self.MaxDownTransitions = _ScaleTransitions(self.MaxDownTransitions, factor)
	self.ExpansionWithinDist *= factor
}

func (self *HierarchyLimits) DisableHighwayTransitions() {
	self.MaxUpTransitions = 0
}

func (self *HierarchyLimits) ResetCounts() {
	self.UpTransitionCount = 0
	self.DownTransitionCount = 0
}

func _Remaining(max, count uint32) uint32 {
	if max == UNLIMITED_TRANSITIONS {
		return UNLIMITED_TRANSITIONS
	}
	if count >= max {
		return 0
	}
	return max - count
}

// unlimited stays unlimited, scaled budgets saturate just below it
func _ScaleTransitions(max uint32, factor float32) uint32 {
	if max == UNLIMITED_TRANSITIONS {
		return max
	}
	scaled := float64(max) * float64(factor)
	if scaled >= float64(UNLIMITED_TRANSITIONS-1) {
		return UNLIMITED_TRANSITIONS - 1
	}
	return uint32(scaled)
}
