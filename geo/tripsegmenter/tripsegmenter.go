// Package tripsegmenter coerces an ordered timeseries of track points into
// trips: maximal runs of temporally and spatially contiguous samples.
//
// The split rules are independent OR conditions: either a long idle gap or a
// large instantaneous jump between consecutive samples is sufficient evidence
// of a trip boundary. Comparisons are strict, so a pair exactly at a
// threshold stays in the same trip.
package tripsegmenter

import (
	"time"

	"tripcut/common"
	"tripcut/params"
	"tripcut/types/trackpoint"
)

// State accumulates the current open trip over a forward scan.
// Samples must arrive in sequencer order (time, then source line), which
// guarantees non-negative gaps.
type State struct {
	GapInterval    time.Duration
	JumpDistanceKm float64

	open  []*trackpoint.TrackPoint
	last  *trackpoint.TrackPoint
	trips [][]*trackpoint.TrackPoint
}

func NewState(config params.SegmenterConfig) *State {
	return &State{
		GapInterval:    config.GapInterval,
		JumpDistanceKm: config.JumpDistanceKm,
	}
}

// Add appends tp to the open trip, first flushing the trip when tp is
// discontinuous with the previously added sample.
func (s *State) Add(tp *trackpoint.TrackPoint) {
	if s.IsDiscontinuous(tp) {
		s.Flush()
	}
	s.open = append(s.open, tp)
	s.last = tp
}

// IsDiscontinuous reports whether tp forces a trip boundary against the
// previously added sample.
func (s *State) IsDiscontinuous(tp *trackpoint.TrackPoint) bool {
	if s.last == nil || len(s.open) == 0 {
		return false
	}
	if gap := tp.Time().Sub(s.last.Time()); gap > s.GapInterval {
		return true
	}
	return common.HaversineKm(s.last.Point(), tp.Point()) > s.JumpDistanceKm
}

// Flush closes the open trip, keeping it when non-empty.
func (s *State) Flush() {
	if len(s.open) > 0 {
		s.trips = append(s.trips, s.open)
	}
	s.open = nil
	s.last = nil
}

// Trips flushes any remaining open trip and returns all trips in scan order.
func (s *State) Trips() [][]*trackpoint.TrackPoint {
	s.Flush()
	return s.trips
}

// Segment folds the ordered sample sequence into a list of trips.
// A single isolated sample yields a trip of size 1; the exporter drops
// those later since they cannot form a line.
func Segment(points []*trackpoint.TrackPoint, config params.SegmenterConfig) [][]*trackpoint.TrackPoint {
	s := NewState(config)
	for _, tp := range points {
		s.Add(tp)
	}
	return s.Trips()
}
