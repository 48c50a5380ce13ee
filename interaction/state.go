package interaction

import (
	"glbviewer/common"
)

const (
	DefaultDistance    = 5.0
	DefaultMinDistance = 1.0
	DefaultMaxDistance = 50.0
	DefaultSensitivity = 0.5
)

// State is the orbit state driven by pointer and scroll input. It is owned
// by the event loop: handlers mutate it, the frame that follows reads it.
type State struct {
	dragging    bool
	firstSample bool
	lastCursor  common.Vec2

	yaw   float32 // degrees, unbounded
	pitch float32 // degrees, unbounded

	distance    float32
	distanceMin float32
	distanceMax float32
}

// NewState returns a state waiting for its first cursor sample. distance is
// clamped into [minDist, maxDist].
func NewState(distance, minDist, maxDist float32) *State {
	return &State{
		firstSample: true,
		distance:    common.Clamp(distance, minDist, maxDist),
		distanceMin: minDist,
		distanceMax: maxDist,
	}
}

func NewDefaultState() *State {
	return NewState(DefaultDistance, DefaultMinDistance, DefaultMaxDistance)
}

func (s *State) Dragging() bool          { return s.dragging }
func (s *State) FirstSample() bool       { return s.firstSample }
func (s *State) LastCursor() common.Vec2 { return s.lastCursor }
func (s *State) Yaw() float32            { return s.yaw }
func (s *State) Pitch() float32          { return s.pitch }
func (s *State) Distance() float32       { return s.distance }

func (s *State) DistanceRange() (minDist, maxDist float32) {
	return s.distanceMin, s.distanceMax
}

// Press starts a drag and anchors lastCursor at the press position. A press
// while already dragging is ignored.
func (s *State) Press(x, y float32) {
	if s.dragging {
		return
	}
	s.dragging = true
	s.lastCursor = common.Vec2{x, y}
}

func (s *State) Release() {
	s.dragging = false
}

// Move applies a cursor sample. The very first sample only seeds lastCursor.
// Samples outside a drag are dropped without touching lastCursor.
func (s *State) Move(x, y, sensitivity float32) {
	pos := common.Vec2{x, y}
	if s.firstSample {
		s.lastCursor = pos
		s.firstSample = false
	}
	if !s.dragging {
		return
	}
	delta := pos.Sub(s.lastCursor)
	s.lastCursor = pos
	s.yaw += delta.X() * sensitivity
	s.pitch += delta.Y() * sensitivity
}

// Scroll zooms by dy units. Distance snaps to the configured range.
func (s *State) Scroll(dy float32) {
	s.distance = common.Clamp(s.distance-dy, s.distanceMin, s.distanceMax)
}
