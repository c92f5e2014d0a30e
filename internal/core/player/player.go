// Package player tracks the viewer's position and heading.
package player

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Action is one discrete input event. Each application moves or turns the
// player by exactly one fixed increment.
type Action int

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionMoveForward
	ActionMoveBackward
)

func (a Action) String() string {
	switch a {
	case ActionRotateLeft:
		return "rotate-left"
	case ActionRotateRight:
		return "rotate-right"
	case ActionMoveForward:
		return "move-forward"
	case ActionMoveBackward:
		return "move-backward"
	default:
		return "none"
	}
}

// State represents the player's physical state in the world.
type State struct {
	Pos          geom.Point
	Angle        float64    // Heading in radians, always in [0, 2π)
	Delta        geom.Point // Per-step movement along the heading
	Speed        float64    // World units per move
	RotationStep float64    // Radians per turn
}

// New creates a player at pos facing angle.
func New(pos geom.Point, angle, speed, rotationStep float64) *State {
	s := &State{
		Pos:          pos,
		Angle:        geom.NormalizeAngle(angle),
		Speed:        speed,
		RotationStep: rotationStep,
	}
	s.updateDelta()
	return s
}

func (s *State) updateDelta() {
	s.Delta = geom.Point{
		X: math.Cos(s.Angle) * s.Speed,
		Y: math.Sin(s.Angle) * s.Speed,
	}
}

// RotateLeft turns the heading counter-clockwise on screen by one step.
func (s *State) RotateLeft() {
	s.Angle = geom.NormalizeAngle(s.Angle - s.RotationStep)
	s.updateDelta()
}

// RotateRight turns the heading clockwise on screen by one step.
func (s *State) RotateRight() {
	s.Angle = geom.NormalizeAngle(s.Angle + s.RotationStep)
	s.updateDelta()
}

// MoveForward steps along the heading. Walls are not checked.
func (s *State) MoveForward() {
	s.Pos = s.Pos.Add(s.Delta)
}

// MoveBackward steps against the heading. Walls are not checked.
func (s *State) MoveBackward() {
	s.Pos = s.Pos.Sub(s.Delta)
}

// Apply performs a single action.
func (s *State) Apply(a Action) {
	switch a {
	case ActionRotateLeft:
		s.RotateLeft()
	case ActionRotateRight:
		s.RotateRight()
	case ActionMoveForward:
		s.MoveForward()
	case ActionMoveBackward:
		s.MoveBackward()
	}
}
