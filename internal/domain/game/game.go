package game

import "fmt"

// Color is the state of a single board point. Black always moves first.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Move is one entry of the append-only move log. Point is nil for a pass.
type Move struct {
	Number   int     `json:"number"`
	Color    Color   `json:"color"`
	Point    *Point  `json:"point,omitempty"`
	Captured []Point `json:"captured,omitempty"`
}

func (m Move) IsPass() bool {
	return m.Point == nil
}

type Score struct {
	Black float64 `json:"black"`
	White float64 `json:"white"`
}

// Winner returns Empty on a tie; ties are reported, never resolved silently.
func (s Score) Winner() Color {
	switch {
	case s.Black > s.White:
		return Black
	case s.White > s.Black:
		return White
	default:
		return Empty
	}
}

type Phase string

const (
	PhaseOpening    Phase = "opening"
	PhaseMiddlegame Phase = "middlegame"
	PhaseEndgame    Phase = "endgame"
)
