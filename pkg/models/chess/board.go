package chess

import (
	"errors"
	"fmt"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// Snapshot is the board state handed over by the rules engine for one turn.
type Snapshot struct {
	Width      int
	Height     int
	Horizontal map[Point]struct{}
	Vertical   map[Point]struct{}
	Owners     map[Point]int
	Player     int
	Available  []Move
}

func NewSnapshot(width, height, player int) *Snapshot {
	return &Snapshot{
		Width:      width,
		Height:     height,
		Horizontal: make(map[Point]struct{}),
		Vertical:   make(map[Point]struct{}),
		Owners:     make(map[Point]int),
		Player:     player,
	}
}

func (s *Snapshot) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidSnapshot, s.Width, s.Height)
	}

	if s.Player != 1 && s.Player != 2 {
		return fmt.Errorf("%w: player id %d", ErrInvalidSnapshot, s.Player)
	}

	for p := range s.Horizontal {
		if !H(p.Row, p.Col).InRange(s.Width, s.Height) {
			return fmt.Errorf("%w: horizontal edge %v out of range", ErrInvalidSnapshot, p)
		}
	}

	for p := range s.Vertical {
		if !V(p.Row, p.Col).InRange(s.Width, s.Height) {
			return fmt.Errorf("%w: vertical edge %v out of range", ErrInvalidSnapshot, p)
		}
	}

	return nil
}

func (s *Snapshot) Drawn(m Move) bool {
	var c bool
	switch m.Orientation {
	case Horizontal:
		_, c = s.Horizontal[m.Point()]
	case Vertical:
		_, c = s.Vertical[m.Point()]
	}
	return c
}

// Sides counts the drawn edges of box b.
func (s *Snapshot) Sides(b Point) (count int) {
	for _, e := range BoxEdges(b) {
		if s.Drawn(e) {
			count++
		}
	}
	return
}

// ObtainsBoxes returns the boxes that drawing m would complete.
func (s *Snapshot) ObtainsBoxes(m Move) (obtainsBoxes []Point) {
	if s.Drawn(m) {
		return
	}

	for _, box := range m.NearBoxes(s.Width, s.Height) {
		if s.Sides(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

// Score is the box differential from the point of view of the player to move.
func (s *Snapshot) Score() (score int) {
	for _, owner := range s.Owners {
		switch owner {
		case s.Player:
			score++
		case 0:
		default:
			score--
		}
	}
	return
}

func (s *Snapshot) IsLegal(m Move) bool {
	for _, a := range s.Available {
		if a == m {
			return true
		}
	}
	return false
}

// Apply returns a copy of s with m drawn and removed from the legal list.
// Ownership and turn are left alone; it only serves look-ahead on edges.
func (s *Snapshot) Apply(m Move) *Snapshot {
	next := NewSnapshot(s.Width, s.Height, s.Player)
	for p := range s.Horizontal {
		next.Horizontal[p] = struct{}{}
	}
	for p := range s.Vertical {
		next.Vertical[p] = struct{}{}
	}
	for p, o := range s.Owners {
		next.Owners[p] = o
	}

	switch m.Orientation {
	case Horizontal:
		next.Horizontal[m.Point()] = struct{}{}
	case Vertical:
		next.Vertical[m.Point()] = struct{}{}
	}

	for _, a := range s.Available {
		if a != m {
			next.Available = append(next.Available, a)
		}
	}
	return next
}
