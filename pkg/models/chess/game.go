package chess

import "fmt"

type Turn int8

const (
	Player1 Turn = 1
	Player2 Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

// ID is the rules engine's player identifier (1 or 2) for the turn.
func (t Turn) ID() int {
	if t == Player2 {
		return 2
	}
	return 1
}

func TurnOf(id int) Turn {
	if id == 2 {
		return Player2
	}
	return Player1
}

// Game replays moves with the extra-turn rule so tests and tools can produce
// snapshots. It is not meant to referee a match.
type Game struct {
	Width        int
	Height       int
	Horizontal   map[Point]struct{}
	Vertical     map[Point]struct{}
	Owners       map[Point]int
	Player1Score int
	Player2Score int
	NowPlayer    Turn
}

func NewGame(width, height int) *Game {
	return &Game{
		Width:      width,
		Height:     height,
		Horizontal: make(map[Point]struct{}),
		Vertical:   make(map[Point]struct{}),
		Owners:     make(map[Point]int),
		NowPlayer:  Player1,
	}
}

// Add draws e for the player to move and returns the number of boxes it
// completed. The turn passes only when nothing was completed.
func (g *Game) Add(e Move) (score int, err error) {
	s := g.Snapshot()
	if !e.InRange(g.Width, g.Height) || s.Drawn(e) {
		return 0, fmt.Errorf("illegal move %v", e)
	}

	obtains := s.ObtainsBoxes(e)
	switch e.Orientation {
	case Horizontal:
		g.Horizontal[e.Point()] = struct{}{}
	case Vertical:
		g.Vertical[e.Point()] = struct{}{}
	}

	for _, box := range obtains {
		g.Owners[box] = g.NowPlayer.ID()
	}

	score = len(obtains)
	switch g.NowPlayer {
	case Player1:
		g.Player1Score += score
	case Player2:
		g.Player2Score += score
	}

	if score == 0 {
		g.NowPlayer = -g.NowPlayer
	}
	return score, nil
}

// Play adds every move in order and stops at the first illegal one.
func (g *Game) Play(moves ...Move) error {
	for _, m := range moves {
		if _, err := g.Add(m); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) StepCount() int {
	return len(g.Horizontal) + len(g.Vertical)
}

func (g *Game) IsOver() bool {
	return g.StepCount() == len(Edges(g.Width, g.Height))
}

// Snapshot captures the board for the player to move, legal moves included.
func (g *Game) Snapshot() *Snapshot {
	s := NewSnapshot(g.Width, g.Height, g.NowPlayer.ID())
	for p := range g.Horizontal {
		s.Horizontal[p] = struct{}{}
	}
	for p := range g.Vertical {
		s.Vertical[p] = struct{}{}
	}
	for p, o := range g.Owners {
		s.Owners[p] = o
	}

	for _, e := range Edges(g.Width, g.Height) {
		if !s.Drawn(e) {
			s.Available = append(s.Available, e)
		}
	}
	return s
}
