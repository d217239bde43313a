package chain

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Layout maps half-edges back to the board. pristine is the graph as built,
// before any contraction, and is what handouts are decoded against.
type Layout struct {
	Width    int
	Height   int
	edges    []chess.Move
	boxes    []chess.Point
	pristine *Position
}

// Edge is the board edge half-edge n belongs to.
func (l *Layout) Edge(n int) chess.Move { return l.edges[n] }

// Box is the box half-edge n sits in.
func (l *Layout) Box(n int) chess.Point { return l.boxes[n] }

func (l *Layout) Size() int { return len(l.edges) }

type builder struct {
	width, height int
	edges         []chess.Move
	boxes         []chess.Point
	other         []int
	sides         map[chess.Point]*[4]int
}

func (b *builder) half(e chess.Move, box chess.Point, side chess.Side) int {
	n := len(b.edges)
	b.edges = append(b.edges, e)
	b.boxes = append(b.boxes, box)
	b.other = append(b.other, DeadEnd)
	b.sides[box][side] = n
	return n
}

func (b *builder) pair(e chess.Move, first chess.Point, firstSide chess.Side, second chess.Point, secondSide chess.Side) {
	x := b.half(e, first, firstSide)
	y := b.half(e, second, secondSide)
	b.other[x] = y
	b.other[y] = x
}

// Build turns the undrawn edges of s into half-edges. Partners are set across
// every interior edge, border edges get DeadEnd, and the half-edges of each box
// are chained into a cycle in left, right, top, bottom order. Nothing is
// contracted yet.
func Build(s *chess.Snapshot) (*Layout, *Position, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	b := &builder{
		width:  s.Width,
		height: s.Height,
		sides:  make(map[chess.Point]*[4]int),
	}
	for _, box := range chess.Boxes(s.Width, s.Height) {
		b.sides[box] = &[4]int{Removed, Removed, Removed, Removed}
	}

	for c := range s.Width + 1 {
		for r := range s.Height {
			e := chess.V(r, c)
			if s.Drawn(e) {
				continue
			}

			left, right := chess.NewPoint(r, c-1), chess.NewPoint(r, c)
			switch c {
			case 0:
				b.half(e, right, chess.Left)
			case s.Width:
				b.half(e, left, chess.Right)
			default:
				b.pair(e, left, chess.Right, right, chess.Left)
			}
		}
	}

	for r := range s.Height + 1 {
		for c := range s.Width {
			e := chess.H(r, c)
			if s.Drawn(e) {
				continue
			}

			above, below := chess.NewPoint(r-1, c), chess.NewPoint(r, c)
			switch r {
			case 0:
				b.half(e, below, chess.Top)
			case s.Height:
				b.half(e, above, chess.Bottom)
			default:
				b.pair(e, above, chess.Bottom, below, chess.Top)
			}
		}
	}

	p := newPosition(len(b.edges))
	copy(p.other, b.other)
	for _, box := range chess.Boxes(s.Width, s.Height) {
		var ring []int
		for _, n := range b.sides[box] {
			if n != Removed {
				ring = append(ring, n)
			}
		}
		for i, n := range ring {
			p.next[n] = ring[(i+1)%len(ring)]
		}
	}
	p.Score = s.Score()
	p.Mover = chess.TurnOf(s.Player)

	l := &Layout{
		Width:    s.Width,
		Height:   s.Height,
		edges:    b.edges,
		boxes:    b.boxes,
		pristine: p.Clone(),
	}
	return l, p, nil
}
