// Package chain reduces a Dots and Boxes board to its chains and loops.
//
// Every undrawn edge is split into half-edges, one per box it borders. A
// half-edge knows its partner across the edge (DeadEnd on the border) and the
// next half-edge around its own box, so a box with k open edges is a cycle of
// length k. Boxes with exactly two open edges are contracted away: the two
// half-edges beyond them are joined into a single link that remembers how many
// boxes it passes through. What survives are joints (boxes with three or four
// open edges) connected by links, plus independent chains and loops that no
// longer touch anything.
//
// Half-edges live in flat arrays indexed by integer and are never freed, only
// tagged Removed, so positions derived from the same parent can be copied
// cheaply and never share state.
package chain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

const (
	DeadEnd = -1
	Removed = -2
)

var ErrInconsistentGraph = errors.New("inconsistent half-edge graph")

// Component is an independent chain or loop.
type Component struct {
	Length int
	Loop   bool
	// origin is a half-edge inside the component. Half-edge indices are never
	// reused, so it names a board edge in every position derived from the root.
	origin int
}

// Position is a reduced board. Score is the box differential for Mover.
type Position struct {
	other  []int
	next   []int
	length []int
	Indeps []Component
	Loony  int
	Score  int
	Mover  chess.Turn
}

func newPosition(size int) *Position {
	p := &Position{
		other:  make([]int, size),
		next:   make([]int, size),
		length: make([]int, size),
		Mover:  chess.Player1,
	}
	for n := range size {
		p.other[n] = DeadEnd
		p.next[n] = n
	}
	return p
}

func (p *Position) Clone() *Position {
	return &Position{
		other:  slices.Clone(p.other),
		next:   slices.Clone(p.next),
		length: slices.Clone(p.length),
		Indeps: slices.Clone(p.Indeps),
		Loony:  p.Loony,
		Score:  p.Score,
		Mover:  p.Mover,
	}
}

func (p *Position) Size() int { return len(p.other) }

func (p *Position) Alive(n int) bool {
	return n >= 0 && n < len(p.other) && p.other[n] != Removed
}

func (p *Position) Partner(n int) int { return p.other[n] }

func (p *Position) Next(n int) int { return p.next[n] }

// LinkLength is the number of boxes between n and its partner.
func (p *Position) LinkLength(n int) int { return p.length[n] }

// Links returns one live half-edge per link, the higher index of each pair.
func (p *Position) Links() (links []int) {
	for n, o := range p.other {
		if o == Removed || n < o {
			continue
		}
		links = append(links, n)
	}
	return
}

// BoxesLeft counts the boxes nobody owns yet: joints, boxes inside links,
// independent components and the deferred hot region.
func (p *Position) BoxesLeft() int {
	left := p.Loony
	counted := make([]bool, len(p.other))
	for n, o := range p.other {
		if o == Removed || counted[n] {
			continue
		}
		left++
		for m := n; m >= 0 && !counted[m]; m = p.next[m] {
			counted[m] = true
		}
	}

	clear(counted)
	for n, o := range p.other {
		if o == Removed || counted[n] {
			continue
		}
		left += p.length[n]
		counted[n] = true
		if o != DeadEnd {
			counted[o] = true
		}
	}

	for _, c := range p.Indeps {
		left += c.Length
	}
	return left
}

func (p *Position) IsOver() bool {
	return p.BoxesLeft() == 0
}

// Evaluate scores the position for Mover. An unresolved hot region is worth
// half the remaining boxes rounded up to whoever has to resolve it; this is a
// heuristic without a closed form, not a proven value.
func (p *Position) Evaluate() float64 {
	if p.Loony != 0 {
		return float64(p.Score + (p.BoxesLeft()+1)/2)
	}
	return float64(p.Score)
}

// Validate checks partner symmetry, link lengths and box rotations.
func (p *Position) Validate() error {
	for n, o := range p.other {
		switch {
		case o == Removed:
			continue
		case o == DeadEnd:
		case o < 0 || o >= len(p.other) || p.other[o] != n:
			return fmt.Errorf("%w: half-edge %d has partner %d which does not point back", ErrInconsistentGraph, n, o)
		case p.length[o] != p.length[n]:
			return fmt.Errorf("%w: link %d-%d has lengths %d and %d", ErrInconsistentGraph, n, o, p.length[n], p.length[o])
		}

		m, steps := n, 0
		for {
			m = p.next[m]
			steps++
			if !p.Alive(m) || steps > 4 {
				return fmt.Errorf("%w: box of half-edge %d is not a live cycle of at most four", ErrInconsistentGraph, n)
			}
			if m == n {
				break
			}
		}
	}

	if p.Loony < 0 {
		return fmt.Errorf("%w: negative deferred value %d", ErrInconsistentGraph, p.Loony)
	}
	return nil
}

func (p *Position) String() string {
	return fmt.Sprintf("{mover: %v, score: %d, loony: %d, links: %d, indeps: %v, left: %d}",
		p.Mover, p.Score, p.Loony, len(p.Links()), p.Indeps, p.BoxesLeft())
}
