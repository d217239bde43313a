package chain

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

var ErrUnknownChoice = errors.New("choice does not map to a board edge")

// Decode turns a root choice into the edge to draw. Two-box links and two-box
// border chains are opened in the middle so the opponent cannot hand them
// back, and giving the hot region draws the edge that leaves it as a domino.
func (r *Reduction) Decode(c Choice) (chess.Move, error) {
	pristine := r.Layout.pristine
	switch c.Kind {
	case ChoiceEat:
		if r.hot < 0 {
			return chess.Move{}, fmt.Errorf("%w: %v without a hot region", ErrUnknownChoice, c)
		}
		return r.Layout.Edge(r.hot), nil

	case ChoiceGive:
		if r.hot < 0 {
			return chess.Move{}, fmt.Errorf("%w: %v without a hot region", ErrUnknownChoice, c)
		}
		if mid, ok := pristine.middle(pristine.other[r.hot]); ok {
			return r.Layout.Edge(mid), nil
		}
		return chess.Move{}, fmt.Errorf("%w: %v has no handout edge", ErrUnknownChoice, c)

	case ChoiceBreak:
		if c.Node < 0 || c.Node >= len(r.Root.Indeps) {
			return chess.Move{}, fmt.Errorf("%w: %v out of range", ErrUnknownChoice, c)
		}
		comp := r.Root.Indeps[c.Node]
		if !comp.Loop && comp.Length == 2 && pristine.other[comp.origin] == DeadEnd {
			if mid, ok := pristine.middle(comp.origin); ok {
				return r.Layout.Edge(mid), nil
			}
		}
		return r.Layout.Edge(comp.origin), nil

	case ChoiceLink:
		n := c.Node
		if !r.Root.Alive(n) {
			return chess.Move{}, fmt.Errorf("%w: %v is not a live link", ErrUnknownChoice, c)
		}
		if r.Root.LinkLength(n) == 2 {
			if mid, ok := pristine.middle(pristine.other[n]); ok {
				return r.Layout.Edge(mid), nil
			}
		}
		return r.Layout.Edge(n), nil
	}
	return chess.Move{}, fmt.Errorf("%w: %v", ErrUnknownChoice, c)
}

// middle returns the other half-edge of the two-edge box holding n.
func (p *Position) middle(n int) (int, bool) {
	if !p.Alive(n) {
		return Removed, false
	}
	m := p.next[n]
	if m == n || p.next[m] != n {
		return Removed, false
	}
	return m, true
}
