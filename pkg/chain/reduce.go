package chain

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Reduction is a board ready for search. When Forced is set the position
// holds a capture that must be taken before anything else, and Root should
// not be searched.
type Reduction struct {
	Layout *Layout
	Root   *Position
	Forced *chess.Move
	hot    int
}

// Reduce builds and contracts the board, then classifies every box left with
// a single open edge. Such a box ends either a broken chain, whose link runs
// into a joint or the border, or a broken loop, whose link runs into another
// such box. Captures that cannot matter for control are forced right away; a
// lone two-box broken chain or four-box broken loop becomes the hot region and
// is taken off the graph.
func Reduce(s *chess.Snapshot) (*Reduction, error) {
	l, p, err := Build(s)
	if err != nil {
		return nil, err
	}
	p.Contract()

	r := &Reduction{Layout: l, Root: p, hot: Removed}

	var loops, chains []int
	for n := range p.next {
		if !p.Alive(n) || p.next[n] != n {
			continue
		}

		o := p.other[n]
		if o != DeadEnd && p.next[o] == o {
			if p.length[n] != 2 {
				return r.force(n), nil
			}
			loops = append(loops, n)
		} else {
			if p.length[n] != 1 {
				return r.force(n), nil
			}
			chains = append(chains, n)
		}
	}

	switch {
	case len(chains) > 0 && len(loops) > 0:
		return r.force(loops[0]), nil
	case len(chains) > 1:
		return r.force(chains[0]), nil
	case len(loops) > 2:
		return r.force(loops[0]), nil
	case len(chains) == 1:
		r.hot = chains[0]
		p.Loony = chainLeave
	case len(loops) == 2:
		r.hot = loops[0]
		p.Loony = loopLeave
	}

	if r.hot != Removed {
		o := p.other[r.hot]
		p.detach(r.hot)
		if o != DeadEnd {
			p.simplify(p.detach(o))
		}
	}
	return r, nil
}

func (r *Reduction) force(n int) *Reduction {
	m := r.Layout.Edge(n)
	r.Forced = &m
	return r
}

// Hot is the half-edge that captures into the hot region, or Removed when the
// root is not hot.
func (r *Reduction) Hot() int { return r.hot }
