package assess

import (
	"context"
	"math"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/chain"
)

const (
	INF = float64(math.MaxInt64)

	// ctxCheckInterval is how many nodes are searched between deadline and
	// cancellation checks. The node budget is checked on every node.
	ctxCheckInterval = 1024
)

type Stats struct {
	Nodes  int64 `json:"nodes"`
	Leaves int64 `json:"leaves"`
}

// search holds everything one Search call owns. Nothing in it outlives the
// call.
type search struct {
	ctx      context.Context
	maxNodes int64
	stats    Stats
	// enforce turns budget checks on; the first depth always runs to the end.
	enforce bool
	stopped bool
	// cutoff records that some leaf was scored by the heuristic rather than
	// because the game was over.
	cutoff bool
}

func (s *search) exhausted() bool {
	return s.ctx.Err() != nil || s.overNodes()
}

func (s *search) overNodes() bool {
	return s.maxNodes > 0 && s.stats.Nodes >= s.maxNodes
}

// negamax scores p for its mover. Children reached by a move that keeps the
// turn are searched with the same window and their value is not negated.
func (s *search) negamax(p *chain.Position, depth int, alpha, beta float64) float64 {
	s.stats.Nodes++
	if s.enforce && (s.overNodes() || s.stats.Nodes%ctxCheckInterval == 0 && s.ctx.Err() != nil) {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	if p.IsOver() {
		s.stats.Leaves++
		return p.Evaluate()
	}
	if depth == 0 {
		s.stats.Leaves++
		s.cutoff = true
		return p.Evaluate()
	}

	children := p.Moves()
	if len(children) == 0 {
		s.stats.Leaves++
		return p.Evaluate()
	}

	best := -INF
	for _, child := range children {
		var val float64
		if child.Transition == chain.OpponentMoves {
			val = -s.negamax(child.Position, depth-1, -beta, -alpha)
		} else {
			val = s.negamax(child.Position, depth-1, alpha, beta)
		}

		if s.stopped {
			return 0
		}

		best = math.Max(best, val)
		if best >= beta {
			break
		}
		alpha = math.Max(alpha, best)
	}
	return best
}
