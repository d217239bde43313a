package assess

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/chain"
)

const DefaultMaxDepth = 9

var ErrNoMoves = errors.New("position has no moves")

// Searcher runs iterative deepening negamax over reduced positions. It keeps
// configuration only, so one Searcher can serve any number of calls.
type Searcher struct {
	maxDepth   int
	timeBudget time.Duration
	maxNodes   int64
	progress   func(depth, maxDepth int)
}

type Result struct {
	Best    chain.Choice
	Value   float64
	Depth   int
	Ranking []Candidate
	Stats   Stats
	Elapsed time.Duration
	// Exact is set when the last completed depth reached the end of every
	// line, so deeper search could not change the value.
	Exact bool
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{
		maxDepth: DefaultMaxDepth,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Search ranks the moves of root. Depth one always completes. After that the
// node budget is checked on every node, the time budget and ctx between
// depths and every 1024 nodes, and a depth that runs out of budget is thrown
// away.
func (sr *Searcher) Search(ctx context.Context, root *chain.Position) (Result, error) {
	start := time.Now()
	logger := logx.WithContext(ctx)

	if sr.timeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sr.timeBudget)
		defer cancel()
	}

	ranking := candidates(root)
	if len(ranking) == 0 {
		return Result{Value: root.Evaluate(), Exact: true}, ErrNoMoves
	}

	s := &search{ctx: ctx, maxNodes: sr.maxNodes}
	var result Result
	for depth := 1; depth <= sr.maxDepth; depth++ {
		if depth > 1 && s.exhausted() {
			break
		}
		s.enforce = depth > 1
		s.cutoff = false

		trial := slices.Clone(ranking)
		bestVal := -INF
		for i := range trial {
			c := &trial[i]
			if c.Transition == chain.OpponentMoves {
				c.Value = -s.negamax(c.Position, depth-1, -INF, -bestVal)
			} else {
				c.Value = s.negamax(c.Position, depth-1, bestVal, INF)
			}

			if s.stopped {
				break
			}
			bestVal = max(bestVal, c.Value)
		}

		if s.stopped {
			logger.Debugf("depth %d abandoned after %d nodes", depth, s.stats.Nodes)
			break
		}

		slices.SortStableFunc(trial, func(a, b Candidate) int {
			return cmp.Compare(b.Value, a.Value)
		})
		ranking = trial
		result.Depth = depth
		result.Exact = !s.cutoff
		logger.Debugf("depth %d: best %v, %d nodes, %d leaves", depth, ranking[0], s.stats.Nodes, s.stats.Leaves)

		if sr.progress != nil {
			sr.progress(depth, sr.maxDepth)
		}

		if result.Exact {
			break
		}
	}

	result.Best = ranking[0].Choice
	result.Value = ranking[0].Value
	result.Ranking = ranking
	result.Stats = s.stats
	result.Elapsed = time.Since(start)
	return result, nil
}
