package assess

import "time"

type Option func(*Searcher)

func WithMaxDepth(maxDepth int) Option {
	return func(s *Searcher) {
		if maxDepth > 0 {
			s.maxDepth = maxDepth
		}
	}
}

// WithTimeBudget bounds the wall time of a call. Zero means no bound.
func WithTimeBudget(timeBudget time.Duration) Option {
	return func(s *Searcher) {
		s.timeBudget = timeBudget
	}
}

// WithMaxNodes bounds the nodes visited by a call. Zero means no bound.
func WithMaxNodes(maxNodes int64) Option {
	return func(s *Searcher) {
		s.maxNodes = maxNodes
	}
}

// WithProgress is called after every completed depth.
func WithProgress(progress func(depth, maxDepth int)) Option {
	return func(s *Searcher) {
		s.progress = progress
	}
}
