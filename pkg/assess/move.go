package assess

import (
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/chain"
)

// Candidate is a root move with the value the last completed depth backed up
// for it. Only the first candidate of a ranking is guaranteed exact; the rest
// may be upper bounds from a cut.
type Candidate struct {
	chain.Successor
	Value float64
}

func (c Candidate) String() string {
	return fmt.Sprintf("%v=%v", c.Choice, c.Value)
}

func candidates(root *chain.Position) []Candidate {
	succ := root.Moves()
	ranking := make([]Candidate, len(succ))
	for i, s := range succ {
		ranking[i] = Candidate{Successor: s, Value: -INF}
	}
	return ranking
}
