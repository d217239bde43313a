// Package player chooses one move for a board snapshot. Captures that cannot
// affect control are taken straight away, everything else is searched over
// the reduced chain graph, and any failure on the way falls back to a random
// legal move so that a turn is never forfeited.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/exp/rand"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/chain"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

var (
	// ErrNoLegalMoves means the game is already over. It is the only error
	// MakeMove returns.
	ErrNoLegalMoves = errors.New("no legal moves")

	errTranslation = errors.New("move translation failed")
)

type Source string

const (
	SourceForced   Source = "forced"
	SourceSearch   Source = "search"
	SourceFallback Source = "fallback"
)

type Decision struct {
	Move   chess.Move
	Source Source
	// Choice, Depth, Value and Stats are only set for searched moves.
	Choice  chain.Choice
	Depth   int
	Value   float64
	Stats   assess.Stats
	Elapsed time.Duration
}

type Player struct {
	c        Config
	searcher *assess.Searcher
}

// NewPlayer builds a player from c. Extra search options are applied after
// the ones derived from c.
func NewPlayer(c Config, options ...assess.Option) *Player {
	opts := []assess.Option{
		assess.WithMaxDepth(c.MaxDepth),
		assess.WithTimeBudget(c.TimeBudget),
		assess.WithMaxNodes(c.MaxNodes),
	}

	return &Player{
		c:        c,
		searcher: assess.NewSearcher(append(opts, options...)...),
	}
}

func (p *Player) MakeMove(ctx context.Context, s *chess.Snapshot) (chess.Move, error) {
	d, err := p.Decide(ctx, s)
	return d.Move, err
}

// Decide is MakeMove with the details of how the move was found.
func (p *Player) Decide(ctx context.Context, s *chess.Snapshot) (Decision, error) {
	start := time.Now()
	logger := logx.WithContext(ctx)

	if len(s.Available) == 0 {
		return Decision{}, ErrNoLegalMoves
	}

	d, err := p.decide(ctx, s)
	if err == nil && !s.IsLegal(d.Move) {
		err = fmt.Errorf("%w: %v is not in the legal list", errTranslation, d.Move)
	}

	if err != nil {
		logger.Errorf("falling back to a random move: %v", err)
		d = p.fallback(s)
	}

	d.Elapsed = time.Since(start)
	logger.Infof("chose %v (%s) depth %d value %v nodes %d in %v",
		d.Move, d.Source, d.Depth, d.Value, d.Stats.Nodes, d.Elapsed)
	return d, nil
}

func (p *Player) decide(ctx context.Context, s *chess.Snapshot) (d Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errTranslation, r)
		}
	}()

	red, err := chain.Reduce(s)
	if err != nil {
		return d, err
	}

	if red.Forced != nil {
		return Decision{Move: *red.Forced, Source: SourceForced}, nil
	}

	if p.c.Debug {
		if err = red.Root.Validate(); err != nil {
			return d, err
		}
		logx.WithContext(ctx).Debugf("root %v", red.Root)
	}

	res, err := p.searcher.Search(ctx, red.Root)
	if err != nil {
		return d, err
	}

	m, err := red.Decode(res.Best)
	if err != nil {
		return d, err
	}

	return Decision{
		Move:   m,
		Source: SourceSearch,
		Choice: res.Best,
		Depth:  res.Depth,
		Value:  res.Value,
		Stats:  res.Stats,
	}, nil
}

func (p *Player) fallback(s *chess.Snapshot) Decision {
	seed := p.c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m, ok := assess.RandMoveInBetterMoves(s, rand.New(rand.NewSource(seed)))
	if !ok || !s.IsLegal(m) {
		m = s.Available[rand.New(rand.NewSource(seed)).Intn(len(s.Available))]
	}
	return Decision{Move: m, Source: SourceFallback}
}
