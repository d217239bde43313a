package chain

import (
	"fmt"
	"math"
	"slices"
)

// Transition tells the search whether the player to move changes.
type Transition uint8

const (
	SameMover Transition = iota
	OpponentMoves
)

func (t Transition) String() string {
	if t == SameMover {
		return "same-mover"
	}
	return "opponent-moves"
}

type ChoiceKind uint8

const (
	// ChoiceLink opens the link held by Node.
	ChoiceLink ChoiceKind = iota
	// ChoiceBreak opens the independent component at index Node.
	ChoiceBreak
	// ChoiceEat takes the hot region and keeps the turn.
	ChoiceEat
	// ChoiceGive hands the hot region over with a double-dealing move.
	ChoiceGive
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceLink:
		return "link"
	case ChoiceBreak:
		return "break"
	case ChoiceEat:
		return "eat"
	case ChoiceGive:
		return "give"
	}
	return fmt.Sprintf("ChoiceKind(%d)", uint8(k))
}

type Choice struct {
	Kind ChoiceKind
	Node int
}

func (c Choice) String() string {
	return fmt.Sprintf("%v:%d", c.Kind, c.Node)
}

// Successor is one move out of a position. Captured is the number of boxes the
// move takes off the board, whoever ends up owning them.
type Successor struct {
	Choice     Choice
	Position   *Position
	Transition Transition
	Captured   int
}

const (
	chainLeave = 2
	chainMin   = 3
	loopLeave  = 4
	loopMin    = 4
)

// Moves lists every strategically distinct move. A hot position only has the
// choice between eating and giving; otherwise every link can be opened, and
// the smallest independent loop and chain can be broken. The receiver is never
// modified.
func (p *Position) Moves() []Successor {
	if p.Loony > 0 {
		return p.resolve()
	}

	var succ []Successor
	for _, n := range p.Links() {
		succ = append(succ, p.openLink(n))
	}

	loop, chain := -1, -1
	minLoop, minChain := math.MaxInt, math.MaxInt
	for i, c := range p.Indeps {
		switch {
		case c.Loop && c.Length < minLoop:
			loop, minLoop = i, c.Length
		case !c.Loop && c.Length < minChain:
			chain, minChain = i, c.Length
		}
	}
	if loop >= 0 {
		succ = append(succ, p.breakIndep(loop))
	}
	if chain >= 0 {
		succ = append(succ, p.breakIndep(chain))
	}
	return succ
}

func (p *Position) resolve() []Successor {
	eat := p.Clone()
	eat.Score += p.Loony
	eat.Loony = 0

	give := p.Clone()
	give.Mover = -p.Mover
	give.Score = -p.Score + p.Loony
	give.Loony = 0

	return []Successor{
		{Choice: Choice{Kind: ChoiceEat}, Position: eat, Transition: SameMover, Captured: p.Loony},
		{Choice: Choice{Kind: ChoiceGive}, Position: give, Transition: OpponentMoves, Captured: p.Loony},
	}
}

// openLink draws an edge inside the link held by n. The opponent takes the
// link, plus any box left with a single open edge, and keeps control by
// leaving two when more than two were on offer.
func (p *Position) openLink(n int) Successor {
	st := p.Clone()
	o := st.other[n]
	total := st.length[n]

	same := o != DeadEnd && st.sameBox(n, o)
	r1 := st.detach(n)
	r2 := Removed
	if o != DeadEnd {
		r2 = st.detach(o)
	}

	if same {
		r1, r2 = r2, Removed
		if r1 == Removed {
			total++
		}
	} else {
		if r1 == Removed {
			total++
		}
		if o != DeadEnd && r2 == Removed {
			total++
		}
	}
	total += st.settle(r1)
	total += st.settle(r2)

	st.Mover = -p.Mover
	st.Score = -p.Score
	st.Loony = 0
	st.pay(total, chainLeave, chainLeave+1)

	return Successor{
		Choice:     Choice{Kind: ChoiceLink, Node: n},
		Position:   st,
		Transition: OpponentMoves,
		Captured:   total - st.Loony,
	}
}

func (p *Position) breakIndep(i int) Successor {
	st := p.Clone()
	c := st.Indeps[i]
	st.Indeps = slices.Delete(st.Indeps, i, i+1)
	st.Mover = -p.Mover
	st.Score = -p.Score
	st.Loony = 0
	if c.Loop {
		st.pay(c.Length, loopLeave, loopMin)
	} else {
		st.pay(c.Length, chainLeave, chainMin)
	}

	return Successor{
		Choice:     Choice{Kind: ChoiceBreak, Node: i},
		Position:   st,
		Transition: OpponentMoves,
		Captured:   c.Length - st.Loony,
	}
}

// pay credits the mover with boxes taken from a region, holding back leave of
// them as the hot region when the region has at least that many boxes.
func (p *Position) pay(boxes, leave, least int) {
	if boxes >= least {
		p.Score += boxes - leave
		p.Loony = leave
		return
	}
	p.Score += boxes
}

func (p *Position) sameBox(a, b int) bool {
	for m, steps := p.next[a], 0; steps < 4 && p.Alive(m); m, steps = p.next[m], steps+1 {
		if m == b {
			return true
		}
		if m == a {
			return false
		}
	}
	return false
}
