package chain

import "fmt"

// Contract merges every box left with exactly two open edges.
func (p *Position) Contract() {
	for n := range p.next {
		p.simplify(n)
	}
}

// simplify folds the box holding n into a link when the box has exactly two
// half-edges. A link that comes back into its own box closes a loop; a link
// with the border on both sides closes a chain.
func (p *Position) simplify(n int) {
	if !p.Alive(n) {
		return
	}

	a := p.next[n]
	b := p.next[a]
	if a == n || b != n {
		return
	}

	oa, ob := p.other[a], p.other[b]
	if oa == b {
		p.Indeps = append(p.Indeps, Component{Length: 1 + p.length[a], Loop: true, origin: n})
	} else {
		length := 1 + p.length[a] + p.length[b]
		if oa != DeadEnd {
			p.other[oa] = ob
			p.length[oa] = length
		}
		if ob != DeadEnd {
			p.other[ob] = oa
			p.length[ob] = length
		}
		if oa == DeadEnd && ob == DeadEnd {
			p.Indeps = append(p.Indeps, Component{Length: length, origin: n})
		}
	}

	p.kill(a)
	p.kill(b)
}

func (p *Position) kill(n int) {
	p.other[n] = Removed
	p.next[n] = Removed
	p.length[n] = Removed
}

// detach takes n out of its box and returns a half-edge still in that box, or
// Removed when n was the last one. The partner of n is not touched.
func (p *Position) detach(n int) int {
	prev := n
	for steps := 0; p.next[prev] != n; steps++ {
		if steps > 4 || !p.Alive(p.next[prev]) {
			panic(fmt.Errorf("%w: box of half-edge %d does not cycle back", ErrInconsistentGraph, n))
		}
		prev = p.next[prev]
	}

	rest := Removed
	if prev != n {
		p.next[prev] = p.next[n]
		rest = prev
	}

	p.kill(n)
	return rest
}

// settle tidies the box that still holds n after one of its half-edges went
// away. A box down to two half-edges is contracted; a box down to one is
// eaten together with the link behind it, and the box at the far end settles
// in turn. It returns the number of boxes eaten.
func (p *Position) settle(n int) (eaten int) {
	if !p.Alive(n) {
		return 0
	}

	if p.next[n] != n {
		p.simplify(n)
		return 0
	}

	eaten = 1 + p.length[n]
	o := p.other[n]
	p.detach(n)
	if o != DeadEnd {
		rest := p.detach(o)
		if rest == Removed {
			return eaten + 1
		}
		eaten += p.settle(rest)
	}
	return eaten
}
