package assess

import (
	"golang.org/x/exp/rand"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// RandMoveInBetterMoves picks uniformly among BetterMoves, or returns false
// when nothing is legal.
func RandMoveInBetterMoves(s *chess.Snapshot, r *rand.Rand) (chess.Move, bool) {
	moves := BetterMoves(s)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[r.Intn(len(moves))], true
}

// BetterMoves narrows the legal moves down to the best class available:
// moves completing two boxes, then one box, then moves that hand no box a
// third side, then anything.
func BetterMoves(s *chess.Snapshot) []chess.Move {
	scoreCount := make(map[int][]chess.Move)
	for _, m := range s.Available {
		score := len(s.ObtainsBoxes(m))
		scoreCount[score] = append(scoreCount[score], m)
	}

	if len(scoreCount[2]) > 0 {
		return scoreCount[2]
	}

	if len(scoreCount[1]) > 0 {
		return scoreCount[1]
	}

	var safe []chess.Move
	for _, m := range scoreCount[0] {
		if !opensBox(s, m) {
			safe = append(safe, m)
		}
	}

	if len(safe) > 0 {
		return safe
	}

	return scoreCount[0]
}

func opensBox(s *chess.Snapshot, m chess.Move) bool {
	next := s.Apply(m)
	for _, box := range m.NearBoxes(s.Width, s.Height) {
		if next.Sides(box) == 3 {
			return true
		}
	}
	return false
}
