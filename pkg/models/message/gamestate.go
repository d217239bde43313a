package message

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// BoxOwner is a [row, col, player id] triple.
type BoxOwner [3]int

// GameState is the board as the rules engine hands it over for one turn.
type GameState struct {
	// BoardSize is [width, height] in boxes.
	BoardSize       [2]int        `json:"board_size"`
	HorizontalLines []chess.Point `json:"horizontal_lines"`
	VerticalLines   []chess.Point `json:"vertical_lines"`
	BoxOwners       []BoxOwner    `json:"box_owners"`
	YourPlayerID    int           `json:"your_player_id"`
	AvailableMoves  []chess.Move  `json:"available_moves"`
	GameUid         GameUid       `json:"game_uid,omitempty"`
}

func NewGameState(data []byte) (g GameState, err error) {
	if err = sonic.Unmarshal(data, &g); err != nil {
		return g, fmt.Errorf("%w: %v", chess.ErrInvalidSnapshot, err)
	}
	return g, nil
}

func FromSnapshot(s *chess.Snapshot) (g GameState) {
	g.BoardSize = [2]int{s.Width, s.Height}
	for _, e := range chess.Edges(s.Width, s.Height) {
		if !s.Drawn(e) {
			continue
		}
		switch e.Orientation {
		case chess.Horizontal:
			g.HorizontalLines = append(g.HorizontalLines, e.Point())
		case chess.Vertical:
			g.VerticalLines = append(g.VerticalLines, e.Point())
		}
	}

	for _, box := range chess.Boxes(s.Width, s.Height) {
		if owner, ok := s.Owners[box]; ok {
			g.BoxOwners = append(g.BoxOwners, BoxOwner{box.Row, box.Col, owner})
		}
	}

	g.YourPlayerID = s.Player
	g.AvailableMoves = s.Available
	return
}

func (g GameState) Snapshot() *chess.Snapshot {
	s := chess.NewSnapshot(g.BoardSize[0], g.BoardSize[1], g.YourPlayerID)
	for _, p := range g.HorizontalLines {
		s.Horizontal[p] = struct{}{}
	}
	for _, p := range g.VerticalLines {
		s.Vertical[p] = struct{}{}
	}
	for _, o := range g.BoxOwners {
		s.Owners[chess.NewPoint(o[0], o[1])] = o[2]
	}
	s.Available = g.AvailableMoves
	return s
}

func (g GameState) String() string {
	str, _ := sonic.MarshalString(g)
	return str
}
