package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

type MoveResponse struct {
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Orientation string  `json:"orientation"`
	Source      string  `json:"source"`
	Depth       int     `json:"depth"`
	Value       float64 `json:"value"`
	Nodes       int64   `json:"nodes"`
	ElapsedMs   int64   `json:"elapsed_ms"`
	GameUid     GameUid `json:"game_uid"`
}

func (r MoveResponse) Move() chess.Move {
	var o chess.Orientation
	if len(r.Orientation) == 1 {
		o = chess.Orientation(r.Orientation[0])
	}
	return chess.NewMove(r.Row, r.Col, o)
}

func (r MoveResponse) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
