package message

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

const state = `{
	"board_size": [2, 2],
	"horizontal_lines": [[0, 0], [1, 0]],
	"vertical_lines": [[0, 0], [0, 1]],
	"box_owners": [[0, 0, 2]],
	"your_player_id": 2,
	"available_moves": [[0, 1, "H"], [1, 1, "H"], [2, 0, "H"], [2, 1, "H"], [0, 2, "V"], [1, 0, "V"], [1, 1, "V"], [1, 2, "V"]]
}`

func TestGameState(t *testing.T) {
	g, err := NewGameState([]byte(state))
	require.NoError(t, err)
	require.Empty(t, g.GameUid)

	s := g.Snapshot()
	require.NoError(t, s.Validate())
	require.Equal(t, 2, s.Width)
	require.Equal(t, 2, s.Player)
	require.True(t, s.Drawn(chess.H(1, 0)))
	require.True(t, s.Drawn(chess.V(0, 1)))
	require.False(t, s.Drawn(chess.V(1, 1)))
	require.Equal(t, 1, s.Score())
	require.Len(t, s.Available, 8)
	require.True(t, s.IsLegal(chess.V(1, 2)))

	back := FromSnapshot(s)
	require.JSONEq(t, state, back.String())
}

func TestGameStateMalformed(t *testing.T) {
	_, err := NewGameState([]byte(`{"board_size": "wide"}`))
	require.ErrorIs(t, err, chess.ErrInvalidSnapshot)

	_, err = NewGameState([]byte(`{"available_moves": [[0, 0, "D"]]}`))
	require.Error(t, err)
}

func TestMoveResponse(t *testing.T) {
	r := MoveResponse{Row: 1, Col: 2, Orientation: "V", Source: "search", Depth: 3, GameUid: "g"}
	require.Equal(t, chess.V(1, 2), r.Move())

	var decoded map[string]any
	require.NoError(t, sonic.UnmarshalString(r.String(), &decoded))
	require.Equal(t, "V", decoded["orientation"])
	require.Equal(t, "g", decoded["game_uid"])
}

func TestGameUid(t *testing.T) {
	require.NotEqual(t, NewGameUid(), NewGameUid())
	require.Equal(t, GameUid("x"), GameUidOr("x"))
	require.NotEmpty(t, GameUidOr(""))
}
