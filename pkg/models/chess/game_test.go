package chess

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestGameAdd(t *testing.T) {
	t.Run("turn passes when nothing is completed", func(t *testing.T) {
		g := NewGame(2, 2)
		score, err := g.Add(H(0, 0))
		require.NoError(t, err)
		require.Equal(t, 0, score)
		require.Equal(t, Player2, g.NowPlayer)
	})

	t.Run("completing a box keeps the turn", func(t *testing.T) {
		g := NewGame(1, 1)
		require.NoError(t, g.Play(H(0, 0), H(1, 0), V(0, 0)))
		require.Equal(t, Player2, g.NowPlayer)

		score, err := g.Add(V(0, 1))
		require.NoError(t, err)
		require.Equal(t, 1, score)
		require.Equal(t, Player2, g.NowPlayer, "the player who completes a box moves again")
		require.Equal(t, 1, g.Player2Score)
		require.Equal(t, 2, g.Owners[NewPoint(0, 0)])
		require.True(t, g.IsOver())
	})

	t.Run("one edge can complete two boxes", func(t *testing.T) {
		g := NewGame(2, 1)
		require.NoError(t, g.Play(H(0, 0), H(1, 0), V(0, 0), H(0, 1), H(1, 1), V(0, 2)))

		score, err := g.Add(V(0, 1))
		require.NoError(t, err)
		require.Equal(t, 2, score)
	})

	t.Run("drawn and out of range edges are rejected", func(t *testing.T) {
		g := NewGame(2, 2)
		require.NoError(t, g.Play(V(1, 2)))
		_, err := g.Add(V(1, 2))
		require.Error(t, err)
		_, err = g.Add(H(3, 0))
		require.Error(t, err)
	})
}

func TestSnapshot(t *testing.T) {
	g := NewGame(2, 2)
	require.NoError(t, g.Play(H(0, 0), V(0, 0), H(1, 0)))
	s := g.Snapshot()

	require.NoError(t, s.Validate())
	require.Len(t, s.Available, len(Edges(2, 2))-3)
	require.Equal(t, 3, s.Sides(NewPoint(0, 0)))
	require.Equal(t, []Point{NewPoint(0, 0)}, s.ObtainsBoxes(V(0, 1)))
	require.Empty(t, s.ObtainsBoxes(V(1, 1)))
	require.True(t, s.IsLegal(V(0, 1)))
	require.False(t, s.IsLegal(H(0, 0)))

	next := s.Apply(V(0, 1))
	require.True(t, next.Drawn(V(0, 1)))
	require.False(t, s.Drawn(V(0, 1)), "Apply must not touch the original snapshot")
	require.Len(t, next.Available, len(s.Available)-1)
}

func TestSnapshotValidate(t *testing.T) {
	s := NewSnapshot(2, 2, 1)
	s.Vertical[NewPoint(2, 0)] = struct{}{}
	require.ErrorIs(t, s.Validate(), ErrInvalidSnapshot)

	s = NewSnapshot(0, 2, 1)
	require.ErrorIs(t, s.Validate(), ErrInvalidSnapshot)

	s = NewSnapshot(2, 2, 3)
	require.ErrorIs(t, s.Validate(), ErrInvalidSnapshot)
}

func TestSnapshotScore(t *testing.T) {
	s := NewSnapshot(2, 2, 2)
	s.Owners[NewPoint(0, 0)] = 2
	s.Owners[NewPoint(0, 1)] = 2
	s.Owners[NewPoint(1, 1)] = 1
	require.Equal(t, 1, s.Score())
}

func TestMoveWireShape(t *testing.T) {
	data, err := sonic.Marshal([]Move{H(3, 1), V(0, 2)})
	require.NoError(t, err)
	require.JSONEq(t, `[[3, 1, "H"], [0, 2, "V"]]`, string(data))

	var moves []Move
	require.NoError(t, sonic.Unmarshal([]byte(`[[2, 0, "V"]]`), &moves))
	require.Equal(t, []Move{V(2, 0)}, moves)

	var m Move
	require.Error(t, sonic.Unmarshal([]byte(`[2, 0, "X"]`), &m))
}

func TestNearBoxes(t *testing.T) {
	require.Equal(t, []Point{NewPoint(0, 1)}, H(0, 1).NearBoxes(3, 2))
	require.Equal(t, []Point{NewPoint(0, 1), NewPoint(1, 1)}, H(1, 1).NearBoxes(3, 2))
	require.Equal(t, []Point{NewPoint(1, 2)}, V(1, 3).NearBoxes(3, 2))
	require.Equal(t, []Point{NewPoint(1, 0), NewPoint(1, 1)}, V(1, 1).NearBoxes(3, 2))
}
