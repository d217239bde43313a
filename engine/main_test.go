package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/player"
)

func testConfig(t *testing.T) Config {
	var c Config
	require.NoError(t, conf.FillDefault(&c))
	return c
}

func TestRun(t *testing.T) {
	logx.Disable()

	g := chess.NewGame(3, 3)
	require.NoError(t, g.Play(chess.H(0, 0), chess.V(0, 0), chess.H(1, 0)))
	state := message.FromSnapshot(g.Snapshot())

	var out bytes.Buffer
	err := run(context.Background(), testConfig(t), strings.NewReader(state.String()), &out, model.Off)
	require.NoError(t, err)
	require.Equal(t, "0 1 V\n", out.String())
}

func TestRunErrors(t *testing.T) {
	logx.Disable()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(t), strings.NewReader("{"), &out, model.Off)
	require.ErrorIs(t, err, chess.ErrInvalidSnapshot)

	g := chess.NewGame(1, 1)
	require.NoError(t, g.Play(chess.Edges(1, 1)...))
	state := message.FromSnapshot(g.Snapshot())
	err = run(context.Background(), testConfig(t), strings.NewReader(state.String()), &out, model.Off)
	require.ErrorIs(t, err, player.ErrNoLegalMoves)
	require.Empty(t, out.String())
}
