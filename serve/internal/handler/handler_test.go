package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/record"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

func TestMain(m *testing.M) {
	logx.Disable()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestService(t *testing.T, mode string) *svc.ServiceContext {
	var c config.Config
	require.NoError(t, conf.FillDefault(&c))
	c.Mode = mode
	c.Engine.TimeBudget = 100 * time.Millisecond
	return svc.NewServiceContext(c)
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/move", strings.NewReader(body)))
	return w
}

func TestMove(t *testing.T) {
	svcCtx := newTestService(t, "pro")
	var journaled []*record.DecisionRecord
	svcCtx.Journal = pusher.NewPusher(pusher.WithPushLogic(func(records ...*record.DecisionRecord) error {
		journaled = append(journaled, records...)
		return nil
	}))
	router := NewRouter(svcCtx)

	g := chess.NewGame(3, 3)
	require.NoError(t, g.Play(chess.H(0, 0), chess.V(0, 0), chess.H(1, 0)))
	state := message.FromSnapshot(g.Snapshot())
	state.GameUid = "game-1"

	w := post(router, state.String())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp message.MoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, chess.V(0, 1), resp.Move())
	require.Equal(t, "forced", resp.Source)
	require.Equal(t, message.GameUid("game-1"), resp.GameUid)

	require.NoError(t, svcCtx.Journal.PushAll())
	require.Len(t, journaled, 1)
	require.Equal(t, message.GameUid("game-1"), journaled[0].GameUid)
	require.Equal(t, 3, journaled[0].Width)
	require.Equal(t, "(0, 1, V)", journaled[0].Move)
}

func TestMoveSearched(t *testing.T) {
	router := NewRouter(newTestService(t, "pro"))
	s := chess.NewGame(2, 2).Snapshot()

	w := post(router, message.FromSnapshot(s).String())
	require.Equal(t, http.StatusOK, w.Code)

	var resp message.MoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, s.IsLegal(resp.Move()))
	require.Equal(t, "search", resp.Source)
	require.Positive(t, resp.Depth)
	require.NotEmpty(t, resp.GameUid)
}

func TestMoveErrors(t *testing.T) {
	router := NewRouter(newTestService(t, "pro"))

	w := post(router, "not json")
	require.Equal(t, http.StatusBadRequest, w.Code)

	g := chess.NewGame(1, 1)
	require.NoError(t, g.Play(chess.Edges(1, 1)...))
	w = post(router, message.FromSnapshot(g.Snapshot()).String())
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRoutes(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter(newTestService(t, "pro")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status": "ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	NewRouter(newTestService(t, "dev")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, pprof.Prefix+"/", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
