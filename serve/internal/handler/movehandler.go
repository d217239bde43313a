package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/player"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in, err := message.NewGameState(body)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := logic.NewMoveLogic(ctx.Request.Context(), svcCtx).Move(in)
		switch {
		case errors.Is(err, player.ErrNoLegalMoves):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		case err != nil:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		data, err := sonic.Marshal(resp)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

func HealthzHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
