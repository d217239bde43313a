package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

func NewRouter(svcCtx *svc.ServiceContext) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog)

	router.GET("/healthz", HealthzHandler)
	router.POST("/v1/move", MoveHandler(svcCtx))

	if pprof.Register(router, svcCtx.Config.Mode) {
		logx.Infof("profiling routes mounted at %s", pprof.Prefix)
	}
	return router
}

func accessLog(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	logx.WithContext(ctx.Request.Context()).WithDuration(time.Since(start)).
		Infof("%s %s %d", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status())
}
