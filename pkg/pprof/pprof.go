package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/service"
)

const Prefix = "/debug/pprof"

// Register mounts the profiling routes when the service runs in dev or test
// mode and reports whether it did.
func Register(router *gin.Engine, mode string) bool {
	if mode != service.DevMode && mode != service.TestMode {
		return false
	}

	pprof.Register(router, Prefix)
	return true
}
