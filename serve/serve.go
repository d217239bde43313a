package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"

	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/handler"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides ListenOn")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Mode != service.DevMode && c.Mode != service.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	srv := &http.Server{
		Addr:    c.ListenOn,
		Handler: handler.NewRouter(ctx),
	}

	go func() {
		fmt.Printf("Starting http server at %s...\n", c.ListenOn)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Must(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}
