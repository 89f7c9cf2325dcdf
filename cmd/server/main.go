package main

//	@title			Codewave Web Hosting API
//	@version		1.0
//	@description	Upload static sites, manage project records and edit hosted files.
//	@schemes		http https
//	@BasePath		/

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codewave/webhost/internal/bootstrap"
	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/modules/handler"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/codewave/webhost/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	// init gin
	gin.SetMode(cfg.App.Env)

	events := do.MustInvoke[service.EventPublisher](inj)
	if closer, ok := events.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Sugar().Warnw("close event publisher", "err", err)
			}
		}()
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:         cfg,
		Log:            log,
		UploadHandler:  do.MustInvoke[*handler.UploadHandler](inj),
		ProjectHandler: do.MustInvoke[*handler.ProjectHandler](inj),
		FileHandler:    do.MustInvoke[*handler.FileHandler](inj),
		SiteHandler:    do.MustInvoke[*handler.SiteHandler](inj),
		VerifyHandler:  do.MustInvoke[*handler.VerifyHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr, "storage", cfg.Storage.Backend, "root", cfg.Storage.Root)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
