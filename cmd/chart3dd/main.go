// Command chart3dd serves a chart description as PNG over HTTP.
//
//	GET /chart.png?width=&height=&theta=&phi=&roll=
//	GET /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fulldump/chart3d/graphics3d"
	"github.com/fulldump/chart3d/internal/config"
	"github.com/fulldump/chart3d/internal/server"
)

func main() {
	var (
		path    = flag.String("config", "chart.yaml", "chart description")
		addr    = flag.String("addr", ":8080", "listen address")
		verbose = flag.Bool("v", false, "log frame statistics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	graphics3d.SetLogger(logger)
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load(*path)
	if err != nil {
		logger.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(cfg, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Warn("shutdown", slog.Any("err", err))
		}
	}()

	logger.Info("listening", slog.String("addr", *addr), slog.String("config", *path))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve", slog.Any("err", err))
		os.Exit(1)
	}
	<-drained
}
