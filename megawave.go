package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4/logger"
	"golang.org/x/sync/errgroup"

	"github.com/megawave/megawave/internal/art"
	"github.com/megawave/megawave/internal/config"
	"github.com/megawave/megawave/internal/library"
	"github.com/megawave/megawave/internal/scanner"
	"github.com/megawave/megawave/internal/service"
)

var Version = "v0.0.0"

const serviceName = "megawave"

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:    serviceName,
		Usage:   "indexes a directory tree of audio files and serves them over HTTP",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to configuration file",
				Value: "/etc/megawave/megawave.json",
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "HTTP listen address",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%s", err)
	}
}

func run(c *cli.Context) error {
	logger.Infof("%s %s", serviceName, Version)
	defer logger.Info("DONE.")

	if c.Bool("verbose") {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.Load(c.String("config")); err != nil {
		return err
	}
	cfg := config.Config()
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}

	artStore := art.NewStore()
	index := library.NewIndex()

	loader := scanner.New(index, &scanner.TagExtractor{Art: artStore})
	loader.Load(cfg.Roots)

	svc := service.New(service.Settings{
		Library: index,
		Art:     artStore,
	})

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: svc.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Listening on %s", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		loader.Cancel()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
