package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkravets/uploadhub/internal/buildinfo"
	"github.com/mkravets/uploadhub/internal/cli"
	"github.com/mkravets/uploadhub/internal/config"
	"github.com/mkravets/uploadhub/internal/flagx"
	"github.com/mkravets/uploadhub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	paths := flagx.Positionals(os.Args[1:], []string{"-c", "-config", "-u", "-m", "-t", "-o", "-k"})

	if err := app.Run(ctx, paths); err != nil {
		log.Fatalf("%v", err)
	}
}
