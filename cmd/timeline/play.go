package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hackebrot/go-timeline/internal/config"
	"github.com/hackebrot/go-timeline/internal/logging"
	"github.com/hackebrot/go-timeline/internal/render"
	"github.com/hackebrot/go-timeline/internal/report"
	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

func play(ctx *cli.Context) error {
	cfg, err := playerConfig(ctx)
	if err != nil {
		return err
	}

	if err := logging.Install(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	units, err := config.LoadScript(afero.NewOsFs(), cfg.ScriptPath)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.NoBars {
		out = io.Discard
	}
	board := render.NewBoard(out)

	clk := clock.NewFrame(cfg.FrameInterval)
	p := newPlayer(clk, board, cfg.Loops)
	p.load(units)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			slog.Info("received shutdown signal")
			cancel()
		case <-runCtx.Done():
		}
	}()

	p.tl.Start()
	clk.Run(runCtx)
	board.Wait()

	report.LogResults(p.collector.Results())
	if !p.completed {
		slog.Warn("timeline interrupted before completion", "count_units", p.tl.Len())
	}

	return nil
}
