// Package main walks a point across the terrain headlessly and prints a
// YAML report of the chunks streamed in and out.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gridmesh/internal/config"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/internal/sim"
)

type report struct {
	Ticks     int        `yaml:"ticks"`
	Spawned   int        `yaml:"spawned"`
	Despawned int        `yaml:"despawned"`
	Live      int        `yaml:"live"`
	PeakLive  int        `yaml:"peak_live"`
	Vertices  int        `yaml:"vertices"`
	Crossings int        `yaml:"crossings"`
	Start     string     `yaml:"start_chunk"`
	End       string     `yaml:"end_chunk"`
	Position  [3]float32 `yaml:"position"`
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Options()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	s, err := sim.New(cfg)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := s.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	out, err := yaml.Marshal(report{
		Ticks:     r.Ticks,
		Spawned:   r.Spawned,
		Despawned: r.Despawned,
		Live:      r.Live,
		PeakLive:  r.PeakLive,
		Vertices:  r.Vertices,
		Crossings: r.Crossings,
		Start:     r.Start.String(),
		End:       r.End.String(),
		Position:  r.Position.Array(),
	})
	if err != nil {
		logger.Error("encode report", zap.Error(err))
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
