package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-fishtank/internal/tankview"
	"github.com/lao-tseu-is-alive/go-fishtank/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file")
	verbose := flag.Bool("v", false, "log debug events (births, deaths, hunters waking up)")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatalf("💥 %v", err)
		}
	}

	level := golog.InfoLevel
	if *verbose {
		level = golog.DebugLevel
	}
	ctx := context.Background()
	system, err := actor.NewActorSystem("FishTank",
		actor.WithLogger(golog.New(level, os.Stderr)),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("💥 failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("💥 failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	game, err := tankview.NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatalf("💥 %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Fish tank")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if status, err := game.Status(time.Second); err == nil {
		system.Logger().Infof("final tank: %v", status)
	}
}
