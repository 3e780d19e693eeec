// Command fishtank-headless runs the tank without a window, at a fixed time
// step, and logs the population as it goes.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-fishtank/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/structpb"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file")
	duration := flag.Duration("duration", 5*time.Minute, "simulated time to run")
	step := flag.Duration("step", time.Second/60, "fixed tick length")
	every := flag.Duration("every", 10*time.Second, "simulated time between population reports")
	seed := flag.Uint64("seed", 0, "random seed, 0 keeps the configured one")
	fish := flag.Int("fish", -1, "fish at start, -1 keeps the configured number")
	hunters := flag.Int("hunters", -1, "hunters at start, -1 keeps the configured number")
	verbose := flag.Bool("v", false, "log debug events")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatalf("💥 %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fish >= 0 {
		cfg.NumFishAtStart = *fish
	}
	if *hunters >= 0 {
		cfg.NumHuntersAtStart = *hunters
	}
	// a fixed step longer than MaxDelta would be silently cut
	if s := step.Seconds(); s > cfg.MaxDelta {
		log.Fatalf("💥 step %v is longer than maxDelta %gs", *step, cfg.MaxDelta)
	}

	level := golog.InfoLevel
	if *verbose {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	ctx := context.Background()
	system, err := actor.NewActorSystem("FishTankHeadless",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("💥 failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("💥 failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	tank, err := system.Spawn(ctx, "tank", simulation.NewTankActor(cfg, nil))
	if err != nil {
		log.Fatalf("💥 failed to spawn tank: %v", err)
	}

	ticks := int(*duration / *step)
	perReport := max(int(*every / *step), 1)
	start := time.Now()
	for i := 1; i <= ticks; i++ {
		if err := actor.Tell(ctx, tank, simulation.Tick(*step)); err != nil {
			log.Fatalf("💥 failed to tick: %v", err)
		}
		if i%perReport == 0 || i == ticks {
			report(ctx, logger, tank)
		}
	}
	logger.Infof("simulated %v in %v", *duration, time.Since(start).Round(time.Millisecond))
}

// report asks the tank for its status; the Ask waits behind every tick
// already queued, so the numbers are those of the last tick sent.
func report(ctx context.Context, logger golog.Logger, tank *actor.PID) {
	resp, err := actor.Ask(ctx, tank, simulation.StatusRequest(), 30*time.Second)
	if err != nil {
		logger.Errorf("status: %v", err)
		return
	}
	status, ok := resp.(*structpb.Struct)
	if !ok {
		logger.Errorf("status: unexpected reply %T", resp)
		return
	}
	f := status.GetFields()
	logger.Infof("🐟 t=%.0fs fish=%.0f living=%.0f parents=%.0f hunters=%.0f awake=%.0f food=%.0f births=%.0f deaths=%.0f",
		f["clock"].GetNumberValue(), f["fish"].GetNumberValue(), f["living"].GetNumberValue(),
		f["parents"].GetNumberValue(), f["hunters"].GetNumberValue(), f["awakeHunters"].GetNumberValue(),
		f["food"].GetNumberValue(), f["births"].GetNumberValue(), f["deaths"].GetNumberValue())
}
