package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fdtd2d/config"
	"github.com/pthm-cable/fdtd2d/game"
)

var (
	configPath  = flag.String("config", "", "Path to a YAML config file (overrides embedded defaults)")
	initialSpeed = flag.Int("speed", 1, "Simulation steps per loop iteration in -headless mode (the windowed viewer starts at 1 step/frame)")
	logFile     = flag.String("logfile", "", "Write logs to file instead of stdout")
	logStats    = flag.Bool("log-stats", false, "Log telemetry window stats to console")
	headless    = flag.Bool("headless", false, "Run without graphics (for logging/benchmarking)")
	maxTicks    = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever, useful with -headless)")
	seed        = flag.Int64("seed", 1, "Seed for the game's RNG, which nothing in the simulation draws from (the material speckle uses materials.speckle.seed from the config)")
)

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		game.SetLogWriter(f)
	}

	opts := game.Options{
		ConfigPath: *configPath,
		Seed:       *seed,
		LogStats:   *logStats,
		Headless:   *headless,
	}

	if *headless {
		runHeadless(opts)
		return
	}

	config.MustInit(*configPath)
	cfg := config.Cfg()
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "fdtd2d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Shutdown()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func runHeadless(opts game.Options) {
	opts.Headless = true
	g := game.NewGameWithOptions(opts)
	defer g.Shutdown()

	game.Logf("starting headless simulation, speed=%dx max_ticks=%d", *initialSpeed, *maxTicks)

	start := time.Now()
	lastReport := start
	const reportInterval = 10 * time.Second

	for {
		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			game.Logf("reached max ticks (%d), stopping", *maxTicks)
			break
		}

		for i := 0; i < *initialSpeed; i++ {
			g.UpdateHeadless()
		}

		if time.Since(lastReport) >= reportInterval {
			elapsed := time.Since(start)
			tps := float64(g.Tick()) / elapsed.Seconds()
			game.Logf("[progress] tick=%d %.0f ticks/sec elapsed=%s", g.Tick(), tps, elapsed.Round(time.Second))
			lastReport = time.Now()
		}
	}

	elapsed := time.Since(start)
	game.Logf("simulation complete: ticks=%d elapsed=%s avg=%.0f ticks/sec",
		g.Tick(), elapsed.Round(time.Millisecond), float64(g.Tick())/elapsed.Seconds())
}
