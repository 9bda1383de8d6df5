package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chuch3/sparrow/config"
	"github.com/chuch3/sparrow/game"
	"github.com/chuch3/sparrow/server"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	serve := flag.Bool("serve", false, "Serve world snapshots over websocket (headless only)")
	logStats := flag.Bool("log-stats", false, "Output generation stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		slog.Error("failed to initialize game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if *headless {
		runHeadless(g, cfg, *serve, *maxGenerations)
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Sparrow")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	for !rl.WindowShouldClose() {
		g.HandleInput()
		g.Update()
		g.Draw()

		if *maxGenerations > 0 && g.Sim().Generation() >= *maxGenerations {
			break
		}
	}
}

// runHeadless steps the simulation without a window, optionally
// publishing snapshots and draining viewer commands between ticks.
func runHeadless(g *game.Game, cfg *config.Config, serve bool, maxGenerations int) {
	var srv *server.Server
	if serve {
		srv = server.New(cfg)
		go func() {
			if err := srv.Run(); err != nil {
				slog.Error("snapshot server failed", "error", err)
				os.Exit(1)
			}
		}()
	}

	slog.Info("starting headless simulation",
		"serve", serve, "max_generations", maxGenerations)

	for {
		if srv != nil {
			drainCommands(g, srv)
			if g.Tick()%cfg.Server.SnapshotEvery == 0 {
				srv.Publish(server.TakeSnapshot(g.Sim(), g.Tick()))
			}
		}

		if g.Paused() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		g.Step()

		if maxGenerations > 0 && g.Sim().Generation() >= maxGenerations {
			slog.Info("max generations reached", "generation", g.Sim().Generation())
			return
		}
	}
}

func drainCommands(g *game.Game, srv *server.Server) {
	for {
		select {
		case cmd := <-srv.Commands():
			switch cmd {
			case server.CommandPause:
				g.SetPaused(true)
			case server.CommandResume:
				g.SetPaused(false)
			case server.CommandFastForward:
				g.FastForward()
			}
		default:
			return
		}
	}
}
