// Command labyrinth generates a maze, optionally braids it, solves it with
// A* and prints, shows or serves the result.
//
// Usage:
//
//	labyrinth [-width W] [-height H] [-seed S] [-braid F] [-max-draws N]
//	          [-env FILE] [-view [-animate D]] [-serve [-addr A]]
//
// Without -view or -serve the maze is printed as text with the path marked
// by '*'. Settings come from LABYRINTH_* environment variables, optionally
// loaded from a .env file; flags given on the command line win.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/server"
)

func main() {
	logger := log.New(os.Stderr, "[LABYRINTH] ", log.LstdFlags)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("[FATAL] %v", err)
	}
}

// options are the command-line switches that are not part of config.Config.
type options struct {
	envFile string
	view    bool
	animate time.Duration
	serve   bool
}

// run parses args, merges them over the loaded configuration and executes
// the selected mode.
func run(args []string, out io.Writer, logger *log.Logger) error {
	cfg, opts, err := parse(args)
	if err != nil {
		return err
	}
	if opts.serve {
		return serve(cfg, logger)
	}

	m, err := build(cfg, opts.view && opts.animate > 0)
	if err != nil {
		return err
	}
	logger.Printf("[INFO] %dx%d seed=%d draws=%d merges=%d gates=%d braided=%d cost=%d expanded=%d",
		cfg.Width, cfg.Height, m.grid.Seed(), m.gen.Draws, m.gen.Merges, m.gen.Gates, m.braided, m.path.Cost, m.path.Expanded)
	if opts.view {
		return view(m, opts.animate)
	}
	if err := render.WriteASCII(out, m.grid.Matrix(), m.path.Mask()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "seed=%d cost=%d\n", m.grid.Seed(), m.path.Cost)

	return err
}

// parse loads the configuration and applies the flags that were set.
func parse(args []string) (config.Config, options, error) {
	var opts options
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	width := fs.Int("width", config.DefaultWidth, "lattice width in cells (odd, >= 3)")
	height := fs.Int("height", config.DefaultHeight, "lattice height in cells (odd, >= 3)")
	seed := fs.Int64("seed", 0, "generator seed (default: clock)")
	braid := fs.Float64("braid", config.DefaultBraid, "fraction of connector walls to open, in [0,1]")
	maxDraws := fs.Int("max-draws", config.DefaultMaxDraws, "generation draw cap")
	addr := fs.String("addr", config.DefaultAddr, "listen address for -serve")
	fs.StringVar(&opts.envFile, "env", "", "load settings from this .env file (default: .env)")
	fs.BoolVar(&opts.view, "view", false, "show the maze in the terminal")
	fs.DurationVar(&opts.animate, "animate", 0, "with -view, replay generation with this delay per merge")
	fs.BoolVar(&opts.serve, "serve", false, "serve mazes over HTTP instead")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	var cfg config.Config
	if opts.envFile != "" {
		cfg = config.Load(opts.envFile)
	} else {
		cfg = config.Load()
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed, cfg.HasSeed = *seed, true
		case "braid":
			cfg.Braid = *braid
		case "max-draws":
			cfg.MaxDraws = *maxDraws
		case "addr":
			cfg.Addr = *addr
		}
	})

	return cfg, opts, nil
}

// maze bundles the outputs of one generate, braid and solve run.
type maze struct {
	grid    *lattice.Grid
	gen     generator.Result
	braided int
	path    *astar.Result
}

func build(cfg config.Config, trace bool) (*maze, error) {
	var latticeOpts []lattice.Option
	if cfg.HasSeed {
		latticeOpts = append(latticeOpts, lattice.WithSeed(cfg.Seed))
	}
	g, err := lattice.New(cfg.Width, cfg.Height, latticeOpts...)
	if err != nil {
		return nil, err
	}

	genOpts := []generator.Option{generator.WithMaxDraws(cfg.MaxDraws)}
	if trace {
		genOpts = append(genOpts, generator.WithTrace())
	}
	m := &maze{grid: g}
	if m.gen, err = generator.Generate(g, genOpts...); err != nil {
		return nil, fmt.Errorf("generate (seed %d): %w", g.Seed(), err)
	}
	if m.braided, err = generator.Braid(g, cfg.Braid); err != nil {
		return nil, err
	}
	if m.path, err = astar.SolveGrid(g); err != nil {
		return nil, fmt.Errorf("solve (seed %d): %w", g.Seed(), err)
	}

	return m, nil
}

// view shows m on the terminal until the user quits.
func view(m *maze, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := render.NewView(screen)
	if len(m.gen.Trace) > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		frames := make([][][]lattice.RegionID, 0, len(m.gen.Trace))
		for _, f := range m.gen.Trace {
			frames = append(frames, f)
		}
		if err := v.Play(ctx, frames, delay); err != nil {
			return err
		}
	}
	if err := v.Draw(m.grid.Matrix(), m.path.Mask()); err != nil {
		return err
	}
	v.Wait()

	return nil
}

// serve runs the HTTP API until the listener fails.
func serve(cfg config.Config, logger *log.Logger) error {
	gin.SetMode(cfg.GinMode)
	mc, err := server.NewMazeController(server.MazeControllerConfig{
		MaxDraws: cfg.MaxDraws,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Printf("[INFO] listening on %s", cfg.Addr)

	return server.NewRouter(server.Config{
		Addr:        cfg.Addr,
		Controllers: []server.Controller{mc},
	}).Run()
}
