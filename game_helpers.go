package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life-board/model"
	"github.com/sheikhrachel/go-life-board/utils"
)

// frame is one generation handed from the simulation to the renderer
type frame struct {
	generation int
	cells      [][]bool
}

// newLogger builds the logfmt logger used by the CLI
func newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// newApp wires the command line flags to a simulation run writing dumps to out
func newApp(out io.Writer, logger log.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "life"
	app.Usage = "run Conway's Game of Life on a finite board and dump each generation"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "JSON config file"},
		cli.StringFlag{Name: "title", Usage: "heading printed before the first generation"},
		cli.StringFlag{Name: "pattern, p", Usage: "built-in pattern: blinker, glider or block"},
		cli.StringFlag{Name: "input, i", Usage: "text grid file ('*' alive, 'O' dead), overrides --pattern"},
		cli.IntFlag{Name: "rows", Usage: "board rows when using a pattern"},
		cli.IntFlag{Name: "columns", Usage: "board columns when using a pattern"},
		cli.IntFlag{Name: "origin-row", Usage: "row of the pattern's top-left cell"},
		cli.IntFlag{Name: "origin-column", Usage: "column of the pattern's top-left cell"},
		cli.IntFlag{Name: "generations, n", Usage: "number of generations to advance"},
		cli.DurationFlag{Name: "frame-rate", Usage: "pause between generations"},
		cli.BoolFlag{Name: "stop-on-stagnation", Usage: "stop once the board repeats a recent state"},
		cli.BoolFlag{Name: "pool", Usage: "reuse grid buffers between generations"},
		cli.BoolFlag{Name: "debug", Usage: "log every generation"},
	}
	app.Action = func(c *cli.Context) error {
		config, err := configFromContext(c)
		if err != nil {
			return err
		}

		runLogger := log.With(logger, "run", uuid.NewString())
		if c.Bool("debug") {
			runLogger = level.NewFilter(runLogger, level.AllowDebug())
		} else {
			runLogger = level.NewFilter(runLogger, level.AllowInfo())
		}

		board, err := buildBoard(config)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		level.Info(runLogger).Log("msg", "starting simulation",
			"rows", board.NumRows(), "columns", board.NumColumns(),
			"generations", config.Generations, "pool", config.UseMemoryPool)

		stats, err := runGame(ctx, config, board, &model.TextRenderer{W: out}, runLogger)
		if errors.Is(err, context.Canceled) {
			level.Info(runLogger).Log("msg", "interrupted, shutting down")
			err = nil
		}
		if err != nil {
			return err
		}

		level.Info(runLogger).Log("msg", "simulation finished",
			"generations", stats.TotalGenerations, "population", stats.Population,
			"peak_population", stats.PeakPopulation, "avg_population", stats.AveragePopulation,
			"elapsed", stats.Elapsed())
		return nil
	}
	return app
}

// configFromContext loads the config file, if any, then applies flags that were set
func configFromContext(c *cli.Context) (utils.Config, error) {
	config := utils.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if c.IsSet("title") {
		config.Title = c.String("title")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("input") {
		config.InputFile = c.String("input")
	}
	if c.IsSet("rows") {
		config.Rows = c.Int("rows")
	}
	if c.IsSet("columns") {
		config.Columns = c.Int("columns")
	}
	if c.IsSet("origin-row") {
		config.OriginRow = c.Int("origin-row")
	}
	if c.IsSet("origin-column") {
		config.OriginColumn = c.Int("origin-column")
	}
	if c.IsSet("generations") {
		config.Generations = c.Int("generations")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = utils.Duration(c.Duration("frame-rate"))
	}
	if c.IsSet("stop-on-stagnation") {
		config.StopOnStagnation = c.Bool("stop-on-stagnation")
	}
	if c.IsSet("pool") {
		config.UseMemoryPool = c.Bool("pool")
	}

	return config, config.Validate()
}

// buildBoard creates the generation 0 board from the input file or the named pattern
func buildBoard(config utils.Config) (*model.Board, error) {
	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	if config.InputFile != "" {
		f, err := os.Open(config.InputFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[buildBoard] failed to open input: %+v", config.InputFile)
		}
		defer f.Close()

		grid, err := model.ParseGrid(f)
		if err != nil {
			return nil, errors.Wrapf(err, "[buildBoard] failed to parse input: %+v", config.InputFile)
		}
		board, err := model.New(grid, opts...)
		return board, errors.Wrapf(err, "[buildBoard] invalid board in %+v", config.InputFile)
	}

	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return nil, err
	}
	grid := model.EmptyGrid(config.Rows, config.Columns)
	model.Place(grid, pattern, config.OriginRow, config.OriginColumn)
	return model.New(grid, opts...)
}

// runGame advances board up to config.Generations times, rendering every generation.
//
// The simulation goroutine is the only one touching board; the renderer
// only sees snapshots.
func runGame(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	renderer *model.TextRenderer,
	logger log.Logger,
) (*utils.Stats, error) {
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame)
		stats     = utils.NewStats()
		history   = model.NewHistory(config.HistorySize)
	)

	eg.Go(func() error {
		defer close(frames)
		for {
			var (
				generation = board.Generation()
				population = board.CountLivingCells()
				hash       = board.Hash()
			)

			select {
			case frames <- frame{generation: generation, cells: board.Snapshot()}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
			stats.Update(generation, population)
			level.Debug(logger).Log("msg", "generation", "n", generation, "population", population)

			if generation >= config.Generations {
				return nil
			}
			if period := history.Period(hash); config.StopOnStagnation && period > 0 {
				level.Info(logger).Log("msg", "board is stagnant", "generation", generation, "period", period)
				return nil
			}
			history.Record(hash)
			board.Advance()

			if err := pause(egCtx, time.Duration(config.FrameRate)); err != nil {
				return err
			}
		}
	})

	eg.Go(func() error {
		if config.Title != "" {
			if err := renderer.Title(config.Title); err != nil {
				return err
			}
		}
		for f := range frames {
			if err := renderer.Render(f.generation, f.cells); err != nil {
				return err
			}
		}
		return nil
	})

	return stats, eg.Wait()
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
