// Command allrgb renders an image in which every pixel has a distinct color.
//
// Usage:
//
//	allrgb [flags] [rows cols output]
//
// With rows·cols == 16777216 (for example 4096 4096) the image contains every
// 24-bit color exactly once. Settings come from defaults, then the -config
// TOML file, then flags given on the command line, then the positionals.
package main

import (
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/allrgb/abstract"
	"github.com/katalvlaran/allrgb/gridgraph"
	"github.com/katalvlaran/allrgb/imageio"
	"github.com/katalvlaran/allrgb/palette"
)

const appName = "allrgb"

var errUsage = errors.New("usage: allrgb [flags] [rows cols output]")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg, err := resolveConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := initLogger(appName, stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	if cfg.Verify != "" {
		return verify(logger, cfg.Verify)
	}
	return generate(logger, cfg)
}

// resolveConfig layers defaults, the TOML file, explicitly set flags and the
// positional arguments, in that order.
func resolveConfig(args []string, stderr io.Writer) (runConfig, error) {
	def := defaultRunConfig()

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	rows := fs.Int("rows", def.Rows, "image height in pixels")
	cols := fs.Int("cols", def.Cols, "image width in pixels")
	output := fs.String("out", def.Output, "output file (.png, .tif, .tiff, .bmp)")
	seed := fs.Int64("seed", 0, "random seed (default: drawn and logged)")
	order := fs.String("order", def.Order, "tree traversal: sdfs|dfs|bfs")
	symmetry := fs.String("symmetry", def.Symmetry, "palette symmetry: random|identity|0..47")
	check := fs.Bool("check", def.Check, "report whether the output holds all 2^24 colors")
	verifyPath := fs.String("verify", "", "check an existing image for all 2^24 colors and exit")
	logLevel := fs.String("log-level", def.LogLevel, "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return runConfig{}, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = loadRunConfig(*configPath, cfg); err != nil {
			return runConfig{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "out":
			cfg.Output = *output
		case "seed":
			cfg.Seed = *seed
			cfg.SeedSet = true
		case "order":
			cfg.Order = *order
		case "symmetry":
			cfg.Symmetry = *symmetry
		case "check":
			cfg.Check = *check
		case "verify":
			cfg.Verify = *verifyPath
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	switch fs.NArg() {
	case 0:
	case 3:
		r, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return runConfig{}, fmt.Errorf("%w: rows %q: %v", errUsage, fs.Arg(0), err)
		}
		c, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return runConfig{}, fmt.Errorf("%w: cols %q: %v", errUsage, fs.Arg(1), err)
		}
		cfg.Rows, cfg.Cols, cfg.Output = r, c, fs.Arg(2)
	default:
		return runConfig{}, fmt.Errorf("%w: got %d positional arguments", errUsage, fs.NArg())
	}

	return cfg, nil
}

// generateOptions translates the textual settings into abstract options.
func generateOptions(cfg runConfig) ([]abstract.Option, error) {
	order, err := gridgraph.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}
	opts := []abstract.Option{abstract.WithSeed(cfg.Seed), abstract.WithOrder(order)}

	switch s := strings.ToLower(strings.TrimSpace(cfg.Symmetry)); s {
	case "random":
		opts = append(opts, abstract.WithRandomSymmetry())
	case "identity", "":
		opts = append(opts, abstract.WithSymmetry(palette.Identity))
	default:
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: symmetry %q", palette.ErrSymmetryIndex, cfg.Symmetry)
		}
		sym, err := palette.SymmetryFromIndex(i)
		if err != nil {
			return nil, err
		}
		opts = append(opts, abstract.WithSymmetry(sym))
	}

	return opts, nil
}

func generate(logger zerolog.Logger, cfg runConfig) error {
	if _, err := imageio.FormatFromPath(cfg.Output); err != nil {
		return err
	}
	if !cfg.SeedSet {
		s, err := randomSeed()
		if err != nil {
			return err
		}
		cfg.Seed = s
	}
	opts, err := generateOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, abstract.WithLogger(logger))

	logger.Info().
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Int64("seed", cfg.Seed).
		Str("order", cfg.Order).
		Msg("generating")

	start := time.Now()
	res, err := abstract.Generate(cfg.Rows, cfg.Cols, opts...)
	if err != nil {
		return err
	}
	if err = imageio.Save(cfg.Output, res.Raster); err != nil {
		return err
	}
	logger.Info().
		Str("output", cfg.Output).
		Int64("seed", res.Seed).
		Stringer("symmetry", res.Symmetry).
		Dur("elapsed", time.Since(start)).
		Msg("image written")

	if cfg.Check {
		ok := res.HasAllColors()
		ev := logger.Info()
		if !ok {
			ev = logger.Warn()
		}
		ev.Bool("all_colors", ok).Msg("color check")
	}
	return nil
}

func verify(logger zerolog.Logger, path string) error {
	r, err := imageio.Load(path)
	if err != nil {
		return err
	}
	ok := palette.HasAllColors(r.Pix)
	logger.Info().
		Str("file", path).
		Int("rows", r.Rows).
		Int("cols", r.Cols).
		Bool("all_colors", ok).
		Msg("verified")
	return nil
}

// randomSeed draws a positive seed from crypto/rand.
func randomSeed() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, fmt.Errorf("draw seed: %w", err)
	}
	return n.Int64() + 1, nil
}
