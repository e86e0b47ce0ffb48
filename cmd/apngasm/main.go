// Command apngasm joins a directory of single-frame PNG files into one
// animated PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shutej/apngasm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "apngasm: %v\n", err)
		return 2
	}

	logLevel := slog.LevelInfo
	switch {
	case cfg.Verbose:
		logLevel = slog.LevelDebug
	case cfg.Quiet:
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	n, err := export(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "apngasm: %s\n", describe(err))
		return 1
	}
	logger.Info("APNG exported", "output", cfg.Output, "frames", n)
	return 0
}

// parseArgs builds the run's Config from defaults, an optional YAML file and
// the command line, in that order.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("apngasm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: apngasm [flags] <input-dir>\n\n")
		fs.PrintDefaults()
	}

	var (
		configPath string
		loops      uint
		flags      Config
	)
	fs.StringVar(&configPath, "config", "", "read settings from YAML `file`, flags take precedence")
	fs.StringVar(&flags.Output, "o", "", "out")
	fs.StringVar(&flags.Output, "out", "", "write the animation to `file` (default output.apng)")
	fs.IntVar(&flags.FPS, "fps", 0, "frames per second, 1-120 (default 24)")
	fs.UintVar(&loops, "loops", 0, "number of times to play, 0 loops forever")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when frames differ in size")
	fs.BoolVar(&flags.KeepPalette, "palette", false, "copy PLTE and tRNS from the first frame")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet, only display errors")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected one input directory, got %d arguments", fs.NArg())
	}

	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o", "out":
			cfg.Output = flags.Output
		case "fps":
			cfg.FPS = flags.FPS
		case "loops":
			cfg.Loops = uint32(loops)
		case "strict":
			cfg.Strict = flags.Strict
		case "palette":
			cfg.KeepPalette = flags.KeepPalette
		case "q", "quiet":
			cfg.Quiet = flags.Quiet
		case "v", "verbose":
			cfg.Verbose = flags.Verbose
		}
	})
	if fs.NArg() == 1 {
		cfg.InputDir = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// export parses every frame in cfg.InputDir and writes the animation.  It
// returns the number of frames written.
func export(cfg Config, logger *slog.Logger) (int, error) {
	paths, err := scanFrames(cfg.InputDir)
	if err != nil {
		return 0, err
	}
	logger.Info("found frames", "dir", cfg.InputDir, "count", len(paths))

	p := &apng.Parser{Logger: logger}
	frames := make([]*apng.Frame, 0, len(paths))
	for i, path := range paths {
		f, err := p.ParseFile(path)
		if err != nil {
			return 0, fmt.Errorf("frame %d of %d: %w", i+1, len(paths), err)
		}
		frames = append(frames, f)
	}

	opts := apng.Options{
		FPS:         float64(cfg.FPS),
		Loops:       cfg.Loops,
		Strict:      cfg.Strict,
		KeepPalette: cfg.KeepPalette,
		Logger:      logger,
		Progress: func(done, total int) {
			logger.Debug("progress", "done", done, "total", total)
		},
	}
	if err := apng.AssembleFile(cfg.Output, frames, opts); err != nil {
		return 0, err
	}
	return len(frames), nil
}

// describe turns an error into the single line shown to the user, prefixed by
// its kind.
func describe(err error) string {
	var (
		fe  *apng.FormatError
		ioe *apng.IOError
	)
	switch {
	case errors.Is(err, apng.ErrEmptyInput), errors.Is(err, errNoFrames):
		return "nothing to do: " + err.Error()
	case errors.Is(err, apng.ErrFrameRate):
		return "unsupported frame rate: " + err.Error()
	case errors.As(err, &fe):
		return "invalid PNG: " + err.Error()
	case errors.As(err, &ioe):
		return "I/O error: " + err.Error()
	}
	return err.Error()
}
