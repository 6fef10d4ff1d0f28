// Command zipenc converts the filenames of a ZIP archive from a legacy
// encoding (Shift JIS by default) to UTF-8 without recompressing it.
//
// Usage:
//
//	zipenc -i sjis.zip -o utf8.zip [--encoding NAME] [--utf8-flag] [--verify] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/meigma/zipenc"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type config struct {
	input    string
	output   string
	encoding string
	utf8Flag bool
	verify   bool
	verbose  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "zipenc: %v\n", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	report, err := zipenc.TranscodeFile(ctx, cfg.input, cfg.output,
		zipenc.WithLogger(logger),
		zipenc.WithEncodingName(cfg.encoding),
		zipenc.WithUTF8Flag(cfg.utf8Flag),
	)
	if err != nil {
		fmt.Fprintf(stderr, "zipenc: %v\n", err)
		return exitError
	}

	if cfg.verify {
		entries, err := zipenc.VerifyFile(cfg.output)
		if err != nil {
			fmt.Fprintf(stderr, "zipenc: %v\n", err)
			return exitError
		}
		logger.Debug("output verified", "entries", len(entries))
	}

	fmt.Fprintf(stdout, "%s: %d entries, %d renamed, %d -> %d bytes, %s\n",
		cfg.output, report.LocalHeaders, report.RenamedNames,
		report.BytesIn, report.BytesOut, report.OutputDigest)
	if report.DuplicateNames > 0 {
		fmt.Fprintf(stderr, "zipenc: warning: %d duplicate filenames; their directory entries share one local header\n",
			report.DuplicateNames)
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("zipenc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "input ZIP file (shorthand)")
	fs.StringVar(&cfg.input, "input", "", "input ZIP file")
	fs.StringVar(&cfg.output, "o", "", "output ZIP file (shorthand)")
	fs.StringVar(&cfg.output, "output", "", "output ZIP file")
	fs.StringVar(&cfg.encoding, "encoding", zipenc.DefaultEncoding, "legacy filename encoding (IANA name)")
	fs.BoolVar(&cfg.utf8Flag, "utf8-flag", false, "mark rewritten non-ASCII names with the UTF-8 flag")
	fs.BoolVar(&cfg.verify, "verify", false, "check the structure of the output after writing")
	fs.BoolVar(&cfg.verbose, "v", false, "log every record (shorthand)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log every record")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch {
	case cfg.input == "":
		return config{}, errors.New("--input is required")
	case cfg.output == "":
		return config{}, errors.New("--output is required")
	case fs.NArg() > 0:
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}
