package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the root command.
type CLI struct {
	Verbose int  `short:"v" type:"counter" help:"Log verbosity (-v info, -vv debug)"`
	NoColor bool `help:"Disable colored log output"`

	Encode EncodeCLI `cmd:"" help:"Encode input as COBS frames"`
	Decode DecodeCLI `cmd:"" help:"Decode a stream of COBS frames"`
	Size   SizeCLI   `cmd:"" help:"Print the worst-case encoded size of an N-byte message"`
}

// streams are the standard input and output of a command.
type streams struct {
	in  io.Reader
	out io.Writer
}

// open returns the named file, or standard input if path is empty.
func (s *streams) open(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(s.in), nil
	}
	return os.Open(path)
}

func newLogger(w io.Writer, verbosity int, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cobs"),
		kong.Description("Frame and unframe data with Consistent Overhead Byte Stuffing."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, cli.Verbose, cli.NoColor)
	err := ctx.Run(logger, &streams{in: os.Stdin, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
