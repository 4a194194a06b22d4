package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dcreager/cobs-go/cobs"
)

// DecodeCLI decodes a stream of frames, skipping any that are damaged.
type DecodeCLI struct {
	File      string `arg:"" optional:"" type:"existingfile" help:"Input file (default: stdin)"`
	Lines     bool   `short:"l" help:"Write a newline after each decoded frame"`
	MaxLength int    `default:"1048576" help:"Largest decoded frame to accept, in bytes (0 for no limit)"`
	Strict    bool   `help:"Fail on the first damaged frame instead of skipping it"`
}

func (c *DecodeCLI) Run(logger *slog.Logger, s *streams) error {
	if c.MaxLength < 0 {
		return fmt.Errorf("--max-length must not be negative")
	}

	in, err := s.open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out := bufio.NewWriter(s.out)
	r := cobs.NewReader(bufio.NewReader(in), cobs.MaxLength(c.MaxLength))
	decoded, skipped := 0, 0
	for {
		msg, err := r.ReadFrame()
		if err == io.EOF {
			break
		}
		var fe *cobs.FrameError
		if errors.As(err, &fe) {
			if c.Strict {
				return fmt.Errorf("failed to decode frame: %w", err)
			}
			logger.Warn("skipping damaged frame", "frame", fe.Frame, "offset", fe.Offset, "error", fe.Err)
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		logger.Debug("decoded frame", "frame", r.Frames()-1, "bytes", len(msg))
		decoded++
		if _, err := out.Write(msg); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if c.Lines {
			if err := out.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("decode complete", "frames", decoded, "skipped", skipped)
	return nil
}
