package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/dcreager/cobs-go/cobs"
)

// Longest line accepted by encode --lines.
const maxLineLength = 16 * 1024 * 1024

// EncodeCLI encodes its input as one frame, or one frame per line.
type EncodeCLI struct {
	File  string `arg:"" optional:"" type:"existingfile" help:"Input file (default: stdin)"`
	Lines bool   `short:"l" help:"Encode each input line as its own frame"`
}

// scanRawLines is bufio.ScanLines without the carriage return handling: a
// '\r' before the newline is part of the line.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

func (c *EncodeCLI) Run(logger *slog.Logger, s *streams) error {
	in, err := s.open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out := bufio.NewWriter(s.out)
	w := cobs.NewWriter(out)
	if c.Lines {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(nil, maxLineLength)
		scanner.Split(scanRawLines)
		for scanner.Scan() {
			if err := w.WriteFrame(scanner.Bytes()); err != nil {
				return fmt.Errorf("failed to write frame: %w", err)
			}
			logger.Debug("encoded frame", "frame", w.Frames()-1, "bytes", len(scanner.Bytes()))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err := w.WriteFrame(data); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("encode complete", "frames", w.Frames())
	return nil
}
