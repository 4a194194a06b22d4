package main

import (
	"fmt"

	"github.com/dcreager/cobs-go/cobs"
)

// SizeCLI prints MaxEncodedLen for a message length.
type SizeCLI struct {
	N int `arg:"" help:"Message length in bytes"`
}

func (c *SizeCLI) Run(s *streams) error {
	if c.N < 0 {
		return fmt.Errorf("message length must not be negative, got %d", c.N)
	}
	_, err := fmt.Fprintln(s.out, cobs.MaxEncodedLen(c.N))
	return err
}
