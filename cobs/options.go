package cobs

const (
	// Default maximum decoded frame length (1MB)
	defaultMaxLength = 1024 * 1024
)

// config holds reader configuration.
type config struct {
	maxLength int
}

// Option configures a Reader.
type Option func(*config)

// MaxLength sets the maximum decoded length of a frame, in bytes.  Longer
// frames are skipped and reported as ErrFrameTooLarge.  Zero means no limit.
//
// Default: 1MB (1048576 bytes)
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}
