package client

import (
	"time"

	"github.com/danmuck/sepdata/internal/protocol/fields"
	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/protocol/variant"
)

// BackoffConfig controls how long Poll sleeps after consecutive empty reads.
type BackoffConfig struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	Jitter       bool
}

// Config holds client tunables.
type Config struct {
	ConnectTimeout time.Duration
	// MaxDepth bounds Vector/Struct nesting in decoded values.
	MaxDepth int
	// BufferSize is the initial stream buffer capacity.
	BufferSize int
}

func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 5 * time.Second,
		MaxDepth:       variant.DefaultMaxDepth,
		BufferSize:     4096,
	}
}

func DefaultBackoff() BackoffConfig {
	return BackoffConfig{
		InitialDelay: time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     50 * time.Millisecond,
		Jitter:       true,
	}
}

func (c Config) parser() frame.Parser {
	return frame.Parser{Fields: fields.Decoder{Variant: variant.Decoder{MaxDepth: c.MaxDepth}}}
}
