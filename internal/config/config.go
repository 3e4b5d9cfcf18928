package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/sepdata/internal/client"
	"github.com/danmuck/sepdata/internal/logging"
)

const (
	TransportTCP = "tcp"
	TransportUDP = "udp"

	DefaultTCPPort uint16 = 5002
	DefaultUDPPort uint16 = 5001
)

// Config is the resolved client setup for sepdctl.
type Config struct {
	Transport      string
	Host           string
	Port           uint16
	ConnectTimeout time.Duration
	MaxDepth       int
	BufferSize     int
	Backoff        client.BackoffConfig
	LogLevel       string
	// MetricsAddr enables the metrics listener when non-empty.
	MetricsAddr string
}

type fileConfig struct {
	Transport      string      `toml:"transport"`
	Host           string      `toml:"host"`
	Port           int         `toml:"port"`
	ConnectTimeout string      `toml:"connect_timeout"`
	MaxDepth       int         `toml:"max_depth"`
	BufferSize     int         `toml:"buffer_size"`
	LogLevel       string      `toml:"log_level"`
	MetricsAddr    string      `toml:"metrics_addr"`
	Backoff        fileBackoff `toml:"backoff"`
}

type fileBackoff struct {
	Initial    string  `toml:"initial"`
	Max        string  `toml:"max"`
	Multiplier float64 `toml:"multiplier"`
	Jitter     bool    `toml:"jitter"`
}

func Default() Config {
	cc := client.DefaultConfig()
	return Config{
		Transport:      TransportTCP,
		Host:           "localhost",
		Port:           DefaultTCPPort,
		ConnectTimeout: cc.ConnectTimeout,
		MaxDepth:       cc.MaxDepth,
		BufferSize:     cc.BufferSize,
		Backoff:        client.DefaultBackoff(),
		LogLevel:       "info",
	}
}

// DefaultPort returns the conventional port for transport.
func DefaultPort(transport string) uint16 {
	if transport == TransportUDP {
		return DefaultUDPPort
	}
	return DefaultTCPPort
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load sepd config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load sepd config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("transport") {
		cfg.Transport = strings.ToLower(strings.TrimSpace(raw.Transport))
		cfg.Port = DefaultPort(cfg.Transport)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}

	if meta.IsDefined("port") {
		if raw.Port < 0 || raw.Port > 65535 {
			return Config{}, fmt.Errorf("parse port: %d out of range", raw.Port)
		}
		cfg.Port = uint16(raw.Port)
	}

	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}

	if meta.IsDefined("buffer_size") {
		cfg.BufferSize = raw.BufferSize
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}

	if meta.IsDefined("backoff", "initial") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Backoff.Initial))
		if err != nil {
			return Config{}, fmt.Errorf("parse backoff.initial: %w", err)
		}
		cfg.Backoff.InitialDelay = d
	}

	if meta.IsDefined("backoff", "max") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Backoff.Max))
		if err != nil {
			return Config{}, fmt.Errorf("parse backoff.max: %w", err)
		}
		cfg.Backoff.MaxDelay = d
	}

	if meta.IsDefined("backoff", "multiplier") {
		cfg.Backoff.Multiplier = raw.Backoff.Multiplier
	}

	if meta.IsDefined("backoff", "jitter") {
		cfg.Backoff.Jitter = raw.Backoff.Jitter
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Transport {
	case TransportTCP:
		if c.Host == "" {
			return fmt.Errorf("sepd config: host required for tcp")
		}
	case TransportUDP:
	default:
		return fmt.Errorf("sepd config: unknown transport %q", c.Transport)
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("sepd config: connect_timeout must not be negative")
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("sepd config: max_depth must be positive")
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("sepd config: buffer_size must be positive")
	}
	if c.Backoff.InitialDelay <= 0 {
		return fmt.Errorf("sepd config: backoff.initial must be positive")
	}
	if c.Backoff.MaxDelay < c.Backoff.InitialDelay {
		return fmt.Errorf("sepd config: backoff.max below backoff.initial")
	}
	if c.Backoff.Multiplier < 1 {
		return fmt.Errorf("sepd config: backoff.multiplier must be at least 1")
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("sepd config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Client returns the client tunables.
func (c Config) Client() client.Config {
	return client.Config{
		ConnectTimeout: c.ConnectTimeout,
		MaxDepth:       c.MaxDepth,
		BufferSize:     c.BufferSize,
	}
}
