// Package config loads the YAML configuration of an lwwgraph node.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lwwgraph/clock"
)

// ErrInvalid wraps every validation failure reported by Config.Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full node configuration.
type Config struct {
	Replica Replica `yaml:"replica"`
	Server  Server  `yaml:"server"`
	Sync    Sync    `yaml:"sync"`
	Log     Log     `yaml:"log"`
}

// Replica configures the local graph replica.
type Replica struct {
	// ID names the replica in metrics, logs and snapshots. Empty means a random UUID.
	ID       string `yaml:"id"`
	Directed bool   `yaml:"directed"`
	// Clock is "wall" (Unix milliseconds) or "logical".
	Clock string `yaml:"clock"`
}

// Server configures the HTTP listener.
type Server struct {
	Listen       string        `yaml:"listen"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Sync configures anti-entropy with peers.
type Sync struct {
	// Peers are base URLs of other nodes, e.g. http://10.0.0.2:7070.
	Peers    []string      `yaml:"peers"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a working single-node configuration.
func Default() Config {
	return Config{
		Replica: Replica{Clock: clock.KindWall},
		Server: Server{
			Listen:       ":7070",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Sync: Sync{
			Interval: 5 * time.Second,
			Timeout:  3 * time.Second,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default() with strict decoding and validates the
// result. An empty path returns the defaults. A missing replica id is filled
// with a random UUID.
func Load(path string) (Config, error) {
	if path == "" {
		return finish(Default())
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads a YAML document from r over Default(). Unknown fields are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: yaml: %w", err)
	}

	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.Replica.ID) == "" {
		cfg.Replica.ID = uuid.NewString()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem at once, each wrapped with ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(c.Replica.ID) == "" {
		bad("replica.id is empty")
	}
	if _, err := clock.Parse(c.Replica.Clock); err != nil {
		bad("replica.clock %q: %v", c.Replica.Clock, err)
	}
	if c.Server.Listen == "" {
		bad("server.listen is empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		bad("server timeouts must not be negative")
	}
	if len(c.Sync.Peers) > 0 && c.Sync.Interval <= 0 {
		bad("sync.interval must be positive when peers are set")
	}
	if c.Sync.Timeout < 0 {
		bad("sync.timeout must not be negative")
	}
	for i, p := range c.Sync.Peers {
		if !strings.HasPrefix(p, "http://") && !strings.HasPrefix(p, "https://") {
			bad("sync.peers[%d] %q: want an http(s) URL", i, p)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		bad("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		bad("log.format %q: want text or json", c.Log.Format)
	}

	return errors.Join(errs...)
}
