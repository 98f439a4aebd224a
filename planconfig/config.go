package planconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxStates bounds state-space forward closure when neither a
	// config file nor a flag overrides it.
	DefaultMaxStates = 1_000_000

	// DefaultDeadline bounds lifted-generator k-clique enumeration and the
	// overall search loop.
	DefaultDeadline = 30 * time.Second

	DefaultGenerator = "automatic"
	DefaultAlgorithm = "bfs"
)

var validGenerators = map[string]bool{"lifted": true, "grounded": true, "automatic": true}
var validAlgorithms = map[string]bool{"bfs": true, "astar": true, "dijkstras": true, "statespace": true}

// Config is the resolved set of search tuning knobs, after a YAML file (if
// any) and CLI flags have both been applied.
type Config struct {
	MaxStates int           `yaml:"max_states"`
	Deadline  time.Duration `yaml:"deadline"`
	Generator string        `yaml:"generator"`
	Algorithm string        `yaml:"algorithm"`
}

// Default returns a Config populated with DefaultMaxStates/DefaultDeadline/
// DefaultGenerator/DefaultAlgorithm.
func Default() Config {
	return Config{
		MaxStates: DefaultMaxStates,
		Deadline:  DefaultDeadline,
		Generator: DefaultGenerator,
		Algorithm: DefaultAlgorithm,
	}
}

// Option overlays one field of a Config. Overlay order is file-then-flags:
// LoadFile (or Default) produces the base value, then cmd/strips applies one
// Option per flag the user actually set, last writer wins.
type Option func(*Config)

// WithMaxStates overrides MaxStates.
func WithMaxStates(n int) Option {
	return func(c *Config) { c.MaxStates = n }
}

// WithDeadline overrides Deadline.
func WithDeadline(d time.Duration) Option {
	return func(c *Config) { c.Deadline = d }
}

// WithGenerator overrides Generator.
func WithGenerator(g string) Option {
	return func(c *Config) { c.Generator = g }
}

// WithAlgorithm overrides Algorithm.
func WithAlgorithm(a string) Option {
	return func(c *Config) { c.Algorithm = a }
}

// Apply returns a copy of c with every opt applied in order.
func (c Config) Apply(opts ...Option) Config {
	out := c
	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// ValidGenerator reports whether g is one of "lifted", "grounded", or
// "automatic" — the same set Config.Generator/Validate accepts.
func ValidGenerator(g string) bool { return validGenerators[g] }

// ValidAlgorithm reports whether a is one of "bfs", "astar", "dijkstras", or
// "statespace" — the same set Config.Algorithm/Validate accepts.
func ValidAlgorithm(a string) bool { return validAlgorithms[a] }

// Validate reports ErrInvalidGenerator/ErrInvalidAlgorithm if c's enum fields
// hold anything outside their accepted value sets.
func (c Config) Validate() error {
	if !validGenerators[c.Generator] {
		return fmt.Errorf("%w: %q", ErrInvalidGenerator, c.Generator)
	}
	if !validAlgorithms[c.Algorithm] {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, c.Algorithm)
	}
	return nil
}

// LoadFile reads a YAML config from path, starting from Default() so any
// field the file omits keeps its default value.
func LoadFile(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("planconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("planconfig: %w", err)
	}
	return c, nil
}
