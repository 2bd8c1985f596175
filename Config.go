package chainhash

import (
	"math/bits"

	"github.com/go-kit/log"
)

const (
	// InitialCapacity is the bucket count of a new or cleared table.
	InitialCapacity uint = 16
	// LoadFactor is the occupied/capacity ratio above which a table doubles.
	LoadFactor = 0.75
	// DefaultMaxCapacity caps growth unless WithMaxCapacity says otherwise. Doubling it can't overflow uint.
	DefaultMaxCapacity uint = 1 << (bits.UintSize - 2)
)

// Mixing selects how a hash is reduced to a bucket index. The two schemes place keys differently, so a table holds its scheme for life.
type Mixing byte

const (
	// SingleReduction uses abs(hash) % capacity.
	SingleReduction Mixing = iota
	// DoubleMixing additionally maps index to (index*31) % capacity.
	DoubleMixing
)

func (m Mixing) String() string {
	switch m {
	case SingleReduction:
		return "single"
	case DoubleMixing:
		return "double"
	}
	return "unknown"
}

// Config is the resolved set of table options.
type Config struct {
	Mixing      Mixing
	MaxCapacity uint
	Logger      log.Logger
	Metrics     *Metrics //nil disables metrics.
}

type Option func(*Config)

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	c := Config{
		Mixing:      SingleReduction,
		MaxCapacity: DefaultMaxCapacity,
		Logger:      log.NewNopLogger(),
	}
	for _, o := range opts {
		o(&c)
	}
	if c.MaxCapacity < InitialCapacity {
		c.MaxCapacity = InitialCapacity
	}
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
	return c
}

func WithMixing(m Mixing) Option {
	return func(c *Config) {
		c.Mixing = m
	}
}

// WithMaxCapacity limits how far a table may grow. A Put whose growth would pass n fails with ErrAllocation. Values below InitialCapacity are raised to it.
func WithMaxCapacity(n uint) Option {
	return func(c *Config) {
		c.MaxCapacity = n
	}
}

// WithLogger receives resize events at debug level and growth failures at warn level.
func WithLogger(l log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}
