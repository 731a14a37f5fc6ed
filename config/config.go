// Package config loads runtime settings for the blockfall commands.
//
// Values are layered: built-in defaults, then an optional .env file, then
// BLOCKFALL_* environment variables, then command-line flags bound with
// BindFlags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

// ErrInvalid is wrapped by every validation and parse error.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BLOCKFALL_"

type Config struct {
	FallInterval     time.Duration
	FastFallInterval time.Duration
	// Seed for piece selection; zero picks a random seed per session.
	Seed      uint64
	BlockSize int
	Debug     bool
	Sound     bool
}

func Default() Config {
	return Config{
		FallInterval:     engine.FallInterval,
		FastFallInterval: engine.FastFallInterval,
		BlockSize:        render.BlockSize,
		Sound:            true,
	}
}

// Load returns the defaults overridden by the .env file at path and the
// process environment. A missing file is not an error.
func Load(path string) (Config, error) {
	file := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := file[EnvPrefix+key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup("FALL_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrap("FALL_INTERVAL", err))
		c.FallInterval = d
	}
	if v, ok := lookup("FAST_FALL_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrap("FAST_FALL_INTERVAL", err))
		c.FastFallInterval = d
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		errs = append(errs, wrap("SEED", err))
		c.Seed = n
	}
	if v, ok := lookup("BLOCK_SIZE"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrap("BLOCK_SIZE", err))
		c.BlockSize = n
	}
	if v, ok := lookup("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrap("DEBUG", err))
		c.Debug = b
	}
	if v, ok := lookup("SOUND"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrap("SOUND", err))
		c.Sound = b
	}

	return errors.Join(errs...)
}

func wrap(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s%s: %w", ErrInvalid, EnvPrefix, key, err)
}

// Validate checks the intervals and block size.
func (c Config) Validate() error {
	switch {
	case c.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval %s must be positive", ErrInvalid, c.FallInterval)
	case c.FastFallInterval <= 0:
		return fmt.Errorf("%w: fast fall interval %s must be positive", ErrInvalid, c.FastFallInterval)
	case c.FastFallInterval > c.FallInterval:
		return fmt.Errorf("%w: fast fall interval %s is slower than fall interval %s", ErrInvalid, c.FastFallInterval, c.FallInterval)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d must be positive", ErrInvalid, c.BlockSize)
	}
	return nil
}

// BindFlags registers flags on fs that default to the current values.
// Call Validate after parsing.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.FallInterval, "fall", c.FallInterval, "interval between automatic drops")
	fs.DurationVar(&c.FastFallInterval, "fast-fall", c.FastFallInterval, "drop interval while Down is held")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "piece selection seed (0 = random)")
	fs.IntVar(&c.BlockSize, "block", c.BlockSize, "cell size in pixels")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sounds")
}

// SessionOptions converts the config into engine session options.
func (c Config) SessionOptions() []engine.SessionOption {
	return []engine.SessionOption{
		engine.WithSeed(c.Seed),
		engine.WithIntervals(c.FallInterval, c.FastFallInterval),
	}
}
