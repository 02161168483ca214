package lexis

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/lexis/cache"
	"github.com/hupe1980/lexis/lexical/fulltext"
)

var configValidate = validator.New()

// Config is the file-level configuration of a Library.
//
// Example:
//
//	cache:
//	  max_size: 500
//	  ttl: 10m
//	  cleanup_interval: 1m
//	search:
//	  default_limit: 20
//	  extra_stop_words: [artigo, inciso]
//	snapshot:
//	  io_limit: 52428800
//	log:
//	  level: debug
//	  format: json
type Config struct {
	Cache    CacheConfig    `yaml:"cache"`
	Search   SearchConfig   `yaml:"search"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
}

// CacheConfig configures the search result cache.
type CacheConfig struct {
	MaxSize         int           `yaml:"max_size" validate:"gte=0"`
	TTL             time.Duration `yaml:"ttl" validate:"gte=0s"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gte=0s"`
	Disabled        bool          `yaml:"disabled"`
}

// SearchConfig configures tokenization and result limits.
type SearchConfig struct {
	DefaultLimit   int      `yaml:"default_limit" validate:"gte=0,lte=10000"`
	MinTokenLength int      `yaml:"min_token_length" validate:"gte=0,lte=64"`
	StopWords      []string `yaml:"stop_words" validate:"dive,required"`
	ExtraStopWords []string `yaml:"extra_stop_words" validate:"dive,required"`
}

// SnapshotConfig configures snapshot IO.
type SnapshotConfig struct {
	// IOLimit caps Snapshot and Restore throughput in bytes per second.
	// Zero means unlimited.
	IOLimit int64 `yaml:"io_limit" validate:"gte=0"`
}

// LogConfig configures the Logger built by WithConfig.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// DefaultConfig returns the configuration equivalent to New without options.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			MaxSize: cache.DefaultMaxSize,
			TTL:     cache.DefaultTTL,
		},
		Search: SearchConfig{
			DefaultLimit: fulltext.DefaultLimit,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// Logger builds the stderr Logger described by c.
func (c LogConfig) Logger() (*Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	return NewStreamLogger(os.Stderr, c.Format, level)
}
