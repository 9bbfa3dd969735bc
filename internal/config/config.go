// Package config resolves prodcat settings from command-line flags and
// PRODCAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/prodcat/output"
)

// EnvPrefix is prepended to setting names to form environment variables,
// e.g. PRODCAT_FORMAT
const EnvPrefix = "PRODCAT"

// ErrInvalidConfig is returned when settings fail validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of one prodcat run
type Config struct {
	File      string
	Filter    string
	Aggregate string
	Format    string
	Limit     int
	Schema    bool
	Strict    bool
	Verbose   bool
}

// RegisterFlags defines the prodcat flags on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("file", "", "Path to the CSV or Parquet file with products")
	fs.String("filter", "", "Filter condition, e.g. \"price>1000\" or \"brand=apple\"")
	fs.String("aggregate", "", "Aggregate expression, e.g. \"price=avg\" (min, max, avg)")
	fs.StringP("format", "f", "grid", "Output format: "+strings.Join(output.Formats, ", "))
	fs.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	fs.Bool("schema", false, "Show the product fields instead of data")
	fs.Bool("strict", false, "Exit with status 1 on filter and aggregate errors")
	fs.BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// Load reads settings from fs, falling back to environment variables for
// flags that were not set on the command line
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		File:      v.GetString("file"),
		Filter:    v.GetString("filter"),
		Aggregate: v.GetString("aggregate"),
		Format:    v.GetString("format"),
		Limit:     v.GetInt("limit"),
		Schema:    v.GetBool("schema"),
		Strict:    v.GetBool("strict"),
		Verbose:   v.GetBool("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks flag values and combinations
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("%w: --limit must be non-negative, got %d", ErrInvalidConfig, c.Limit)
	}
	if !slices.Contains(output.Formats, c.Format) {
		return fmt.Errorf("%w: unsupported format %q (supported: %s)",
			ErrInvalidConfig, c.Format, strings.Join(output.Formats, ", "))
	}
	if c.Schema {
		if c.Filter != "" || c.Aggregate != "" {
			return fmt.Errorf("%w: --schema cannot be combined with --filter or --aggregate", ErrInvalidConfig)
		}
		return nil
	}
	if c.File == "" {
		return fmt.Errorf("%w: --file is required", ErrInvalidConfig)
	}
	return nil
}
