package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the glltail settings. Everything is optional in the YAML
// file; CLI flags override whatever is loaded.
type Config struct {
	// Watch is the capture file polled for GLL sentences.
	Watch string `yaml:"watch"`

	// IntervalS is the poll interval in whole seconds.
	IntervalS int `yaml:"interval_s"`

	// Record is the append-only file receiving converted fixes.
	Record string `yaml:"record"`

	// UTCOffsetHours shifts the displayed fix time (GLL time is UTC).
	UTCOffsetHours int `yaml:"utc_offset_hours"`

	// Color forces colors on or off; unset means auto-detect.
	Color *bool `yaml:"color"`

	// ShowRaw adds the raw matched sentence to the status block.
	ShowRaw bool `yaml:"show_raw"`
}

// Default returns the settings used when no config file is given.
// The receiver tooling historically asked for a 1.01s interval; only whole
// seconds survive parsing, so the effective default is 1.
func Default() Config {
	return Config{
		Watch:     "putty.log",
		IntervalS: 1,
		Record:    "debug.log",
	}
}

// Load reads a YAML config file and fills in defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Watch == "" {
		cfg.Watch = "putty.log"
	}
	if cfg.Record == "" {
		cfg.Record = "debug.log"
	}
	if cfg.IntervalS < 0 {
		return Config{}, fmt.Errorf("interval_s must not be negative")
	}
	if cfg.UTCOffsetHours < -12 || cfg.UTCOffsetHours > 14 {
		return Config{}, fmt.Errorf("utc_offset_hours out of range")
	}
	return cfg, nil
}

// Interval is the poll interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalS) * time.Second
}

// Seconds is a flag.Value for the poll interval. Fractional input is
// accepted but TRUNCATED to whole seconds ("2.99" becomes 2), keeping the
// long-standing behavior of the integer-typed option.
type Seconds int

func (s *Seconds) String() string {
	if s == nil {
		return "0"
	}
	return strconv.Itoa(int(*s))
}

func (s *Seconds) Set(v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid interval %q", v)
	}
	if f < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	*s = Seconds(int(f))
	return nil
}
