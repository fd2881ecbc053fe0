package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppopth/commkit/field"
)

// Channel names accepted in Config.Channel
const (
	ChannelAWGN = "awgn"
	ChannelBSC  = "bsc"
	ChannelBEC  = "bec"
)

// Modulus is a field modulus read from YAML. Only integer scalars are
// accepted; yaml.v3 would otherwise truncate a float such as 2.5 to 2.
type Modulus int64

// UnmarshalYAML rejects any node not tagged !!int
func (m *Modulus) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("prime must be an integer, got %q: %w", node.Value, field.ErrInvalidArgument)
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = Modulus(v)
	return nil
}

// Config describes one commsim run
type Config struct {
	// Prime modulus of the demonstrated field
	Prime Modulus `yaml:"prime"`
	// Message sent over the link
	Message string `yaml:"message"`
	// Channel model: awgn, bsc or bec
	Channel string `yaml:"channel"`
	// SNR in dB for the awgn channel
	SNRDB float64 `yaml:"snr_db"`
	// Flip or erasure probability for the bsc and bec channels
	P float64 `yaml:"p"`
	// OOK carrier amplitude
	Amplitude float64 `yaml:"amplitude"`
	// OOK decision threshold
	Threshold float64 `yaml:"threshold"`
	// Seed for the channel's random source
	Seed uint64 `yaml:"seed"`
	// Log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file or flag overrides a value
func DefaultConfig() *Config {
	return &Config{
		Prime:     7,
		Message:   "hello, GF(7)",
		Channel:   ChannelAWGN,
		SNRDB:     10,
		P:         0.05,
		Amplitude: 1,
		Threshold: 0.5,
		Seed:      1,
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the library itself leaves unchecked
func (c *Config) Validate() error {
	switch c.Channel {
	case ChannelAWGN, ChannelBSC, ChannelBEC:
	default:
		return fmt.Errorf("unknown channel %q", c.Channel)
	}
	if c.Message == "" {
		return fmt.Errorf("message must not be empty")
	}
	return nil
}
