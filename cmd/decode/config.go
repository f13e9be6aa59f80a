// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"firefly-os.dev/x86dec/decoder"
)

// Config contains the settings for a decode,
// as read from a TOML file and then updated
// with any command-line flags.
type Config struct {
	Bitness        int      `toml:"bitness"`
	IP             uint64   `toml:"ip"`
	Format         string   `toml:"format"`
	NoInvalidCheck bool     `toml:"no_invalid_check"`
	Disable        []string `toml:"disable"`
}

// DefaultConfig returns the settings used
// when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Bitness: 64,
		Format:  "text",
	}
}

// LoadConfig reads the TOML config file with
// the given name, on top of the defaults.
func LoadConfig(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %v", name, err)
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %v", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("failed to parse config %s: unknown key %q", name, undecoded[0].String())
	}

	err = cfg.check()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %v", name, err)
	}

	return cfg, nil
}

var formats = map[string]bool{
	"text":  true,
	"json":  true,
	"yaml":  true,
	"debug": true,
}

func (c *Config) check() error {
	switch c.Bitness {
	case 16, 32, 64:
	default:
		return fmt.Errorf("bitness %d: %v", c.Bitness, decoder.ErrBitness)
	}

	if !formats[c.Format] {
		return fmt.Errorf("unknown format %q", c.Format)
	}

	_, err := c.Options()

	return err
}

// Options returns the decoder options the
// config selects.
func (c *Config) Options() (decoder.Options, error) {
	var opts decoder.Options
	if c.NoInvalidCheck {
		opts |= decoder.NoInvalidCheck
	}

	for _, name := range c.Disable {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "vex":
			opts |= decoder.NoVEX
		case "xop":
			opts |= decoder.NoXOP
		case "evex":
			opts |= decoder.NoEVEX
		default:
			return 0, fmt.Errorf("cannot disable %q: want vex, xop, or evex", name)
		}
	}

	return opts, nil
}
