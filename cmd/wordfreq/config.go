package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Order values accepted by Config.Order.
const (
	OrderRank    = "rank"    // most frequent first
	OrderAlpha   = "alpha"   // ascending words
	OrderReverse = "reverse" // descending words
)

type Config struct {
	Top       int    `yaml:"top"`
	Lowercase bool   `yaml:"lowercase"`
	Balanced  bool   `yaml:"balanced"`
	Order     string `yaml:"order"`
}

var defaultConfig = Config{
	Top:       10,
	Lowercase: true,
	Balanced:  true,
	Order:     OrderRank,
}

// LoadConfig reads the YAML file at path over the defaults. An empty path or
// a missing file gives the defaults.
func LoadConfig(path string) (Config, error) {
	config := defaultConfig
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, config.validate()
}

func (c Config) validate() error {
	switch c.Order {
	case OrderRank, OrderAlpha, OrderReverse:
		return nil
	}
	return fmt.Errorf("unknown order %q, want one of %s, %s, %s", c.Order, OrderRank, OrderAlpha, OrderReverse)
}
