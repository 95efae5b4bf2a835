// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is looked up in the working directory when no config is given
const DefaultFile = ".focustune.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Root        string   `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	Include     []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	AtomicWrite bool     `json:"atomic_write,omitempty" yaml:"atomic_write,omitempty" hcl:"atomic_write,optional"`

	location string
}

// Location is the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional is Load, except a missing file yields an empty config
func LoadOptional(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		cfg := &Config{}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks the patterns and resolves the root directory
func (cfg *Config) Validate() error {
	for i, pattern := range cfg.Include {
		if pattern == "" {
			return errors.Errorf("include %d: pattern is empty", i)
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("include %d: invalid pattern %q", i, pattern)
		}
	}
	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude %d: invalid pattern %q", i, pattern)
		}
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) && cfg.location != "" {
		root = filepath.Join(filepath.Dir(cfg.location), root)
	}
	cfg.Root = filepath.Clean(root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "in-place"
	if cfg.AtomicWrite {
		mode = "atomic"
	}
	return fmt.Sprintf("%s include=[%s] exclude=[%s] write=%s", cfg.Root, strings.Join(cfg.Include, ","), strings.Join(cfg.Exclude, ","), mode)
}
