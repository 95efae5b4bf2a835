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

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/focustune/pkg/config"
	"github.com/walteh/focustune/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// ConfigFile is the --config flag
	ConfigFile string
	// Debug is the --debug flag
	Debug bool
	// ConfigExplicit is true when --config was given on the command line
	ConfigExplicit bool

	// Set up by the root command before any subcommand runs
	Logger  *log.Logger
	Console io.Writer
}

// LoadConfig reads the config file. The default file is optional, one named
// with --config is not.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigExplicit {
		cfg, err = config.Load(ctx, o.ConfigFile)
	} else {
		cfg, err = config.LoadOptional(ctx, o.ConfigFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return cfg, nil
}
