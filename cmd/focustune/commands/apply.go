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

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/focustune/cmd/focustune/opts"
	"github.com/walteh/focustune/pkg/batch"
	"github.com/walteh/focustune/pkg/config"
	"github.com/walteh/focustune/pkg/pathset"
	"github.com/walteh/focustune/pkg/rewrite"
	"github.com/walteh/focustune/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrNoFiles is returned when nothing was left to rewrite
var ErrNoFiles = errors.Base("no files selected")

// ApplyArgs are the inputs of a single apply run
type ApplyArgs struct {
	Paths  []string // Paths or glob patterns
	Drop   string   // Drag-and-drop payload
	Atomic bool     // Force temp file + rename
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	args := &ApplyArgs{}

	cmd := &cobra.Command{
		Use:   "apply [paths or globs...]",
		Short: "Rewrite focus files in place",
		Long: `Apply rewrites every selected file in place, one at a time.
Files are selected from:
1. Paths and glob patterns given as arguments (** matches any directories)
2. A drag-and-drop payload given with --drop
3. The include patterns of the config file, when nothing else was given

Directories and missing paths are skipped. A file that fails does not stop
the batch.`,
		Example: `  focustune apply common/national_focus/*.txt
  focustune apply --drop "{C:/mods/my mod/focus.txt} {C:/mods/other.txt}"
  focustune apply --atomic 'common/**/*.txt'`,
		RunE: func(cmd *cobra.Command, positional []string) error {
			args.Paths = positional
			return RunApply(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVar(&args.Drop, "drop", "", "drag-and-drop payload: {a b} {c} or whitespace separated paths")
	cmd.Flags().BoolVar(&args.Atomic, "atomic", false, "write to a temp file and rename instead of overwriting in place")

	return cmd
}

// RunApply selects the files and runs the batch
func RunApply(ctx context.Context, opts *opts.RootOpts, args *ApplyArgs) error {
	logger := zerolog.Ctx(ctx)
	printer := status.NewPrinter(opts.Console, status.NewDefaultFormatter())

	cfg, err := opts.LoadConfig(ctx)
	if err != nil {
		return err
	}

	paths, err := collectPaths(ctx, opts, cfg, args)
	if err != nil {
		return err
	}

	files, skipped := pathset.Filter(paths)
	opts.Logger.LogSkipped(ctx, skipped)

	if len(files) == 0 {
		printer.NoFiles()
		return ErrNoFiles
	}

	atomic := args.Atomic || cfg.AtomicWrite
	logger.Debug().Int("files", len(files)).Bool("atomic", atomic).Msg("starting apply")

	ctrl, err := batch.New(batch.Options{
		Processor: rewrite.New(rewrite.Options{Atomic: atomic}),
		Reporter:  opts.Logger,
	})
	if err != nil {
		return errors.Errorf("creating batch: %w", err)
	}

	opts.Logger.Header(fmt.Sprintf("rewriting %d files", len(files)))
	summary := ctrl.Run(ctx, files)
	opts.Logger.LogNewline()

	if err := printer.Summary(summary); err != nil {
		return err
	}

	if !summary.OK() {
		return errors.Errorf("%d of %d files failed", summary.Failed(), summary.Attempted)
	}
	return nil
}

// collectPaths merges arguments, the drop payload and config includes,
// keeping the first occurrence of each path. An argument naming an existing
// file is taken literally even if it contains glob metacharacters.
func collectPaths(ctx context.Context, opts *opts.RootOpts, cfg *config.Config, args *ApplyArgs) ([]string, error) {
	set := pathset.NewSet()

	for _, arg := range args.Paths {
		if !pathset.HasMeta(arg) {
			set.Add(arg)
			continue
		}
		if _, err := os.Stat(arg); err == nil {
			set.Add(arg)
			continue
		}
		matches, err := pathset.Expand(arg)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			opts.Logger.Warningf("pattern %s matched no files", arg)
		}
		set.Add(matches...)
	}

	if args.Drop != "" {
		dropped := pathset.ParseDrop(args.Drop)
		added := set.Add(dropped...)
		opts.Logger.Infof("added %d dropped files", added)
	}

	if set.Len() == 0 && len(cfg.Include) > 0 {
		matches, err := pathset.Resolve(cfg.Root, cfg.Include, cfg.Exclude)
		if err != nil {
			return nil, errors.Errorf("resolving config includes: %w", err)
		}
		set.Add(matches...)
		zerolog.Ctx(ctx).Debug().Int("files", len(matches)).Str("root", cfg.Root).Msg("resolved config includes")
	}

	return set.Paths(), nil
}
