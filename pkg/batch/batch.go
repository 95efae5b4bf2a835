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

// Package batch runs a list of files through the rewriter one at a time
package batch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/focustune/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🔌 FileProcessor rewrites a single file
type FileProcessor interface {
	Process(ctx context.Context, path string) (*rewrite.Outcome, error)
}

// 📢 Reporter is told about every file as soon as it is done
type Reporter interface {
	// Progress is called after a file was processed successfully. index is 1-based.
	Progress(ctx context.Context, index, total int, outcome *rewrite.Outcome)
	// Failure is called when a file could not be processed. The batch keeps going.
	Failure(ctx context.Context, index, total int, path string, err error)
}

// ❌ Failure records a file that could not be processed
type Failure struct {
	Index int
	Path  string
	Err   error
}

// 📊 Summary is the result of a batch
type Summary struct {
	Attempted int
	Succeeded int
	Modified  int
	Failures  []Failure
}

// Failed is the number of files that could not be processed
func (s *Summary) Failed() int {
	return s.Attempted - s.Succeeded
}

// OK reports whether every file succeeded
func (s *Summary) OK() bool {
	return s.Succeeded == s.Attempted
}

// 🔧 Options configures a Controller
type Options struct {
	// Processor rewrites each file
	Processor FileProcessor
	// Reporter receives per-file progress, may be nil
	Reporter Reporter
}

// 🏃 Controller processes files sequentially
type Controller struct {
	processor FileProcessor
	reporter  Reporter
}

// 🏭 New creates a new controller with the given options
func New(opts Options) (*Controller, error) {
	if opts.Processor == nil {
		return nil, errors.Errorf("processor is required")
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Controller{
		processor: opts.Processor,
		reporter:  reporter,
	}, nil
}

// Run processes paths in order. A failing file is reported and skipped; the
// batch always runs to the end. paths is not modified and is not
// de-duplicated.
func (c *Controller) Run(ctx context.Context, paths []string) *Summary {
	logger := zerolog.Ctx(ctx)

	snapshot := make([]string, len(paths))
	copy(snapshot, paths)

	total := len(snapshot)
	summary := &Summary{}

	logger.Debug().Int("total", total).Msg("starting batch")

	for i, path := range snapshot {
		index := i + 1
		summary.Attempted++

		outcome, err := c.processor.Process(ctx, path)
		if err != nil {
			summary.Failures = append(summary.Failures, Failure{Index: index, Path: path, Err: err})
			c.reporter.Failure(ctx, index, total, path, err)
			continue
		}

		summary.Succeeded++
		if outcome != nil && outcome.Modified {
			summary.Modified++
		}
		c.reporter.Progress(ctx, index, total, outcome)
	}

	logger.Debug().
		Int("attempted", summary.Attempted).
		Int("succeeded", summary.Succeeded).
		Int("modified", summary.Modified).
		Msg("batch complete")

	return summary
}

type nopReporter struct{}

func (nopReporter) Progress(context.Context, int, int, *rewrite.Outcome) {}

func (nopReporter) Failure(context.Context, int, int, string, error) {}
