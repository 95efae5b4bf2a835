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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/focustune/pkg/pathset"
	"github.com/walteh/focustune/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

func newTestLogger(buf io.Writer) *Logger {
	return New(buf, zerolog.Nop())
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "progress_rewritten",
			op: func(t *testing.T, logger *Logger) {
				logger.Progress(context.Background(), 1, 3, &rewrite.Outcome{
					Path:         "focus.txt",
					Modified:     true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"⟳ (1/3)     focus.txt                           rewritten    2 fields",
			},
		},
		{
			name: "progress_unchanged",
			op: func(t *testing.T, logger *Logger) {
				logger.Progress(context.Background(), 2, 3, &rewrite.Outcome{Path: "other.txt"})
			},
			wantLogs: []string{
				"• (2/3)     other.txt                           unchanged",
			},
		},
		{
			name: "failure_with_kind",
			op: func(t *testing.T, logger *Logger) {
				logger.Failure(context.Background(), 3, 3, "missing.txt", &rewrite.FileError{
					Path: "missing.txt",
					Kind: rewrite.ErrNotFound,
				})
			},
			wantLogs: []string{
				"✗ (3/3)     missing.txt                         failed       file not found",
			},
		},
		{
			name: "failure_with_cause",
			op: func(t *testing.T, logger *Logger) {
				logger.Failure(context.Background(), 1, 1, "locked.txt", &rewrite.FileError{
					Path: "locked.txt",
					Kind: rewrite.ErrIO,
					Err:  errors.New("permission denied"),
				})
			},
			wantLogs: []string{
				"✗ (1/1)     locked.txt                          failed       i/o failure: permission denied",
			},
		},
		{
			name: "skipped",
			op: func(t *testing.T, logger *Logger) {
				logger.LogSkipped(context.Background(), []pathset.Skipped{
					{Path: "national_focus", Reason: pathset.SkipDirectory},
				})
			},
			wantLogs: []string{
				"-           national_focus                      skipped      is a directory",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"ℹ️  info test",
				"⚠️  warning test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rewriting 3 files")
			},
			wantLogs: []string{
				"focustune • rewriting 3 files",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := newTestLogger(buf)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := newTestLogger(io.Discard)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestLoggerWritesStructuredEvents(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	events := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(events))

	logger.Progress(context.Background(), 1, 1, &rewrite.Outcome{Path: "focus.txt", Modified: true, Replacements: 3})

	assert.Contains(t, events.String(), `"file":"focus.txt"`)
	assert.Contains(t, events.String(), `"replacements":3`)
	assert.Contains(t, events.String(), `"is_modified":true`)
}
