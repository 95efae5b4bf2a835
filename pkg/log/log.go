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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/focustune/pkg/pathset"
	"github.com/walteh/focustune/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	counterWidth = 9  // Width for the (i/n) counter
	nameWidth    = 35 // Base width for filename
	statusWidth  = 12 // Width for status text
)

// 🎯 FileOperation represents the result of one file for logging
type FileOperation struct {
	Path         string // File path
	Index        int    // 1-based position in the batch, 0 if not part of one
	Total        int    // Batch size
	Status       string // Operation status
	IsModified   bool   // Whether the file was rewritten
	IsFailed     bool   // Whether processing failed
	IsSkipped    bool   // Whether the file was never processed
	Replacements int    // Number of fields changed
	Detail       string // Failure or skip reason
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	counter := ""
	if op.Index > 0 {
		counter = fmt.Sprintf("(%d/%d)", op.Index, op.Total)
	}

	line := fmt.Sprintf("%*s%s %-*s %-*s %s",
		fileIndent, "",
		color.New(symbolColor).Sprint(string(symbol)),
		counterWidth, counter,
		nameWidth, op.Path,
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)),
	)

	if op.Detail != "" {
		line += " " + color.New(color.Faint).Sprint(op.Detail)
	}
	return line
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	ev := l.zlog.Info()
	if op.IsFailed {
		ev = l.zlog.Error()
	}
	ev.Str("file", op.Path).
		Int("index", op.Index).
		Int("total", op.Total).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_failed", op.IsFailed).
		Bool("is_skipped", op.IsSkipped).
		Int("replacements", op.Replacements).
		Str("detail", op.Detail).
		Msg("file operation")
}

// 📝 Progress implements batch.Reporter
func (l *Logger) Progress(ctx context.Context, index, total int, outcome *rewrite.Outcome) {
	op := FileOperation{
		Path:         outcome.Path,
		Index:        index,
		Total:        total,
		Status:       "unchanged",
		IsModified:   outcome.Modified,
		Replacements: outcome.Replacements,
	}
	if outcome.Modified {
		op.Status = "rewritten"
		op.Detail = fmt.Sprintf("%d fields", outcome.Replacements)
	}
	l.LogFileOperation(ctx, op)
}

// 📝 Failure implements batch.Reporter
func (l *Logger) Failure(ctx context.Context, index, total int, path string, err error) {
	detail := err.Error()
	var fe *rewrite.FileError
	if errors.As(err, &fe) {
		// the path is already on the line
		detail = fe.Kind.Error()
		if fe.Err != nil {
			detail += ": " + fe.Err.Error()
		}
	}
	l.LogFileOperation(ctx, FileOperation{
		Path:     path,
		Index:    index,
		Total:    total,
		Status:   "failed",
		IsFailed: true,
		Detail:   detail,
	})
}

// 📝 LogSkipped logs paths that were dropped before the batch started
func (l *Logger) LogSkipped(ctx context.Context, skipped []pathset.Skipped) {
	for _, s := range skipped {
		l.LogFileOperation(ctx, FileOperation{
			Path:      s.Path,
			Status:    "skipped",
			IsSkipped: true,
			Detail:    s.Reason.String(),
		})
	}
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("focustune")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
