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

package rewrite

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/focustune/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 📄 Outcome is the result of rewriting one file
type Outcome struct {
	Path         string       // File that was processed
	Modified     bool         // Whether the content changed on disk
	Replacements int          // Total fields changed
	Counts       []rule.Count // Fields changed per rule
}

// 🔧 Options configures a Processor
type Options struct {
	// Engine applies the rewrite rules, defaults to rule.Default()
	Engine *rule.Engine
	// Atomic writes to a temp file and renames it over the original
	Atomic bool
}

// 🏭 Processor rewrites files in place
type Processor struct {
	engine *rule.Engine
	atomic bool
}

// New creates a new Processor
func New(opts Options) *Processor {
	engine := opts.Engine
	if engine == nil {
		engine = rule.Default()
	}
	return &Processor{
		engine: engine,
		atomic: opts.Atomic,
	}
}

// 🏃 Process reads path, applies the rules and writes the result back if it
// changed. Every failure is a *FileError. Content is only written once the
// new text has been fully prepared.
func (p *Processor) Process(ctx context.Context, path string) (*Outcome, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newFileError(path, ErrNotFound, nil)
		}
		return nil, newFileError(path, ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return nil, newFileError(path, ErrNotAFile, nil)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newFileError(path, ErrNotFound, nil)
		}
		return nil, newFileError(path, ErrIO, errors.Errorf("opening file: %w", err))
	}

	outcome, err := p.rewrite(ctx, f, path, info.Mode().Perm())
	if cerr := f.Close(); cerr != nil && err == nil {
		err = newFileError(path, ErrIO, errors.Errorf("closing file: %w", cerr))
	}
	if err != nil {
		logger.Debug().Err(err).Msg("rewrite failed")
		return nil, err
	}

	logger.Debug().
		Bool("modified", outcome.Modified).
		Int("replacements", outcome.Replacements).
		Msg("file processed")

	return outcome, nil
}

func (p *Processor) rewrite(ctx context.Context, f *os.File, path string, perm fs.FileMode) (*Outcome, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, newFileError(path, ErrIO, errors.Errorf("reading file: %w", err))
	}
	if !utf8.Valid(data) {
		return nil, newFileError(path, ErrDecode, nil)
	}

	result := p.engine.Apply(string(data))
	outcome := &Outcome{
		Path:         path,
		Modified:     result.WasModified(),
		Replacements: result.Replacements(),
		Counts:       result.Counts,
	}

	if !outcome.Modified {
		return outcome, nil
	}

	if p.atomic {
		err = writeAtomic(ctx, path, []byte(result.Modified), perm)
	} else {
		err = writeInPlace(f, result.Modified)
	}
	if err != nil {
		return nil, newFileError(path, ErrIO, err)
	}

	return outcome, nil
}

// writeInPlace overwrites f from the start and truncates any leftover bytes.
// A crash halfway through can leave a partially written file.
func writeInPlace(f *os.File, content string) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return errors.Errorf("seeking to start: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	if err := f.Truncate(int64(len(content))); err != nil {
		return errors.Errorf("truncating file: %w", err)
	}
	return nil
}

// writeAtomic writes content to a fresh temp file next to path and renames
// it into place. Existing files beside path are never touched.
func writeAtomic(ctx context.Context, path string, content []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tempPath)
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		return fail(errors.Errorf("setting temp file mode: %w", err))
	}
	if _, err := tmp.Write(content); err != nil {
		return fail(errors.Errorf("writing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Str("temp", tempPath).Msg("replaced file atomically")
	return nil
}
