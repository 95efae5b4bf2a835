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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🚨 Failure kinds reported by Process
var (
	ErrNotFound = errors.Base("file not found")
	ErrNotAFile = errors.Base("not a regular file")
	ErrIO       = errors.Base("i/o failure")
	ErrDecode   = errors.Base("not valid utf-8 text")
)

// ❌ FileError describes why a single file could not be rewritten
type FileError struct {
	Path string // File that failed
	Kind error  // One of the Err* kinds above
	Err  error  // Underlying cause, may be nil
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches the failure kind so errors.Is(err, ErrNotFound) works
func (e *FileError) Is(target error) bool {
	return e.Kind == target
}

func newFileError(path string, kind error, err error) *FileError {
	return &FileError{Path: path, Kind: kind, Err: err}
}
