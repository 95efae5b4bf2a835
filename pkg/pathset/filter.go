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

package pathset

import (
	"io/fs"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 🚫 SkipReason explains why a path was dropped by Filter
type SkipReason int

const (
	SkipMissing SkipReason = iota
	SkipDirectory
	SkipSpecial
	SkipUnreadable
)

func (r SkipReason) String() string {
	switch r {
	case SkipMissing:
		return "does not exist"
	case SkipDirectory:
		return "is a directory"
	case SkipSpecial:
		return "is not a regular file"
	default:
		return "cannot be accessed"
	}
}

// Skipped is a path Filter did not keep
type Skipped struct {
	Path   string
	Reason SkipReason
}

// Filter keeps paths that are existing regular files, in order
func Filter(paths []string) (files []string, skipped []Skipped) {
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			skipped = append(skipped, Skipped{Path: p, Reason: SkipMissing})
		case err != nil:
			skipped = append(skipped, Skipped{Path: p, Reason: SkipUnreadable})
		case info.IsDir():
			skipped = append(skipped, Skipped{Path: p, Reason: SkipDirectory})
		case !info.Mode().IsRegular():
			skipped = append(skipped, Skipped{Path: p, Reason: SkipSpecial})
		default:
			files = append(files, p)
		}
	}
	return files, skipped
}
