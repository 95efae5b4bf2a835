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

// Package pathset collects the files a batch should rewrite.
//
// Paths come from command line arguments, glob patterns, config includes and
// drag-and-drop payloads. They are merged into a Set that keeps the first
// occurrence of each path, then filtered down to existing regular files.
package pathset

// 📚 Set is an ordered collection of unique paths
type Set struct {
	paths []string
	seen  map[string]struct{}
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{seen: map[string]struct{}{}}
}

// Add appends paths that are not already present and returns how many were new
func (s *Set) Add(paths ...string) int {
	added := 0
	for _, p := range paths {
		if _, ok := s.seen[p]; ok {
			continue
		}
		s.seen[p] = struct{}{}
		s.paths = append(s.paths, p)
		added++
	}
	return added
}

// Paths returns a copy of the paths in insertion order
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len is the number of paths in the set
func (s *Set) Len() int {
	return len(s.paths)
}
