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

package rule

import (
	"regexp"
	"strings"
)

// 📏 Rule rewrites one kind of numeric field
type Rule interface {
	// Name identifies the rule in logs and summaries
	Name() string
	// Description says what the rule does, for help output
	Description() string
	// Apply returns the rewritten text and how many fields were changed
	Apply(text string) (string, int)
}

// 🔧 fieldRule matches `key = digits` and lets decide pick the new digits
type fieldRule struct {
	name        string
	description string
	re          *regexp.Regexp
	decide      func(digits string) (string, bool)
}

// newFieldRule builds the pattern for key. The digit run is capture group 1.
func newFieldRule(name, key, description string, decide func(digits string) (string, bool)) *fieldRule {
	return &fieldRule{
		name:        name,
		description: description,
		re:          regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `\s*=\s*([0-9]+)`),
		decide:      decide,
	}
}

func (r *fieldRule) Name() string {
	return r.name
}

func (r *fieldRule) Description() string {
	return r.description
}

func (r *fieldRule) Apply(text string) (string, int) {
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var b strings.Builder
	last, count := 0, 0
	for _, m := range matches {
		start, end := m[2], m[3]
		repl, ok := r.decide(text[start:end])
		if !ok {
			continue
		}
		if count == 0 {
			b.Grow(len(text))
		}
		b.WriteString(text[last:start])
		b.WriteString(repl)
		last = end
		count++
	}

	if count == 0 {
		return text, 0
	}

	b.WriteString(text[last:])
	return b.String(), count
}
