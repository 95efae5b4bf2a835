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

// 📊 Count is the number of fields one rule changed
type Count struct {
	Rule     string
	Replaced int
}

// 📦 Result is the outcome of running an Engine over a text
type Result struct {
	Original string
	Modified string
	Counts   []Count
}

// WasModified reports whether any rule changed the text
func (r *Result) WasModified() bool {
	return r.Original != r.Modified
}

// Replacements is the total number of fields changed across all rules
func (r *Result) Replacements() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Replaced
	}
	return total
}

// 🎯 Engine applies rules in order, each one on the output of the previous
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine for the given rules
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Default returns the cost rule followed by the slot rule
func Default() *Engine {
	return NewEngine(Cost(), Slot())
}

// Rules returns the rules in application order
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Apply runs every rule over text
func (e *Engine) Apply(text string) *Result {
	result := &Result{
		Original: text,
		Counts:   make([]Count, 0, len(e.rules)),
	}

	current := text
	for _, r := range e.rules {
		var n int
		current, n = r.Apply(current)
		result.Counts = append(result.Counts, Count{Rule: r.Name(), Replaced: n})
	}

	result.Modified = current
	return result
}

var defaultEngine = Default()

// Apply runs the default engine over text and returns the rewritten text
func Apply(text string) string {
	return defaultEngine.Apply(text).Modified
}
