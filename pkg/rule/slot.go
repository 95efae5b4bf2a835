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

const (
	// SlotKey is the research slot bonus field
	SlotKey = "add_research_slot"
)

// 🔬 Slot returns the rule that turns `add_research_slot = 1` into `= 2`.
// Values like 10 or 12 are left alone.
func Slot() Rule {
	return newFieldRule("add_research_slot", SlotKey, "add_research_slot = 1 becomes add_research_slot = 2", func(digits string) (string, bool) {
		if !IsSingleSlot(digits) {
			return "", false
		}
		return "2", true
	})
}

// IsSingleSlot reports whether the whole digit run is exactly "1". The run
// is greedy, so a true result means the 1 is followed by a non-digit or the
// end of the text.
func IsSingleSlot(digits string) bool {
	return digits == "1"
}
