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

/*
Package rule rewrites numeric fields in national focus definition files.

	+-------------+      +-------------+
	|  Cost Rule  | ---> |  Slot Rule  |
	| cost > 2→2  |      | slot 1 → 2  |
	+-------------+      +-------------+

Every rule works the same way:

 1. scan: a case-insensitive pattern finds `key = digits` spans
 2. decide: a pure function looks at the digit run only
 3. replace: the digit run is swapped, every other byte is copied as is

Both rules are idempotent. Applying the default engine twice gives the same
text as applying it once.

Neither rule anchors on a word boundary before the key, so `research_cost = 5`
is rewritten too. This mirrors the behavior of the tool these files were
originally edited with.

🔍 Example:

	out := rule.Apply("cost = 14\nadd_research_slot = 1\n")
	// out == "cost = 2\nadd_research_slot = 2\n"
*/
package rule
