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

package rule_test

import (
	"fmt"

	"github.com/walteh/focustune/pkg/rule"
)

func ExampleApply() {
	fmt.Printf("%q\n", rule.Apply("cost = 14\nadd_research_slot = 1\n"))
	fmt.Printf("%q\n", rule.Apply("cost = 1\nadd_research_slot = 10\n"))

	// Output:
	// "cost = 2\nadd_research_slot = 2\n"
	// "cost = 1\nadd_research_slot = 10\n"
}

func ExampleEngine_Apply() {
	result := rule.Default().Apply("COST = 5\nAdd_Research_Slot = 1")

	fmt.Println(result.Modified)
	fmt.Printf("Changes: %d\n", result.Replacements())
	fmt.Printf("Was Modified: %v\n", result.WasModified())

	// Output:
	// COST = 2
	// Add_Research_Slot = 2
	// Changes: 2
	// Was Modified: true
}
