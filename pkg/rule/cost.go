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
	"strconv"
	"strings"
)

const (
	// CostKey is the focus duration field
	CostKey = "cost"
	// CostCap is the largest cost left untouched
	CostCap = 2
)

// 💰 Cost returns the rule that caps every `cost = N` at CostCap
func Cost() Rule {
	capped := strconv.Itoa(CostCap)
	desc := "cost = N with N > " + capped + " becomes cost = " + capped
	return newFieldRule("cost", CostKey, desc, func(digits string) (string, bool) {
		if !ExceedsCap(digits, CostCap) {
			return "", false
		}
		return capped, true
	})
}

// ExceedsCap reports whether the decimal digit run is strictly greater than
// limit. It compares digit strings so runs of any length are safe.
func ExceedsCap(digits string, limit int) bool {
	if limit < 0 {
		return digits != ""
	}
	trimmed := strings.TrimLeft(digits, "0")
	bound := strconv.Itoa(limit)
	if len(trimmed) != len(bound) {
		return len(trimmed) > len(bound)
	}
	return trimmed > bound
}
