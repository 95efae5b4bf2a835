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
	"strings"
)

// ParseDrop splits a drag-and-drop payload into paths.
//
// A payload wrapped in braces uses the `{a b} {c}` convention, where each
// brace group is one path and may contain spaces. Anything else is split on
// whitespace.
func ParseDrop(data string) []string {
	var parts []string
	if strings.HasPrefix(data, "{") && strings.HasSuffix(data, "}") {
		parts = strings.Split(data, "} {")
		for i, p := range parts {
			parts[i] = strings.Trim(p, "{} ")
		}
	} else {
		parts = strings.Fields(data)
	}

	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
