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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostRule(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{name: "zero_unchanged", content: "cost = 0", want: "cost = 0"},
		{name: "one_unchanged", content: "cost = 1", want: "cost = 1"},
		{name: "two_unchanged", content: "cost = 2", want: "cost = 2"},
		{name: "three_capped", content: "cost = 3", want: "cost = 2", wantCount: 1},
		{name: "fourteen_capped", content: "cost = 14", want: "cost = 2", wantCount: 1},
		{name: "leading_zeros_capped", content: "cost = 007", want: "cost = 2", wantCount: 1},
		{name: "leading_zeros_small", content: "cost = 002", want: "cost = 002"},
		{name: "no_spaces", content: "cost=9", want: "cost=2", wantCount: 1},
		{name: "tabs_and_newlines", content: "cost\t=\n\t30", want: "cost\t=\n\t2", wantCount: 1},
		{name: "upper_case_key", content: "COST = 5", want: "COST = 2", wantCount: 1},
		{name: "mixed_case_key", content: "CoSt = 5", want: "CoSt = 2", wantCount: 1},
		{name: "suffix_of_identifier", content: "research_cost = 5", want: "research_cost = 2", wantCount: 1},
		{
			name:      "multiple_matches",
			content:   "focus = {\n\tcost = 3\n\tcost = 1\n\tcost = 40\n}",
			want:      "focus = {\n\tcost = 2\n\tcost = 1\n\tcost = 2\n}",
			wantCount: 2,
		},
		{name: "huge_value", content: "cost = 99999999999999999999999999", want: "cost = 2", wantCount: 1},
		{name: "no_digits", content: "cost = high", want: "cost = high"},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := Cost().Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSlotRule(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{name: "one_at_end", content: "add_research_slot = 1", want: "add_research_slot = 2", wantCount: 1},
		{name: "one_then_newline", content: "add_research_slot = 1\n", want: "add_research_slot = 2\n", wantCount: 1},
		{name: "one_then_brace", content: "add_research_slot = 1}", want: "add_research_slot = 2}", wantCount: 1},
		{name: "ten_unchanged", content: "add_research_slot = 10", want: "add_research_slot = 10"},
		{name: "twelve_unchanged", content: "add_research_slot = 12\n", want: "add_research_slot = 12\n"},
		{name: "two_unchanged", content: "add_research_slot = 2", want: "add_research_slot = 2"},
		{name: "zero_prefixed_unchanged", content: "add_research_slot = 01", want: "add_research_slot = 01"},
		{name: "mixed_case_key", content: "Add_Research_Slot = 1", want: "Add_Research_Slot = 2", wantCount: 1},
		{name: "no_spaces", content: "add_research_slot=1 ", want: "add_research_slot=2 ", wantCount: 1},
		{
			name:      "multiple_matches",
			content:   "add_research_slot = 1\nadd_research_slot = 3\nADD_RESEARCH_SLOT = 1",
			want:      "add_research_slot = 2\nadd_research_slot = 3\nADD_RESEARCH_SLOT = 2",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := Slot().Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestExceedsCap(t *testing.T) {
	tests := []struct {
		digits string
		limit  int
		want   bool
	}{
		{"0", 2, false},
		{"2", 2, false},
		{"3", 2, true},
		{"10", 2, true},
		{"0000000000000000000000003", 2, true},
		{"0000000000000000000000002", 2, false},
		{"", 2, false},
		{"99", 100, false},
		{"101", 100, true},
		{"100", 100, false},
		{"0", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, ExceedsCap(tt.digits, tt.limit))
		})
	}
}

func TestIsSingleSlot(t *testing.T) {
	assert.True(t, IsSingleSlot("1"))
	assert.False(t, IsSingleSlot("10"))
	assert.False(t, IsSingleSlot("01"))
	assert.False(t, IsSingleSlot("2"))
	assert.False(t, IsSingleSlot(""))
}

func TestEngine(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         string
		wantCounts   []Count
		wantModified bool
	}{
		{
			name:         "both_rules_fire",
			content:      "cost = 14\nadd_research_slot = 1\n",
			want:         "cost = 2\nadd_research_slot = 2\n",
			wantCounts:   []Count{{Rule: "cost", Replaced: 1}, {Rule: "add_research_slot", Replaced: 1}},
			wantModified: true,
		},
		{
			name:       "both_below_threshold",
			content:    "cost = 1\nadd_research_slot = 10\n",
			want:       "cost = 1\nadd_research_slot = 10\n",
			wantCounts: []Count{{Rule: "cost", Replaced: 0}, {Rule: "add_research_slot", Replaced: 0}},
		},
		{
			name:       "no_tokens",
			content:    "focus_tree = {\n\tid = generic\n}\n",
			want:       "focus_tree = {\n\tid = generic\n}\n",
			wantCounts: []Count{{Rule: "cost", Replaced: 0}, {Rule: "add_research_slot", Replaced: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Default().Apply(tt.content)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.Original)
			assert.Equal(t, tt.want, result.Modified)
			assert.Equal(t, tt.wantCounts, result.Counts)
			assert.Equal(t, tt.wantModified, result.WasModified())
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	inputs := []string{
		"cost = 14\nadd_research_slot = 1\n",
		"COST = 5 Add_Research_Slot = 1",
		"cost = 2\nadd_research_slot = 2\n",
		"cost=100 cost=1 add_research_slot=1}add_research_slot=10",
		strings.Repeat("focus = { cost = 10 add_research_slot = 1 }\n", 50),
	}

	for _, in := range inputs {
		once := Apply(in)
		assert.Equal(t, once, Apply(once), "second pass should not change %q", in)
	}
}

func TestApplyPreservesSurroundingBytes(t *testing.T) {
	in := "# 中文注释\r\nfocus = {\r\n\tid = x\r\n\tCost = 35 # days\r\n\tadd_research_slot = 1\r\n}"
	want := "# 中文注释\r\nfocus = {\r\n\tid = x\r\n\tCost = 2 # days\r\n\tadd_research_slot = 2\r\n}"
	assert.Equal(t, want, Apply(in))
}

func TestEngineRulesOrder(t *testing.T) {
	rules := Default().Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "cost", rules[0].Name())
	assert.Equal(t, "add_research_slot", rules[1].Name())
}
