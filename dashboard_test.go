// Copyright 2025 Naren Yellavula
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

package main

import (
	"slices"
	"testing"

	"github.com/cybrota/avltree/keyspace"
)

func TestLevelBars(t *testing.T) {
	data, labels := levelBars([]int{1, 2, 3})
	if !slices.Equal(data, []float64{1, 2, 3}) {
		t.Errorf("data = %v; want [1 2 3]", data)
	}
	if !slices.Equal(labels, []string{"d0", "d1", "d2"}) {
		t.Errorf("labels = %v; want [d0 d1 d2]", labels)
	}

	data, labels = levelBars(nil)
	if len(data) != 0 || len(labels) != 0 {
		t.Errorf("empty levels gave %v %v", data, labels)
	}
}

func TestDashboardStats(t *testing.T) {
	space := newTestSpace(t, "int")
	for _, key := range []string{"30", "15", "20", "25", "23", "24", "10", "14", "8", "40", "50", "45", "47", "46", "55"} {
		space.Insert(key)
	}
	space.Delete("40")

	stats := dashboardStats(space)
	for _, want := range []string{
		"key kind: int",
		"keys: 14",
		"height: 5",
		"perfect height: 4",
		"[invariants: ok](fg:green)",
		"min: 8",
		"max: 55",
	} {
		if !slices.Contains(stats, want) {
			t.Errorf("stats %q missing %q", stats, want)
		}
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	stats := dashboardStats(newTestSpace(t, "string"))
	if !slices.Contains(stats, "keys: 0") || !slices.Contains(stats, "perfect height: 0") {
		t.Errorf("unexpected stats for empty tree: %q", stats)
	}
	for _, line := range stats {
		if line == "min: " || line == "max: " {
			t.Errorf("empty tree reports %q", line)
		}
	}
}

func TestTreeRows(t *testing.T) {
	space := newTestSpace(t, "int")
	if rows := treeRows(space, keyspace.RenderOptions{}); !slices.Equal(rows, []string{"(empty tree)"}) {
		t.Errorf("empty rows = %q", rows)
	}

	space.Insert("1")
	space.Insert("2")
	want := []string{"R----1", "   R----2"}
	if rows := treeRows(space, keyspace.RenderOptions{}); !slices.Equal(rows, want) {
		t.Errorf("rows = %q; want %q", rows, want)
	}
}
