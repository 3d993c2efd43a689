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

package keyspace

import (
	"strings"
	"testing"
)

func TestManagerForKind(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		kind string
		want string
	}{
		{"int", "int"},
		{"integer", "int"},
		{"int64", "int"},
		{"float", "float"},
		{"number", "float"},
		{"string", "string"},
		{"text", "string"},
	}

	for _, tc := range tests {
		strategy, err := manager.ForKind(tc.kind)
		if err != nil {
			t.Errorf("ForKind(%q) returned error: %v", tc.kind, err)
			continue
		}
		if strategy.Name() != tc.want {
			t.Errorf("ForKind(%q) = %q, want %q", tc.kind, strategy.Name(), tc.want)
		}
	}

	if _, err := manager.ForKind("complex"); err == nil || !strings.Contains(err.Error(), "complex") {
		t.Errorf("Expected an error naming the unknown kind, got %v", err)
	}
}

// shoutStrategy claims the "int" kind ahead of the built-in one.
type shoutStrategy struct{ StringStrategy }

func (s *shoutStrategy) Name() string                  { return "shout" }
func (s *shoutStrategy) SupportsKind(kind string) bool { return kind == "int" }
func (s *shoutStrategy) Priority() int                 { return 0 }

func TestManagerPriority(t *testing.T) {
	manager := NewManager()
	manager.RegisterStrategy(&shoutStrategy{})

	strategy, err := manager.ForKind("int")
	if err != nil {
		t.Fatal(err)
	}
	if strategy.Name() != "shout" {
		t.Errorf("Expected the lower priority number to win, got %q", strategy.Name())
	}

	if got := strings.Join(manager.Kinds(), ","); got != "int,float,string,shout" {
		t.Errorf("Kinds() = %q", got)
	}
}
