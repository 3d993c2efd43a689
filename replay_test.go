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
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/avltree/keyspace"
)

func newTestSpace(t *testing.T, kind string) keyspace.Space {
	t.Helper()
	space, err := keyspace.NewManager().NewSpace(kind, keyspace.DefaultOptions())
	if err != nil {
		t.Fatalf("NewSpace(%q) returned error: %v", kind, err)
	}
	return space
}

func replayScript(t *testing.T, r *Replayer, script string) (Summary, error) {
	t.Helper()
	ops, err := ReadScript(strings.NewReader(script), "test")
	if err != nil {
		t.Fatalf("ReadScript returned error: %v", err)
	}
	return r.Run(ops)
}

func TestReplayDemo(t *testing.T) {
	var out strings.Builder
	r := NewReplayer(newTestSpace(t, "int"), &out, keyspace.RenderOptions{})

	summary, err := replayScript(t, r, demoScript)
	if err != nil {
		t.Fatalf("demo replay failed: %v", err)
	}

	want := strings.Join([]string{
		"R----23",
		"   L----15",
		"   |  L----10",
		"   |  |  L----8",
		"   |  |  R----14",
		"   |  R----20",
		"   R----45",
		"      L----25",
		"      |  L----24",
		"      |  R----30",
		"      R----47",
		"         L----46",
		"         R----50",
		"            R----55",
		"14 keys, height 5",
		"invariants hold for 14 keys",
	}, "\n") + "\n"
	if got := out.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	if summary.Inserted != 15 || summary.Deleted != 1 || summary.Ignored != 0 {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestReplaySummary(t *testing.T) {
	r := NewReplayer(newTestSpace(t, "int"), &strings.Builder{}, keyspace.RenderOptions{})

	script := `insert 1 2 3 2
delete 4 1
find 2 1 3
`
	summary, err := replayScript(t, r, script)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	want := Summary{Inserted: 3, Deleted: 1, Ignored: 2, Lookups: 3, Hits: 2}
	if summary != want {
		t.Errorf("summary = %+v; want %+v", summary, want)
	}
	if r.Summary() != want {
		t.Errorf("Summary() = %+v; want %+v", r.Summary(), want)
	}
	if got := want.String(); got != "3 inserted, 1 deleted, 2 ignored, 2/3 lookups found" {
		t.Errorf("unexpected summary text %q", got)
	}
}

func TestReplayVerbose(t *testing.T) {
	var out strings.Builder
	r := NewReplayer(newTestSpace(t, "string"), &out, keyspace.RenderOptions{})
	r.verbose = true

	if _, err := replayScript(t, r, "insert pear pear\ndelete fig\nfind pear\nclear\nprint\n"); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	want := strings.Join([]string{
		"inserted pear",
		"pear already present",
		"fig not present",
		"pear found",
		"cleared",
		"(empty tree)",
	}, "\n") + "\n"
	if got := out.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReplayBadKeyNamesLine(t *testing.T) {
	r := NewReplayer(newTestSpace(t, "int"), &strings.Builder{}, keyspace.RenderOptions{})

	summary, err := replayScript(t, r, "insert 1\ninsert twelve\ninsert 3\n")
	if err == nil {
		t.Fatal("expected error for non-integer key, got nil")
	}
	if !strings.HasPrefix(err.Error(), "line 2: ") {
		t.Errorf("error %q does not name line 2", err)
	}
	var parseErr *keyspace.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *keyspace.ParseError in chain, got %v", err)
	}
	// stops at the failing line
	if summary.Inserted != 1 {
		t.Errorf("inserted %d keys before failing; want 1", summary.Inserted)
	}
}

func TestReplayCheckEach(t *testing.T) {
	space := newTestSpace(t, "float")
	r := NewReplayer(space, &strings.Builder{}, keyspace.RenderOptions{})
	r.checkEach = true

	var sb strings.Builder
	for i := range 200 {
		sb.WriteString("insert ")
		sb.WriteString(strings.Repeat("9", i%7+1))
		sb.WriteString(".5\n")
	}
	sb.WriteString("delete 9.5 99.5 999.5\n")

	if _, err := replayScript(t, r, sb.String()); err != nil {
		t.Fatalf("replay with checks failed: %v", err)
	}
	if space.Len() != 4 {
		t.Errorf("space holds %d keys; want 4", space.Len())
	}
}

func TestReplayPrintLabels(t *testing.T) {
	var out strings.Builder
	r := NewReplayer(newTestSpace(t, "int"), &out, keyspace.RenderOptions{ShowHeight: true, ShowBalance: true})

	if _, err := replayScript(t, r, "insert 30 20 10\nprint\n"); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	want := "R----20 (h=2) [+0]\n   L----10 (h=1) [+0]\n   R----30 (h=1) [+0]\n3 keys, height 2\n"
	if got := out.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}
