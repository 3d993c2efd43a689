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
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := writeTestConfig(t, `
tree:
  key_kind: string
display:
  show_height: true
`)

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if config.Tree.KeyKind != "string" {
		t.Errorf("key_kind = %q; want string", config.Tree.KeyKind)
	}
	if !config.Display.ShowHeight || config.Display.ShowBalance {
		t.Errorf("display = %+v; want heights only", config.Display)
	}
	// untouched settings keep their defaults
	if !config.Display.Color {
		t.Error("color default lost")
	}
	if config.Stress != defaultConfig.Stress {
		t.Errorf("stress = %+v; want %+v", config.Stress, defaultConfig.Stress)
	}
}

func TestLoadConfigFileNormalizes(t *testing.T) {
	path := writeTestConfig(t, `
tree:
  key_kind: ""
stress:
  operations: -5
  key_span: 0
  seed: 99
`)

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if config.Tree.KeyKind != "int" {
		t.Errorf("key_kind = %q; want int", config.Tree.KeyKind)
	}
	if config.Stress.Operations != 10000 || config.Stress.KeySpan != 1000 {
		t.Errorf("stress = %+v; want defaults for invalid values", config.Stress)
	}
	if config.Stress.Seed != 99 {
		t.Errorf("seed = %d; want 99", config.Stress.Seed)
	}
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := writeTestConfig(t, "tree: [unclosed\n")

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults", *config)
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	want := Config{
		Tree:    TreeConfig{KeyKind: "float"},
		Display: DisplayConfig{ShowBalance: true},
		Stress:  StressConfig{Operations: 50, KeySpan: 20, Seed: 3},
	}

	if err := writeConfigFile(path, &want); err != nil {
		t.Fatalf("writeConfigFile returned error: %v", err)
	}
	got, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if *got != want {
		t.Errorf("read back %+v; want %+v", *got, want)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	c := defaults()
	c.Tree.KeyKind = "string"
	if defaultConfig.Tree.KeyKind != "int" {
		t.Error("defaults() shares state with defaultConfig")
	}
}
