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
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	KeyKind string `yaml:"key_kind"`
}

type DisplayConfig struct {
	ShowHeight  bool `yaml:"show_height"`
	ShowBalance bool `yaml:"show_balance"`
	Color       bool `yaml:"color"`
}

type StressConfig struct {
	Operations int   `yaml:"operations"`
	KeySpan    int   `yaml:"key_span"`
	Seed       int64 `yaml:"seed"` // 0 picks a time based seed
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Display DisplayConfig `yaml:"display"`
	Stress  StressConfig  `yaml:"stress"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyKind: "int",
	},
	Display: DisplayConfig{
		Color: true,
	},
	Stress: StressConfig{
		Operations: 10000,
		KeySpan:    1000,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltree.yaml. Any problem with the file falls back to
// the defaults so the tool always starts.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return defaults(), nil
	}

	// start from the defaults so a partial file only overrides what it sets
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		return defaults(), nil
	}
	config.normalize()

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func (c *Config) normalize() {
	if c.Tree.KeyKind == "" {
		c.Tree.KeyKind = defaultConfig.Tree.KeyKind
	}
	if c.Stress.Operations <= 0 {
		c.Stress.Operations = defaultConfig.Stress.Operations
	}
	if c.Stress.KeySpan <= 0 {
		c.Stress.KeySpan = defaultConfig.Stress.KeySpan
	}
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	styles := NewStyles(config.Display.Color)

	fmt.Println(styles.Title.Render("avltree configuration"))
	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Println(styles.Section.Render("tree"))
	fmt.Printf("  key_kind: %s\n\n", config.Tree.KeyKind)

	fmt.Println(styles.Section.Render("display"))
	fmt.Printf("  show_height: %t\n", config.Display.ShowHeight)
	fmt.Printf("  show_balance: %t\n", config.Display.ShowBalance)
	fmt.Printf("  color: %t\n\n", config.Display.Color)

	fmt.Println(styles.Section.Render("stress"))
	fmt.Printf("  operations: %d\n", config.Stress.Operations)
	fmt.Printf("  key_span: %d\n", config.Stress.KeySpan)
	fmt.Printf("  seed: %d\n", config.Stress.Seed)
}
