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
	"strings"

	"github.com/cybrota/avltree/keyspace"
	"github.com/spf13/cobra"
)

const logo = `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing search trees in your terminal [Version: %s]
`

// loadConfigOrDefault never fails: a broken config file only costs the
// user their settings.
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return defaults()
	}
	return config
}

// newSpace builds the key space for kind, falling back to the configured
// kind when the flag is empty.
func newSpace(kind string, config *Config) (keyspace.Space, error) {
	if kind == "" {
		kind = config.Tree.KeyKind
	}
	opts := keyspace.DefaultOptions()
	opts.KeySpan = config.Stress.KeySpan
	return keyspace.NewManager().NewSpace(strings.ToLower(kind), opts)
}

func renderOptions(config *Config) keyspace.RenderOptions {
	return keyspace.RenderOptions{
		ShowHeight:  config.Display.ShowHeight,
		ShowBalance: config.Display.ShowBalance,
		Style:       NewStyles(config.Display.Color).KeyStyler(config.Display.Color),
	}
}

// applyDisplayFlags lets command flags override the display settings.
func applyDisplayFlags(cmd *cobra.Command, config *Config) {
	if cmd.Flags().Changed("heights") {
		config.Display.ShowHeight, _ = cmd.Flags().GetBool("heights")
	}
	if cmd.Flags().Changed("balance") {
		config.Display.ShowBalance, _ = cmd.Flags().GetBool("balance")
	}
	if cmd.Flags().Changed("no-color") {
		noColor, _ := cmd.Flags().GetBool("no-color")
		config.Display.Color = !noColor
	}
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("heights", false, "label nodes with their height")
	cmd.Flags().Bool("balance", false, "label nodes with their balance factor")
	cmd.Flags().Bool("no-color", false, "disable colored output")
}

func main() {
	asciiLogo := fmt.Sprintf(logo, version)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build the reference tree and print it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Inserts 30 15 20 25 23 24 10 14 8 40 50 45 47 46 55, deletes 40 and prints the tree"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, config)

			space, err := newSpace("int", config)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}
			ops, err := ReadScript(strings.NewReader(demoScript), "demo")
			if err != nil {
				log.Fatalf("Error reading demo script: %v", err)
			}

			replayer := NewReplayer(space, os.Stdout, renderOptions(config))
			if _, err := replayer.Run(ops); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	addDisplayFlags(cmdDemo)

	var cmdReplay = &cobra.Command{
		Use:   "replay <script>...",
		Short: "Apply operation scripts to a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Replay reads scripts of insert/delete/find/print/check/clear lines. Use - to read standard input."),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, config)

			kind, _ := cmd.Flags().GetString("kind")
			space, err := newSpace(kind, config)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}

			replayer := NewReplayer(space, os.Stdout, renderOptions(config))
			replayer.checkEach, _ = cmd.Flags().GetBool("check")
			replayer.verbose, _ = cmd.Flags().GetBool("verbose")

			for _, path := range args {
				ops, err := ReadScriptFile(path)
				if err != nil {
					log.Fatalf("Error reading script: %v", err)
				}
				if _, err := replayer.Run(ops); err != nil {
					log.Fatalf("%s: %v", path, err)
				}
			}

			if printTree, _ := cmd.Flags().GetBool("print"); printTree {
				if _, err := replayer.Run([]Operation{{Kind: OpPrint}}); err != nil {
					log.Fatalf("Error printing tree: %v", err)
				}
			}
			fmt.Println(replayer.Summary())
		},
	}
	cmdReplay.Flags().String("kind", "", "key kind: int, float or string (default from settings)")
	cmdReplay.Flags().Bool("check", false, "verify the invariants after every insert and delete")
	cmdReplay.Flags().Bool("print", false, "print the tree when done")
	cmdReplay.Flags().BoolP("verbose", "v", false, "report every operation")
	addDisplayFlags(cmdReplay)

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run random operations and verify the tree after each one",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stress applies random inserts and deletes and checks order, balance, heights, membership and size after every step"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			if cmd.Flags().Changed("key-span") {
				config.Stress.KeySpan, _ = cmd.Flags().GetInt("key-span")
			}
			kind, _ := cmd.Flags().GetString("kind")
			space, err := newSpace(kind, config)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}

			opts := StressOptions{
				Operations: config.Stress.Operations,
				Seed:       config.Stress.Seed,
			}
			if cmd.Flags().Changed("ops") {
				opts.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			noProgress, _ := cmd.Flags().GetBool("no-progress")
			opts.ShowProgress = !noProgress

			report, err := runStress(space, opts, os.Stderr)
			if err != nil {
				log.Fatalf("Stress failed (seed %d): %v", report.Seed, err)
			}
			fmt.Println(report)
		},
	}
	cmdStress.Flags().String("kind", "", "key kind: int, float or string (default from settings)")
	cmdStress.Flags().Int("ops", 0, "number of random operations (default from settings)")
	cmdStress.Flags().Int64("seed", 0, "random seed, 0 for a time based one")
	cmdStress.Flags().Int("key-span", 0, "number of distinct random keys (default from settings)")
	cmdStress.Flags().Bool("no-progress", false, "hide the progress bar")

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Edit a tree interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Type operations and watch the tree rebalance"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, config)

			kind, _ := cmd.Flags().GetString("kind")
			space, err := newSpace(kind, config)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}
			if err := runTUI(space, config); err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
		},
	}
	cmdTUI.Flags().String("kind", "", "key kind: int, float or string (default from settings)")
	addDisplayFlags(cmdTUI)

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard <script>",
		Short: "Show shape statistics of the tree built by a script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Dashboard replays a script and shows the tree, nodes per depth and balance statistics"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, config)

			kind, _ := cmd.Flags().GetString("kind")
			space, err := newSpace(kind, config)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}
			ops, err := ReadScriptFile(args[0])
			if err != nil {
				log.Fatalf("Error reading script: %v", err)
			}
			// print and check output would corrupt the screen
			var mutations []Operation
			for _, op := range ops {
				if op.Kind != OpPrint && op.Kind != OpCheck {
					mutations = append(mutations, op)
				}
			}
			if _, err := NewReplayer(space, os.Stdout, keyspace.RenderOptions{}).Run(mutations); err != nil {
				log.Fatalf("%s: %v", args[0], err)
			}
			if err := runDashboard(space, config); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}
	cmdDashboard.Flags().String("kind", "", "key kind: int, float or string (default from settings)")
	addDisplayFlags(cmdDashboard)

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.AddCommand(cmdDemo, cmdReplay, cmdStress, cmdTUI, cmdDashboard, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
