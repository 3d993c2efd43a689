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
	"math"
	"strings"

	"github.com/cybrota/avltree/keyspace"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// levelBars turns per-depth node counts into bar chart data.
func levelBars(levels []int) ([]float64, []string) {
	data := make([]float64, len(levels))
	labels := make([]string, len(levels))
	for depth, count := range levels {
		data[depth] = float64(count)
		labels[depth] = fmt.Sprintf("d%d", depth)
	}
	return data, labels
}

// dashboardStats describes the shape of the tree in a few lines.
func dashboardStats(space keyspace.Space) []string {
	n := space.Len()
	h := space.Height()

	// lowest possible height for n keys, and the AVL worst case
	minHeight := 0
	if n > 0 {
		minHeight = int(math.Ceil(math.Log2(float64(n + 1))))
	}
	bound := 1.44 * math.Log2(float64(n+2))

	stats := []string{
		fmt.Sprintf("key kind: %s", space.Kind()),
		fmt.Sprintf("keys: %d", n),
		fmt.Sprintf("height: %d", h),
		fmt.Sprintf("perfect height: %d", minHeight),
		fmt.Sprintf("AVL bound: %.2f", bound),
	}

	if err := space.Check(); err != nil {
		stats = append(stats, fmt.Sprintf("[invariants: %v](fg:red)", err))
	} else {
		stats = append(stats, "[invariants: ok](fg:green)")
	}

	if keys := space.Keys(); len(keys) > 0 {
		stats = append(stats, fmt.Sprintf("min: %s", keys[0]), fmt.Sprintf("max: %s", keys[len(keys)-1]))
	}
	return stats
}

func treeRows(space keyspace.Space, opts keyspace.RenderOptions) []string {
	if space.Len() == 0 {
		return []string{"(empty tree)"}
	}
	var sb strings.Builder
	if err := space.Render(&sb, opts); err != nil {
		return []string{err.Error()}
	}
	return strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
}

// runDashboard shows the tree held by space until the user quits.
func runDashboard(space keyspace.Space, config *Config) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()
	// termui cannot show lipgloss escape codes, keys stay unstyled here
	render := keyspace.RenderOptions{
		ShowHeight:  config.Display.ShowHeight,
		ShowBalance: config.Display.ShowBalance,
	}

	treeList := widgets.NewList()
	treeList.Title = " Tree "
	treeList.Rows = treeRows(space, render)
	treeList.TextStyle = ui.NewStyle(scheme.UIText)
	treeList.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, scheme.UIPrimary)
	treeList.BorderStyle = ui.NewStyle(scheme.UIPrimary)

	levelsChart := widgets.NewBarChart()
	levelsChart.Title = " Nodes per depth "
	levelsChart.Data, levelsChart.Labels = levelBars(space.Levels())
	levelsChart.BarWidth = 4
	levelsChart.BarColors = []ui.Color{scheme.UIBar}
	levelsChart.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	levelsChart.BorderStyle = ui.NewStyle(scheme.UIBorder)

	statsList := widgets.NewList()
	statsList.Title = " Shape "
	statsList.Rows = dashboardStats(space)
	statsList.BorderStyle = ui.NewStyle(scheme.UIBorder)

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.Text = `[<up>/<down>](fg:green) scroll the tree
[h](fg:green) toggle heights  [b](fg:green) toggle balance
[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) quit`
	keyboardPara.BorderStyle = ui.NewStyle(scheme.UIBorder)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewCol(0.55, treeList),
		ui.NewCol(0.45,
			ui.NewRow(0.45, levelsChart),
			ui.NewRow(0.35, statsList),
			ui.NewRow(0.2, keyboardPara),
		),
	)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Up>", "k":
			treeList.ScrollUp()
		case "<Down>", "j":
			treeList.ScrollDown()
		case "<PageUp>":
			treeList.ScrollPageUp()
		case "<PageDown>":
			treeList.ScrollPageDown()
		case "h":
			render.ShowHeight = !render.ShowHeight
			treeList.Rows = treeRows(space, render)
		case "b":
			render.ShowBalance = !render.ShowBalance
			treeList.Rows = treeRows(space, render)
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		}
		ui.Render(grid)
	}
}
