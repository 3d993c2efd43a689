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
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/keyspace"
	"github.com/patrickmn/go-cache"
)

const maxLogLines = 200

const tuiGuide = `# Operations

| command | effect |
|---|---|
| insert 30 15 20 | add keys |
| delete 15 | remove keys |
| find 20 | look keys up |
| check | verify the invariants |
| clear | drop every key |

Several keys may follow one verb. Quote string keys with spaces.
`

// TUIModel represents the Bubble Tea application state
type TUIModel struct {
	ready bool

	textInput    textinput.Model
	treeViewport viewport.Model

	// Data
	space       keyspace.Space
	replayer    *Replayer
	renderCache *cache.Cache
	render      keyspace.RenderOptions
	config      *Config

	// State
	log         []string
	status      string
	statusErr   bool
	focusOnTree bool
	showGuide   bool
	guide       string

	styles *Styles

	// Dimensions
	width  int
	height int
}

// NewTUIModel creates the initial model
func NewTUIModel(space keyspace.Space, config *Config) TUIModel {
	ti := textinput.New()
	ti.Placeholder = "insert 30 15 20"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	styles := NewStyles(config.Display.Color)

	render := keyspace.RenderOptions{
		ShowHeight:  config.Display.ShowHeight,
		ShowBalance: config.Display.ShowBalance,
		Style:       styles.KeyStyler(config.Display.Color),
	}

	model := TUIModel{
		textInput:    ti,
		treeViewport: viewport.New(0, 0),
		space:        space,
		replayer:     NewReplayer(space, io.Discard, render),
		renderCache:  NewRenderCache(),
		render:       render,
		config:       config,
		styles:       styles,
		guide:        renderGuide(config.Display.Color),
	}
	model.refreshTree()

	return model
}

// renderGuide renders the operations guide with glamour, falling back to
// the raw markdown.
func renderGuide(color bool) string {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(72))
	if err != nil {
		return tuiGuide
	}
	rendered, err := renderer.Render(tuiGuide)
	if err != nil {
		return tuiGuide
	}
	return rendered
}

// Init is called when the program starts
func (m TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.textInput.Blur()
				return m, nil
			}
			return m, m.textInput.Focus()
		case "f1":
			m.showGuide = !m.showGuide
			m.refreshTree()
			return m, nil
		case "f3":
			m.render.ShowHeight = !m.render.ShowHeight
			m.replayer.render = m.render
			m.refreshTree()
			return m, nil
		case "f4":
			m.render.ShowBalance = !m.render.ShowBalance
			m.replayer.render = m.render
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			m.copyKeys()
			return m, nil
		case "enter":
			if !m.focusOnTree {
				m.submit(m.textInput.Value())
				m.textInput.SetValue("")
				return m, nil
			}
		}

		if m.focusOnTree {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		} else {
			m.textInput, cmd = m.textInput.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// submit parses and applies one line typed by the user.
func (m *TUIModel) submit(line string) {
	ops, err := ParseLine(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(ops) == 0 {
		return
	}

	m.appendLog(m.styles.InputPrompt.Render("> ") + strings.TrimSpace(line))
	for _, op := range ops {
		msg, err := m.replayer.Apply(op)
		if err != nil {
			m.appendLog(m.styles.ErrorMessage.Render(err.Error()))
			m.setStatus(err.Error(), true)
			m.refreshTree()
			return
		}
		if op.Kind != OpPrint {
			m.appendLog("  " + msg)
		}
	}
	m.setStatus(m.replayer.Summary().String(), false)
	m.refreshTree()
}

func (m *TUIModel) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *TUIModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *TUIModel) copyKeys() {
	keys := strings.Join(m.space.Keys(), " ")
	if err := copyToClipboard(keys); err != nil {
		m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("copied %d keys to clipboard", m.space.Len()), false)
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// refreshTree puts the current drawing, or the guide, in the viewport.
func (m *TUIModel) refreshTree() {
	if m.showGuide {
		m.treeViewport.SetContent(m.guide)
		return
	}
	if m.space.Len() == 0 {
		m.treeViewport.SetContent(m.styles.Muted.Render("(empty tree)"))
		return
	}
	drawing, err := RenderTree(m.renderCache, m.space, m.render)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.treeViewport.SetContent(drawing)
}

func (m *TUIModel) updateLayout() {
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4 - len(m.textInput.Prompt)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = m.height - 6
}

func (m TUIModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 9
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, treeStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnTree {
		inputStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Operation"),
			m.textInput.View(),
		))

	logLines := m.log
	if len(logLines) > logHeight && logHeight > 0 {
		logLines = logLines[len(logLines)-logHeight:]
	}
	logBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(logHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Log"),
			strings.Join(logLines, "\n"),
		))

	treeTitle := fmt.Sprintf("Tree (%s keys) %d nodes, height %d", m.space.Kind(), m.space.Len(), m.space.Height())
	if m.showGuide {
		treeTitle = "Guide"
	}
	treeBox := treeStyle.
		Width(rightWidth).
		Height(m.height - 4).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		treeBox,
	)

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(status),
		m.renderHelp(),
	)
}

func (m TUIModel) renderHelp() string {
	keys := []string{"enter", "tab", "f1", "f3", "f4", "ctrl+y", "esc"}
	descs := []string{"apply", "switch focus", "guide", "heights", "balance", "copy keys", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runTUI starts the Bubble Tea application
func runTUI(space keyspace.Space, config *Config) error {
	program := tea.NewProgram(
		NewTUIModel(space, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
