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
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ColorScheme pairs the lipgloss colors used by printed output and the TUI
// with the termui colors used by the dashboard.
type ColorScheme struct {
	Key         lipgloss.Color
	Accent      lipgloss.Color
	Muted       lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	UIPrimary ui.Color
	UIBorder  ui.Color
	UIText    ui.Color
	UIBar     ui.Color
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Key:         lipgloss.Color("25"), // Dark Blue
		Accent:      lipgloss.Color("127"),
		Muted:       lipgloss.Color("240"),
		Success:     lipgloss.Color("28"),
		Error:       lipgloss.Color("160"),
		Border:      lipgloss.Color("245"),
		BorderFocus: lipgloss.Color("25"),
		UIPrimary:   ui.Color(4),
		UIBorder:    ui.Color(8),
		UIText:      ui.ColorBlack,
		UIBar:       ui.Color(4),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Key:         lipgloss.Color("39"), // Bright cyan/blue
		Accent:      lipgloss.Color("205"),
		Muted:       lipgloss.Color("243"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		UIPrimary:   ui.Color(14),
		UIBorder:    ui.Color(240),
		UIText:      ui.ColorWhite,
		UIBar:       ui.Color(6),
	}
}

// GetColorScheme returns the scheme matching the detected terminal mode
func GetColorScheme() *ColorScheme {
	if detectTerminalMode() == TerminalModeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

// Styles holds all the lipgloss styling of the tool
type Styles struct {
	Title          lipgloss.Style
	Section        lipgloss.Style
	Key            lipgloss.Style
	Muted          lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
}

// NewStyles creates the styles. Without color every style renders text
// unchanged apart from borders.
func NewStyles(color bool) *Styles {
	plain := lipgloss.NewStyle()
	if !color {
		return &Styles{
			Title:          plain,
			Section:        plain,
			Key:            plain,
			Muted:          plain,
			SuccessMessage: plain,
			ErrorMessage:   plain,
			BorderFocused:  plain.BorderStyle(lipgloss.RoundedBorder()),
			BorderBlurred:  plain.BorderStyle(lipgloss.NormalBorder()),
			InputPrompt:    plain,
			HelpKey:        plain,
			HelpDesc:       plain,
		}
	}

	scheme := GetColorScheme()
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(scheme.Key).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(scheme.Key),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.Muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// KeyStyler returns the function used to color keys in rendered trees, or
// nil when color is off.
func (s *Styles) KeyStyler(color bool) func(string) string {
	if !color {
		return nil
	}
	return func(key string) string {
		return s.Key.Render(key)
	}
}
