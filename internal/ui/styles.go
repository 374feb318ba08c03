// Package ui renders the end-of-run summary.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	warning lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{title: plain, section: plain, ok: plain, failed: plain, warning: plain, dim: plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		section: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		ok:      lipgloss.NewStyle().Foreground(colorGreen),
		failed:  lipgloss.NewStyle().Foreground(colorRed),
		warning: lipgloss.NewStyle().Foreground(colorYellow),
		dim:     lipgloss.NewStyle().Foreground(colorDim),
	}
}

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	skipMark  = "[--]"
	planMark  = "[..]"
)

// IsInteractiveTTY reports whether w is a terminal.
func IsInteractiveTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
