package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/wasm-argv/argview"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	argStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// isTerminal reports whether w is a terminal, so styling is worth emitting.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printArgs writes one line per argument: its index and quoted value.
func printArgs(w io.Writer, title string, args argview.View) {
	styled := isTerminal(w)
	if styled {
		fmt.Fprintln(w, titleStyle.Render(title))
	} else {
		fmt.Fprintln(w, title)
	}

	for i, arg := range args.All() {
		idx := "[" + strconv.Itoa(i) + "]"
		val := strconv.Quote(arg)
		if styled {
			idx = indexStyle.Render(idx)
			val = argStyle.Render(val)
		}
		fmt.Fprintf(w, "%s %s (%d bytes, %d runes)\n", idx, val, len(arg), utf8.RuneCountInString(arg))
	}
}
