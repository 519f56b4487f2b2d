package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-argv/argview"
	"github.com/wippyai/wasm-argv/entry"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [args...]",
	Short: "Browse validated arguments interactively",
	Long: `inspect validates the program name and the given arguments like check,
then opens a terminal UI listing each argument with its table offset,
byte length, rune count and raw bytes. Type / to filter.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := programArgs(args)

		var runErr error
		status, err := entry.Process(cmd.Context(), raw, func(_ context.Context, view argview.View) int32 {
			p := tea.NewProgram(newInspectModel(view), tea.WithAltScreen())
			if _, runErr = p.Run(); runErr != nil {
				return 1
			}
			return 0
		}, entry.WithDiagnostic(cmd.OutOrStdout()), entry.WithLogger(logger))
		if err != nil {
			return err
		}
		if runErr != nil {
			return runErr
		}
		exitStatus = status
		return nil
	},
}

type argInfo struct {
	value  string
	raw    []byte
	index  int
	offset uint32
}

type inspectModel struct {
	args     []argInfo
	visible  []int
	filter   textinput.Model
	selected int
	state    inspectState
}

type inspectState int

const (
	stateBrowse inspectState = iota
	stateFilter
)

func newInspectModel(view argview.View) *inspectModel {
	table := view.Table()
	m := &inspectModel{state: stateBrowse}
	for i, arg := range view.All() {
		m.args = append(m.args, argInfo{
			index:  i,
			value:  arg,
			raw:    view.Bytes(i),
			offset: table.At(i),
		})
	}

	m.filter = textinput.New()
	m.filter.Prompt = "/"
	m.filter.Placeholder = "filter"
	m.filter.Width = 40
	m.applyFilter()
	return m
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) applyFilter() {
	q := m.filter.Value()
	m.visible = m.visible[:0]
	for i, a := range m.args {
		if q == "" || strings.Contains(a.value, q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateFilter {
		switch key.String() {
		case "enter", "esc":
			m.filter.Blur()
			m.state = stateBrowse
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "/":
		m.state = stateFilter
		return m, m.filter.Focus()

	case "esc":
		m.filter.SetValue("")
		m.applyFilter()
	}
	return m, nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Arguments"))
	b.WriteString(fmt.Sprintf(" %d total\n\n", len(m.args)))

	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(errorStyle.Render("No arguments match."))
		b.WriteString("\n")
	}
	for row, i := range m.visible {
		a := m.args[i]
		line := fmt.Sprintf("[%d] %q", a.index, a.value)
		if row == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + indexStyle.Render(fmt.Sprintf("[%d]", a.index)) + " " + argStyle.Render(fmt.Sprintf("%q", a.value)))
		}
		b.WriteString("\n")
	}

	if len(m.visible) > 0 {
		a := m.args[m.visible[m.selected]]
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("offset %s  bytes %d  runes %d\n",
			indexStyle.Render(fmt.Sprintf("0x%08x", a.offset)),
			len(a.raw),
			utf8.RuneCount(a.raw)))
		b.WriteString(helpStyle.Render(hexDump(a.raw, 16)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateFilter {
		b.WriteString(helpStyle.Render("type to filter • enter/esc done"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • / filter • esc clear • q quit"))
	}
	return b.String()
}

// hexDump formats data as space-separated hex, perLine bytes per line.
func hexDump(data []byte, perLine int) string {
	if len(data) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for i, c := range data {
		if i > 0 {
			if i%perLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}
