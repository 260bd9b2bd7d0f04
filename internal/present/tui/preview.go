package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/marklite/internal/present/format"
	"github.com/avelorn/marklite/pkg/ast"
)

// Preview opens a scrollable full-screen view of the rendered document.
func Preview(ctx context.Context, doc ast.Document, opts format.ANSIOptions) error {
	m := model{doc: doc, opts: opts}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type model struct {
	doc      ast.Document
	opts     format.ANSIOptions
	viewport viewport.Model
	ready    bool
	width    int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footer := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footer)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footer
		}
		m.width = msg.Width
		m.viewport.SetContent(m.renderContent(msg.Width))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderContent re-renders at the current width so wrapping follows
// terminal resizes. Width from options wins when set explicitly.
func (m model) renderContent(width int) string {
	opts := m.opts
	if opts.Width == 0 && width > 0 {
		opts.Width = width
	}
	var b strings.Builder
	if err := format.WriteANSIDocument(&b, m.doc, opts); err != nil {
		return err.Error()
	}
	return b.String()
}

func (m model) renderFooter() string {
	left := "↑/↓ scroll • g/G top/bottom • q quit"
	right := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.viewport.View() + "\n" + m.renderFooter()
}
