package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hara602/netSentry/internal/model"
	"github.com/Hara602/netSentry/internal/monitor"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("160")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Controller 界面上的三个动作
type Controller interface {
	Start() error
	OpenLogs() error
	ClearLogs() error
}

type clearRowsMsg struct{}

type appendRowMsg struct {
	row table.Row
}

type tuiModel struct {
	ctrl    Controller
	table   table.Model
	rows    []table.Row
	running bool
	message string
	isError bool
}

func newModel(ctrl Controller) tuiModel {
	columns := []table.Column{
		{Title: "Process", Width: 24},
		{Title: "PID", Width: 8},
		{Title: "Local IP", Width: 40},
		{Title: "Local Port", Width: 10},
		{Title: "Protocol", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	return tuiModel{ctrl: ctrl, table: t}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			err := m.ctrl.Start()
			switch {
			case err == nil:
				m.running = true
				m.setStatus("Monitoring started", nil)
			case errors.Is(err, monitor.ErrAlreadyRunning):
				m.running = true
				m.setStatus("", err)
			default:
				m.setStatus("", err)
			}
			return m, nil
		case "o":
			m.setStatus("Log file opened", m.ctrl.OpenLogs())
			return m, nil
		case "c":
			m.setStatus("Log file cleared", m.ctrl.ClearLogs())
			return m, nil
		}
	case clearRowsMsg:
		m.rows = nil
		m.table.SetRows(nil)
		return m, nil
	case appendRowMsg:
		m.rows = append(m.rows, msg.row)
		m.table.SetRows(m.rows)
		return m, nil
	case tea.WindowSizeMsg:
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *tuiModel) setStatus(ok string, err error) {
	if err != nil {
		m.message = "Error: " + err.Error()
		m.isError = true
		return
	}
	m.message = ok
	m.isError = false
}

func (m tuiModel) View() string {
	var b strings.Builder

	title := "NetSentry: network activity"
	if m.running {
		title += " (RUNNING)"
	} else {
		title += " (STOPPED)"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(baseStyle.Render(m.table.View()) + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(" %d connections", len(m.rows))) + "\n")

	if m.message != "" {
		style := statusStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.message) + "\n")
	}

	b.WriteString(helpStyle.Render("\n  s: start • o: open logs • c: clear logs • q: quit") + "\n")
	return b.String()
}

// Program 终端界面, 同时实现 monitor.View.
// 表格只在 bubbletea 的事件循环中修改.
type Program struct {
	p *tea.Program
}

func NewProgram(ctrl Controller, opts ...tea.ProgramOption) *Program {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Program{p: tea.NewProgram(newModel(ctrl), opts...)}
}

func (p *Program) Clear() {
	p.p.Send(clearRowsMsg{})
}

func (p *Program) Append(c model.Connection) {
	p.p.Send(appendRowMsg{row: table.Row(c.Row())})
}

// Run 阻塞直到用户退出
func (p *Program) Run() error {
	_, err := p.p.Run()
	return err
}

var _ monitor.View = (*Program)(nil)
