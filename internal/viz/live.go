package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/workload"
)

const (
	maxSlots        = 40
	historyCapacity = 600
	chartWidth      = 60
	chartHeight     = 8
)

type TickMsg time.Time

// Model holds the replay position and the array being replayed.
type Model struct {
	runner   *workload.Runner
	cfg      *config.Config
	ops      []config.OpConfig
	array    *dynarray.Array[workload.Item]
	next     int
	history  []workload.Step
	running  bool
	showHelp bool
	interval time.Duration
}

// NewModel prepares a paused-at-start replay of cfg, advancing one op per
// interval while running.
func NewModel(runner *workload.Runner, cfg *config.Config, interval time.Duration) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	a, err := workload.NewArray(cfg)
	if err != nil {
		return Model{}, err
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return Model{
		runner:   runner,
		cfg:      cfg,
		ops:      workload.Plan(cfg),
		array:    a,
		history:  make([]workload.Step, 0, historyCapacity),
		running:  true,
		interval: interval,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Done reports whether every op has been applied.
func (m Model) Done() bool { return m.next >= len(m.ops) }

// History returns the steps applied so far.
func (m Model) History() []workload.Step { return m.history }

// Update handles input events and advances the replay.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n", "right":
			m.running = false
			m.step()
		case "r":
			m.reset()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
			if m.Done() {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// step applies the next op, if any.
func (m *Model) step() {
	if m.Done() {
		return
	}
	st, _ := m.runner.Apply(m.array, m.ops[m.next])
	st.Index = m.next
	m.next++

	m.history = append(m.history, st)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// reset restarts the scenario on a fresh array.
func (m *Model) reset() {
	a, err := workload.NewArray(m.cfg)
	if err != nil {
		return
	}
	m.array = a
	m.next = 0
	m.history = m.history[:0]
	m.running = true
}

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle().Render(strings.ToUpper(m.cfg.Name)) + "\n")

	status := "RUNNING"
	switch {
	case m.Done():
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  op %d/%d\n\n", status, m.next, len(m.ops)))

	s.WriteString(panelStyle.Render(RenderSlots(m.array, maxSlots)) + "\n")
	s.WriteString(labelStyle().Render("size") + valueStyle().Render(fmt.Sprintf("%d", m.array.Len())) + "\n")
	s.WriteString(labelStyle().Render("capacity") + valueStyle().Render(fmt.Sprintf("%d", m.array.Cap())) + "\n")
	s.WriteString(labelStyle().Render("fill") + FillBar(m.array.Len(), m.array.Cap(), 30) + "\n\n")

	if n := len(m.history); n > 0 {
		last := m.history[n-1]
		s.WriteString(labelStyle().Render("last") + valueStyle().Render(describe(last)) + "\n")
		if last.Err != "" {
			s.WriteString(labelStyle().Render("error") + errorStyle().Render(last.Err) + "\n")
		}
	}

	if chart := CapacityChart(m.history, chartWidth, chartHeight); chart != "" {
		s.WriteString("\n" + chart + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle().Render("space pause/resume · n step · r restart · t theme (" + CurrentTheme.Name + ") · q quit"))
	} else {
		s.WriteString(helpStyle().Render("? help"))
	}
	return s.String()
}

func describe(st workload.Step) string {
	switch st.Op {
	case config.OpAdd:
		return fmt.Sprintf("add(%d)", st.Value)
	case config.OpInsert, config.OpSet:
		return fmt.Sprintf("%s(%d, %d)", st.Op, st.Arg, st.Value)
	case config.OpGet:
		if st.Err != "" {
			return fmt.Sprintf("get(%d)", st.Arg)
		}
		return fmt.Sprintf("get(%d) = %d", st.Arg, st.Value)
	case config.OpRemove:
		return fmt.Sprintf("remove(%d)", st.Arg)
	case config.OpSort:
		return fmt.Sprintf("sort(%s)", st.Order)
	}
	return st.Op + "()"
}
