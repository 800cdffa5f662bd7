package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/growthsim/internal/econ"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps the recurrence one period per frame and renders the
// unfolding path next to a stats pane.
type Model struct {
	model     econ.Model
	k, k0     float64
	t         int
	horizon   int
	fps       int
	history   []float64
	running   bool
	params    map[string]float64
	paramKeys []string
	selected  int
}

func NewModel(m econ.Model, k0 float64, horizon, fps int) Model {
	params := make(map[string]float64)
	if c, ok := m.(econ.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if fps <= 0 {
		fps = 30
	}

	return Model{
		model:     m,
		k:         k0,
		k0:        k0,
		horizon:   horizon,
		fps:       fps,
		history:   append(make([]float64, 0, historyCapacity), k0),
		running:   true,
		params:    params,
		paramKeys: keys,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case TickMsg:
		if m.running && m.t < m.horizon-1 {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	next := m.model.Step(m.k)
	if math.IsNaN(next) || math.IsInf(next, 0) {
		m.running = false
		return
	}
	m.k = next
	m.t++
	m.history = append(m.history, m.k)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.k = m.k0
	m.t = 0
	m.history = append(m.history[:0], m.k0)
	m.running = true
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	c, ok := m.model.(econ.Configurable)
	if !ok {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	if err := c.SetParam(key, newVal); err != nil {
		return
	}
	m.params[key] = newVal
}

func (m Model) View() string {
	graph := asciigraph.Plot(m.history,
		asciigraph.Height(14),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("capital, period %d/%d", m.t, m.horizon-1)),
	)

	var stats strings.Builder
	stats.WriteString(headerStyle.Render(m.model.Name()) + "\n")
	stats.WriteString(labelStyle.Render("period") + valueStyle.Render(fmt.Sprintf("%d", m.t)) + "\n")
	stats.WriteString(labelStyle.Render("capital") + valueStyle.Render(fmt.Sprintf("%.6f", m.k)) + "\n")

	if ss, ok := m.model.(interface{ SteadyState() float64 }); ok {
		kstar := ss.SteadyState()
		stats.WriteString(labelStyle.Render("steady state") + valueStyle.Render(fmt.Sprintf("%.6f", kstar)) + "\n")
		stats.WriteString(labelStyle.Render("gap") + valueStyle.Render(fmt.Sprintf("%.2e", math.Abs(m.k-kstar))) + "\n")
	}

	stats.WriteString("\n")
	for i, key := range m.paramKeys {
		line := fmt.Sprintf("%s = %.4f", key, m.params[key])
		if i == m.selected {
			stats.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			stats.WriteString(valueStyle.Render("  "+line) + "\n")
		}
	}

	state := "running"
	if !m.running {
		state = "paused"
	}
	stats.WriteString("\n" + valueStyle.Render(state))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		graphStyle.Render(graph),
		statsStyle.Render(stats.String()),
	)

	help := helpStyle.Render("space pause · r reset · tab select param · up/down adjust · q quit")
	return body + "\n" + help
}
