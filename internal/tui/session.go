// Package tui is the interactive front end over the solver kernel. It
// owns the one live spec and the solver lifecycle; the kernel packages
// stay pure and see only snapshots of it.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/torsim/internal/flight"
	"github.com/san-kum/torsim/internal/launcher"
	"github.com/san-kum/torsim/internal/scenario"
	"github.com/san-kum/torsim/internal/solver"
)

var (
	title   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	marker  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	bright  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	value   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keycap  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// Solver lifecycle. The kernel is stateless; these phases belong to
// the session. Any parameter edit or fresh target drops back to idle.
const (
	phaseIdle = iota
	phaseCalculating
	phaseLocked
)

type param struct {
	name string
	step float64
	get  func(*launcher.Spec) float64
	set  func(*launcher.Spec, float64)
}

var params = []param{
	{"stiffness", 100, func(s *launcher.Spec) float64 { return s.Stiffness }, func(s *launcher.Spec, v float64) { s.Stiffness = v }},
	{"arm length", 0.5, func(s *launcher.Spec) float64 { return s.ArmLength }, func(s *launcher.Spec, v float64) { s.ArmLength = v }},
	{"arm mass", 1, func(s *launcher.Spec) float64 { return s.ArmMass }, func(s *launcher.Spec, v float64) { s.ArmMass = v }},
	{"proj mass", 1, func(s *launcher.Spec) float64 { return s.ProjectileMass }, func(s *launcher.Spec, v float64) { s.ProjectileMass = v }},
	{"angle", 1, func(s *launcher.Spec) float64 { return s.LaunchAngle }, func(s *launcher.Spec, v float64) { s.LaunchAngle = v }},
	{"target", 10, func(s *launcher.Spec) float64 { return s.TargetRange }, func(s *launcher.Spec, v float64) { s.TargetRange = v }},
	{"wind", 1, func(s *launcher.Spec) float64 { return s.WindSpeed }, func(s *launcher.Spec, v float64) { s.WindSpeed = v }},
	{"drag", 0.01, func(s *launcher.Spec) float64 { return s.DragCoeff }, func(s *launcher.Spec, v float64) { s.DragCoeff = v }},
}

type solveDoneMsg struct{ res solver.Result }

type session struct {
	spec    launcher.Spec
	gen     *scenario.Generator
	phase   int
	cursor  int
	editing bool
	editBuf string
	result  *solver.Result
	tel     *flight.Telemetry
	path    []flight.Sample
	status  string
	width   int
	height  int
}

func newSession(spec launcher.Spec, seed int64) *session {
	return &session{spec: spec, gen: scenario.NewGenerator(seed), width: 80, height: 24}
}

// Run starts the interactive session. Blocks until quit.
func Run(spec launcher.Spec, seed int64) error {
	return tea.NewProgram(newSession(spec, seed), tea.WithAltScreen()).Start()
}

func (m *session) Init() tea.Cmd { return nil }

func (m *session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case solveDoneMsg:
		// Commit the result into the live spec; the session holds
		// LOCKED until something invalidates it.
		res := msg.res
		m.result = &res
		m.spec.Stiffness = res.Stiffness
		m.spec.LaunchAngle = res.Angle
		m.phase = phaseLocked
		if res.AutoCorrected {
			m.status = fmt.Sprintf("solution locked, angle corrected to %.0f°", res.Angle)
		} else {
			m.status = "solution locked"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *session) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseCalculating {
		// No edits while the search runs; the kernel gives no
		// partial results and no cancellation.
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.editing {
		return m.editKey(msg), nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", params[m.cursor].get(&m.spec))
	case "left", "h":
		m.adjust(-params[m.cursor].step)
	case "right", "l":
		m.adjust(params[m.cursor].step)
	case "f":
		m.fire()
	case "s":
		if err := m.spec.Validate(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.phase = phaseCalculating
		m.status = "calculating..."
		spec := m.spec
		return m, func() tea.Msg { return solveDoneMsg{solver.Solve(spec)} }
	case "n":
		m.spec = m.gen.Next(m.spec)
		m.invalidate()
		m.status = fmt.Sprintf("new engagement: target %.0f m, wind %+.1f m/s", m.spec.TargetRange, m.spec.WindSpeed)
	}
	return m, nil
}

func (m *session) editKey(msg tea.KeyMsg) tea.Model {
	switch msg.String() {
	case "enter":
		var val float64
		fmt.Sscanf(m.editBuf, "%f", &val)
		params[m.cursor].set(&m.spec, val)
		m.editing, m.editBuf = false, ""
		m.invalidate()
	case "escape":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m
}

func (m *session) adjust(delta float64) {
	p := params[m.cursor]
	p.set(&m.spec, p.get(&m.spec)+delta)
	m.invalidate()
}

// invalidate drops any locked solution after an input change.
func (m *session) invalidate() {
	m.phase = phaseIdle
	m.result = nil
}

func (m *session) fire() {
	if err := m.spec.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	m.path = flight.Path(launcher.DeriveRelease(m.spec), m.spec)
	tel := flight.Summarize(m.path)
	m.tel = &tel
	m.status = fmt.Sprintf("impact at %.1f m (target %.0f m, miss %+.1f m)",
		tel.Range, m.spec.TargetRange, tel.Range-m.spec.TargetRange)
}

func (m *session) View() string {
	var b strings.Builder
	b.WriteString("\n  " + title.Render("TORSIM") + "  " + sub.Render("torsion launcher ballistic solver") + "\n")
	b.WriteString("  " + sub.Render(strings.Repeat("─", 44)) + "\n\n")

	for i, p := range params {
		valStr := fmt.Sprintf("%10.2f", p.get(&m.spec))
		if m.editing && i == m.cursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", marker.Render("▸"),
				bright.Render(fmt.Sprintf("%-10s", p.name)), value.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				dim.Render(fmt.Sprintf("%-10s", p.name)), dimmer.Render(valStr)))
		}
	}

	b.WriteString("\n  " + m.phaseLine() + "\n")
	if m.status != "" {
		b.WriteString("  " + sub.Render(m.status) + "\n")
	}
	if m.result != nil {
		b.WriteString(m.resultView())
	}
	if m.tel != nil {
		b.WriteString(m.telemetryView())
	}
	if len(m.path) > 1 {
		b.WriteString("\n" + m.plotView() + "\n")
	}

	b.WriteString("\n  " + keycap.Render("j/k") + dim.Render(" select  ") +
		keycap.Render("h/l") + dim.Render(" adjust  ") +
		keycap.Render("enter") + dim.Render(" edit  ") +
		keycap.Render("f") + dim.Render(" fire  ") +
		keycap.Render("s") + dim.Render(" solve  ") +
		keycap.Render("n") + dim.Render(" new target  ") +
		keycap.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

func (m *session) phaseLine() string {
	switch m.phase {
	case phaseCalculating:
		return yellow.Render("● CALCULATING")
	case phaseLocked:
		return green.Render("● LOCKED")
	default:
		return dim.Render("● IDLE")
	}
}

func (m *session) resultView() string {
	r := m.result
	line := fmt.Sprintf("stiffness %.0f  angle %.0f°  range %.1f m  error %.2f m", r.Stiffness, r.Angle, r.Range, r.Err)
	out := "  " + green.Render(line) + "\n"
	if r.AutoCorrected {
		out += "  " + magenta.Render("angle auto-corrected") + "\n"
	}
	return out
}

func (m *session) telemetryView() string {
	t := m.tel
	return "  " + sub.Render(fmt.Sprintf("apex %.1f m  flight %.2f s  impact speed %.1f m/s",
		t.Apex, t.FlightTime, t.ImpactSpeed)) + "\n"
}

func (m *session) plotView() string {
	width := m.width - 12
	if width < 20 {
		width = 20
	}
	heights := make([]float64, 0, width)
	stride := len(m.path) / width
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(m.path); i += stride {
		heights = append(heights, m.path[i].Y)
	}
	return asciigraph.Plot(heights, asciigraph.Height(10), asciigraph.Offset(4), asciigraph.Precision(0))
}
