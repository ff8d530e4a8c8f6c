package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hydrostat/internal/config"
	"github.com/san-kum/hydrostat/internal/vessel"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	historyCapacity = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the Bubble Tea program state: the vessel model plus the canvas
// and imbalance history it is rendered from.
type Model struct {
	cfg       *config.Config
	model     *vessel.Model
	canvas    *Canvas
	running   bool
	imbalance []float64
}

func NewModel(cfg *config.Config) Model {
	m := Model{
		cfg:       cfg,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		running:   true,
		imbalance: make([]float64, 0, historyCapacity),
	}
	m.model = newVessel(cfg)
	return m
}

func newVessel(cfg *config.Config) *vessel.Model {
	v := vessel.New(cfg.Vessel())
	v.ApplyPressureDelta(cfg.ExternalPressure)
	return v
}

// Run starts the terminal live view and blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.model = newVessel(m.cfg)
			m.imbalance = m.imbalance[:0]
		// Terminal key-repeat supplies the sustained-press behavior.
		case "+", "=", "up", "k":
			m.model.ApplyPressureDelta(m.cfg.PressureStep)
		case "-", "_", "down", "j":
			m.model.ApplyPressureDelta(-m.cfg.PressureStep)
		}
	case TickMsg:
		if m.running {
			m.model.Tick()
			diff := m.model.LeftPressure() - m.model.RightPressure()
			if diff < 0 {
				diff = -diff
			}
			m.imbalance = append(m.imbalance, diff)
			if len(m.imbalance) > historyCapacity {
				m.imbalance = m.imbalance[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// project maps normalized [-1,1] coordinates (y up) onto the canvas
// sub-pixel grid (y down).
func (m *Model) project(v vessel.Vec2) (int, int) {
	subW, subH := m.canvas.Width*2, m.canvas.Height*4
	px := int((v.X + 1) / 2 * float64(subW-1))
	py := int((1 - v.Y) / 2 * float64(subH-1))
	return px, py
}

func (m *Model) fillQuad(topLeft, bottomRight vessel.Vec2) {
	x0, y0 := m.project(topLeft)
	x1, y1 := m.project(bottomRight)
	m.canvas.FillRect(x0, y0, x1, y1)
}

func (m *Model) draw() {
	m.canvas.Clear()

	big, small := &m.model.Big, &m.model.Small

	m.fillQuad(big.TopLeft, big.BottomRight)
	m.fillQuad(small.TopLeft, small.BottomRight)

	// Connecting tube.
	m.fillQuad(vessel.Vec2{X: big.BottomRight.X, Y: big.BottomRight.Y + 0.02}, small.BottomLeft)

	// Piston plate and rod over the big side.
	m.fillQuad(vessel.Vec2{X: big.TopLeft.X, Y: big.TopLeft.Y + 0.1}, vessel.Vec2{X: big.TopRight.X, Y: big.TopLeft.Y + 0.06})
	center := (big.TopLeft.X + big.TopRight.X) / 2
	rx, ry := m.project(vessel.Vec2{X: center, Y: big.TopLeft.Y + 0.1})
	tx, ty := m.project(vessel.Vec2{X: center, Y: 1.0})
	m.canvas.DrawLine(rx, ry, tx, ty)
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("HYDROSTAT") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.imbalance) > 1 {
		chart := asciigraph.Plot(m.imbalance,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("pressure imbalance"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Piston") + valueStyle.Render(fmt.Sprintf("%+.2f", m.model.ExternalPressure)) + "\n")
	s.WriteString(labelStyle.Render("Left P") + valueStyle.Render(fmt.Sprintf("%.3f", m.model.LeftPressure())) + "\n")
	s.WriteString(labelStyle.Render("Right P") + valueStyle.Render(fmt.Sprintf("%.3f", m.model.RightPressure())) + "\n")
	s.WriteString(labelStyle.Render("Big h") + valueStyle.Render(fmt.Sprintf("%.3f", m.model.Big.Height)) + "\n")
	s.WriteString(labelStyle.Render("Small h") + valueStyle.Render(fmt.Sprintf("%.3f", m.model.Small.Height)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\n+/-:Piston SP:Pause\nR:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
