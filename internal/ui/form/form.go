// Package form is the interactive BMI calculator. Every edit re-evaluates
// the measurement; nothing is kept between evaluations.
package form

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/render"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/theme"
)

const (
	fieldWeight = iota
	fieldHeight
	fieldCount
)

var labels = [fieldCount]string{
	fieldWeight: "Enter your weight (kg):",
	fieldHeight: "Enter your height (m):",
}

type Model struct {
	svc    *service.BMIService
	inputs [fieldCount]textinput.Model
	focus  int
}

func New(svc *service.BMIService) Model {
	m := Model{svc: svc}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 8
		m.inputs[i] = ti
	}
	m.inputs[fieldWeight].Placeholder = "0.0"
	m.inputs[fieldHeight].Placeholder = "0.00"
	m.inputs[fieldWeight].Focus()
	return m
}

// SetValues prefills the inputs, e.g. from command-line flags.
func (m *Model) SetValues(weight, height string) {
	m.inputs[fieldWeight].SetValue(weight)
	m.inputs[fieldHeight].SetValue(height)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// Report evaluates the current input values. Unparseable or empty fields
// count as not entered.
func (m Model) Report() service.Report {
	return m.svc.Evaluate(domain.Measurement{
		Weight: parse(m.inputs[fieldWeight].Value()),
		Height: parse(m.inputs[fieldHeight].Value()),
	})
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("BMI Calculator"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := theme.Blurred.Render(labels[i])
		if i == m.focus {
			label = theme.Focused.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(render.Report(m.Report()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("tab/↑↓ switch field · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func parse(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return 0
	}
	return v
}

// Run starts the form on the terminal.
func Run(svc *service.BMIService, weight, height string) error {
	m := New(svc)
	m.SetValues(weight, height)
	_, err := tea.NewProgram(m).Run()
	return err
}
