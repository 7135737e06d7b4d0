package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

func newTestForm() Model {
	return New(service.NewBMIService())
}

func TestInitialReportIsPrompt(t *testing.T) {
	m := newTestForm()
	r := m.Report()
	assert.False(t, r.Computed)
	assert.Equal(t, service.MessagePrompt, r.Message)
	assert.Contains(t, m.render(), service.MessagePrompt)
}

func TestReportFollowsValues(t *testing.T) {
	tests := []struct {
		weight, height string
		computed       bool
		category       domain.Category
	}{
		{"70", "1.75", true, domain.CategoryNormal},
		{"50", "1,80", true, domain.CategoryUnderweight},
		{"100", "1.70", true, domain.CategoryOverweight},
		{"0", "1.70", false, ""},
		{"70", "", false, ""},
		{"abc", "1.70", false, ""},
	}

	for _, tt := range tests {
		m := newTestForm()
		m.SetValues(tt.weight, tt.height)
		r := m.Report()
		assert.Equal(t, tt.computed, r.Computed, "%s/%s", tt.weight, tt.height)
		assert.Equal(t, tt.category, r.Category, "%s/%s", tt.weight, tt.height)
	}
}

func TestViewShowsIndex(t *testing.T) {
	m := newTestForm()
	m.SetValues("70", "1.75")
	out := m.render()
	assert.Contains(t, out, "Your BMI is: 22.86")
	assert.Contains(t, out, service.MessageNormal)
}

func TestFocusCycles(t *testing.T) {
	var model tea.Model = newTestForm()

	model, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, fieldHeight, model.(Model).focus)

	model, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, fieldWeight, model.(Model).focus)

	model, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, fieldHeight, model.(Model).focus)
}

func TestEscQuits(t *testing.T) {
	_, cmd := newTestForm().Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
