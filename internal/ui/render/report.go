// Package render turns reports and dashboards into styled terminal text.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/theme"
)

func Report(r service.Report) string {
	var b strings.Builder
	if r.Computed {
		b.WriteString(theme.Body.Render("Your BMI is: " + r.Display))
		b.WriteString("\n")
	}
	b.WriteString(Message(r.Level, r.Message))
	return b.String()
}

// Message renders msg in the box that matches level.
func Message(level service.Level, msg string) string {
	return boxFor(level).Render(msg)
}

func boxFor(level service.Level) lipgloss.Style {
	switch level {
	case service.LevelSuccess:
		return theme.SuccessBox
	case service.LevelWarning:
		return theme.WarningBox
	case service.LevelError:
		return theme.ErrorBox
	default:
		return theme.InfoBox
	}
}
