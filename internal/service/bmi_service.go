package service

import (
	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
)

// Level is the styling hint the presentation layer attaches to a report.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const (
	MessageUnderweight = "You are below the ideal weight."
	MessageNormal      = "You are at the ideal weight."
	MessageOverweight  = "You are above the ideal weight."
	MessagePrompt      = "Enter a positive weight and height."
)

type Report struct {
	Computed bool            `json:"computed"`
	Weight   float64         `json:"weight"`
	Height   float64         `json:"height"`
	Index    float64         `json:"index"`
	Display  string          `json:"display,omitempty"`
	Category domain.Category `json:"category,omitempty"`
	Level    Level           `json:"level"`
	Message  string          `json:"message"`
}

type BMIService struct{}

func NewBMIService() *BMIService {
	return &BMIService{}
}

// Evaluate classifies m once and reuses the result for both the display
// value and the message.
func (s *BMIService) Evaluate(m domain.Measurement) Report {
	report := Report{Weight: m.Weight, Height: m.Height}

	result, ok := m.Classify()
	if !ok {
		report.Level = LevelInfo
		report.Message = MessagePrompt
		return report
	}

	report.Computed = true
	report.Index = result.Index
	report.Display = result.Display()
	report.Category = result.Category
	report.Level, report.Message = describe(result.Category)
	return report
}

func describe(c domain.Category) (Level, string) {
	switch c {
	case domain.CategoryUnderweight:
		return LevelWarning, MessageUnderweight
	case domain.CategoryNormal:
		return LevelSuccess, MessageNormal
	default:
		return LevelError, MessageOverweight
	}
}
