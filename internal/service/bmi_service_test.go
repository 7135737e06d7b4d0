package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
)

func TestEvaluate(t *testing.T) {
	svc := NewBMIService()

	tests := []struct {
		name         string
		in           domain.Measurement
		wantComputed bool
		wantDisplay  string
		wantCategory domain.Category
		wantLevel    Level
		wantMessage  string
	}{
		{"normal", domain.Measurement{Weight: 70, Height: 1.75}, true, "22.86", domain.CategoryNormal, LevelSuccess, MessageNormal},
		{"underweight", domain.Measurement{Weight: 50, Height: 1.80}, true, "15.43", domain.CategoryUnderweight, LevelWarning, MessageUnderweight},
		{"overweight", domain.Measurement{Weight: 100, Height: 1.70}, true, "34.60", domain.CategoryOverweight, LevelError, MessageOverweight},
		{"zero weight", domain.Measurement{Weight: 0, Height: 1.70}, false, "", "", LevelInfo, MessagePrompt},
		{"zero height", domain.Measurement{Weight: 70, Height: 0}, false, "", "", LevelInfo, MessagePrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Evaluate(tt.in)
			assert.Equal(t, tt.wantComputed, got.Computed)
			assert.Equal(t, tt.wantDisplay, got.Display)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.in.Weight, got.Weight)
			assert.Equal(t, tt.in.Height, got.Height)
		})
	}
}

func TestEvaluateUsesUnroundedIndex(t *testing.T) {
	got := NewBMIService().Evaluate(domain.Measurement{Weight: 70, Height: 1.75})
	assert.InDelta(t, 22.857142857142858, got.Index, 1e-9)
	assert.Zero(t, NewBMIService().Evaluate(domain.Measurement{}).Index)
}

func TestEvaluateUnderflowingIndex(t *testing.T) {
	// height*height overflows, so the index is exactly zero but still computed.
	got := NewBMIService().Evaluate(domain.Measurement{Weight: 1e-300, Height: 1e200})
	assert.True(t, got.Computed)
	assert.Zero(t, got.Index)
	assert.Equal(t, "0.00", got.Display)
	assert.Equal(t, domain.CategoryUnderweight, got.Category)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"index":0`)
}
