package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCalcText(t *testing.T) {
	out := runRoot(t, "calc", "--weight", "70", "--height", "1.75", "--json=false")
	assert.Contains(t, out, "Your BMI is: 22.86")
	assert.Contains(t, out, service.MessageNormal)
}

func TestCalcNoResult(t *testing.T) {
	out := runRoot(t, "calc", "--weight", "0", "--height", "1.70", "--json=false")
	assert.Contains(t, out, service.MessagePrompt)
	assert.NotContains(t, out, "Your BMI is")
}

func TestCalcJSON(t *testing.T) {
	out := runRoot(t, "calc", "--weight", "100", "--height", "1.70", "--json")
	var r service.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Computed)
	assert.Equal(t, "34.60", r.Display)
	assert.Equal(t, service.LevelError, r.Level)
}

func TestDashboardJSON(t *testing.T) {
	out := runRoot(t, "dashboard", "--seed", "3", "--days", "10", "--json")
	var d struct {
		Daily []json.RawMessage `json:"daily"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Daily, 10)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	rootCmd.SetArgs([]string{"token"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}

func TestTokenMints(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	out := runRoot(t, "token", "--subject", "kiosk")
	assert.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, out)
}
