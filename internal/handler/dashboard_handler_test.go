package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

func TestDashboardHandler(t *testing.T) {
	svc := service.NewDashboardService(42, 7)
	h := NewDashboardHandler(svc)
	fixed := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	want := svc.Generate(fixed)
	assert.Equal(t, want.KPIs, got.KPIs)
	assert.Equal(t, want.Products, got.Products)
	assert.Len(t, got.Daily, 7)

	rec = httptest.NewRecorder()
	h.GetKPIs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/kpis", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var kpis domain.KPIs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.Equal(t, want.KPIs, kpis)
}
