package handler

import (
	"net/http"
	"time"

	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
	now func() time.Time
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc, now: time.Now}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Generate(h.now()))
}

func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Generate(h.now()).KPIs)
}
