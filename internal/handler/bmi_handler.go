package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/middleware"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

var ErrInvalidNumber = errors.New("invalid number")

type BMIHandler struct {
	svc *service.BMIService
}

func NewBMIHandler(svc *service.BMIService) *BMIHandler {
	return &BMIHandler{svc: svc}
}

// Get reads weight and height from the query string. A missing parameter
// counts as not entered yet.
func (h *BMIHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	weight, err := parseMeasure(q.Get("weight"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid weight")
		return
	}
	height, err := parseMeasure(q.Get("height"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid height")
		return
	}

	h.respond(w, r, domain.Measurement{Weight: weight, Height: height})
}

func (h *BMIHandler) Post(w http.ResponseWriter, r *http.Request) {
	var m domain.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.respond(w, r, m)
}

func (h *BMIHandler) respond(w http.ResponseWriter, r *http.Request, m domain.Measurement) {
	report := h.svc.Evaluate(m)
	if math.IsInf(report.Index, 0) {
		writeError(w, http.StatusUnprocessableEntity, "bmi out of range")
		return
	}

	if sub := middleware.SubjectFrom(r.Context()); sub != "" {
		log.Printf("[bmi] subject=%s computed=%t category=%s", sub, report.Computed, report.Category)
	}
	writeJSON(w, http.StatusOK, report)
}

func parseMeasure(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}
