// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/cliparse"
	"github.com/danielhkuo/quickly-bmi/middleware"
	"github.com/danielhkuo/quickly-bmi/models"
)

type CalculateHandler struct {
	cfg  cliparse.Config
	calc bmi.Calculator
	now  func() time.Time
}

func NewCalculateHandler(cfg cliparse.Config) *CalculateHandler {
	return &CalculateHandler{cfg: cfg, calc: bmi.NewCalculator(), now: time.Now}
}

// Calculate handles POST /bmi
func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.respond(w, r, req)
}

// CalculateQuery handles GET /bmi?height=&weight=&units=
func (h *CalculateHandler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.respond(w, r, models.CalculateRequest{
		Height: q.Get("height"),
		Weight: q.Get("weight"),
		Units:  q.Get("units"),
	})
}

// ListUnits handles GET /units
func (h *CalculateHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	resp := models.UnitModesResponse{}
	for _, mode := range bmi.UnitModes() {
		resp.Units = append(resp.Units, models.UnitModeInfo{
			Mode:       mode.String(),
			HeightUnit: mode.HeightUnit(),
			WeightUnit: mode.WeightUnit(),
			Default:    mode == bmi.Metric,
		})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *CalculateHandler) respond(w http.ResponseWriter, r *http.Request, req models.CalculateRequest) {
	mode := bmi.Metric
	if req.Units != "" {
		var err error
		mode, err = bmi.ParseUnitMode(req.Units)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "units must be one of: mkg, ftlbs")
			return
		}
	}

	result, err := h.calc.Calculate(req.Height, req.Weight, mode)
	if err != nil {
		if errors.Is(err, bmi.ErrInvalidInput) {
			slog.Debug("calculation rejected", "reason", err, "request_id", middleware.RequestID(r.Context()))
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, bmi.Message(err))
			return
		}
		slog.Error("calculation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to calculate")
		return
	}

	resp := models.NewCalculateResponse(result, h.now())
	if !resp.Finite {
		slog.Warn("non-finite bmi", "height", req.Height, "weight", req.Weight, "units", mode)
	}

	slog.Info("bmi calculated", "calculation_id", resp.ID, "units", mode, "display", resp.Display)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
