// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/cliparse"
	"github.com/danielhkuo/quickly-bmi/form"
)

// Form fields posted by the page
const (
	fieldUnits       = "units"
	fieldHeight      = "height"
	fieldWeight      = "weight"
	fieldSelectUnits = "select_units"
	fieldLastUnits   = "last_units"
	fieldLastHeight  = "last_height"
	fieldLastWeight  = "last_weight"
)

// FormHandler serves the single-screen HTML calculator.
// The screen state round-trips through the page; nothing is kept server-side.
type FormHandler struct {
	cfg   cliparse.Config
	pages pageRenderer
}

// NewFormHandler panics if the embedded templates cannot be loaded
func NewFormHandler(cfg cliparse.Config) *FormHandler {
	pages, err := newPageRenderer()
	if err != nil {
		panic(err)
	}
	return &FormHandler{cfg: cfg, pages: pages}
}

// Show handles GET /
func (h *FormHandler) Show(w http.ResponseWriter, r *http.Request) {
	s := form.New()
	if u := r.URL.Query().Get(fieldUnits); u != "" {
		mode, err := bmi.ParseUnitMode(u)
		if err != nil {
			http.Error(w, "units must be one of: mkg, ftlbs", http.StatusBadRequest)
			return
		}
		s.SelectUnits(mode)
	}
	h.render(w, s)
}

// Calculate handles POST /calculate
func (h *FormHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*form.State).Calculate)
}

// Reset handles POST /reset
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*form.State).Reset)
}

// Dismiss handles POST /dismiss
func (h *FormHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, (*form.State).ClearError)
}

// SelectUnits handles POST /units
func (h *FormHandler) SelectUnits(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(s *form.State) {
		mode, err := bmi.ParseUnitMode(r.PostFormValue(fieldSelectUnits))
		if err != nil {
			return
		}
		s.SelectUnits(mode)
	})
}

func (h *FormHandler) apply(w http.ResponseWriter, r *http.Request, action func(*form.State)) {
	s, err := stateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	action(s)
	h.render(w, s)
}

func (h *FormHandler) render(w http.ResponseWriter, s *form.State) {
	page, err := h.pages.Render(pageTemplateName, newPageData(s))
	if err != nil {
		slog.Error("failed to render form", "error", err)
		http.Error(w, "Failed to render form", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, page)
}

// stateFromRequest rebuilds the screen from posted fields. The displayed
// result is recomputed from the inputs that produced it, so it keeps the
// units it was calculated in.
func stateFromRequest(r *http.Request) (*form.State, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	s := form.New()
	if u := r.PostFormValue(fieldUnits); u != "" {
		mode, err := bmi.ParseUnitMode(u)
		if err != nil {
			return nil, err
		}
		s.SelectUnits(mode)
	}
	s.Height = r.PostFormValue(fieldHeight)
	s.Weight = r.PostFormValue(fieldWeight)

	if u := r.PostFormValue(fieldLastUnits); u != "" {
		mode, err := bmi.ParseUnitMode(u)
		if err != nil {
			return nil, err
		}
		result, err := bmi.Calculate(r.PostFormValue(fieldLastHeight), r.PostFormValue(fieldLastWeight), mode)
		if err == nil {
			s.Result = &result
		}
	}

	return s, nil
}
