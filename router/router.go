// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-bmi/cliparse"
	"github.com/danielhkuo/quickly-bmi/handlers"
	"github.com/danielhkuo/quickly-bmi/middleware"
)

func NewRouter(cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	calcHandler := handlers.NewCalculateHandler(cfg)
	formHandler := handlers.NewFormHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API
	mux.HandleFunc("POST /bmi", middleware.WithLogging(calcHandler.Calculate))
	mux.HandleFunc("GET /bmi", middleware.WithLogging(calcHandler.CalculateQuery))
	mux.HandleFunc("GET /units", middleware.WithLogging(calcHandler.ListUnits))

	// HTML form
	mux.HandleFunc("GET /{$}", middleware.WithLogging(formHandler.Show))
	mux.HandleFunc("POST /calculate", middleware.WithLogging(formHandler.Calculate))
	mux.HandleFunc("POST /reset", middleware.WithLogging(formHandler.Reset))
	mux.HandleFunc("POST /units", middleware.WithLogging(formHandler.SelectUnits))
	mux.HandleFunc("POST /dismiss", middleware.WithLogging(formHandler.Dismiss))

	return middleware.WithRequestID(middleware.CORS(cfg.AllowedOrigin, mux))
}
