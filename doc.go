// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly BMI server.

Quickly BMI computes Body Mass Index from height and weight entered in
metric (meters/kg) or imperial (feet/lbs) units.

# Starting the Server

	go run .

Or with flags:

	go run . -p 3318 -log-format json

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - CORS_ORIGIN (-origin): Allowed CORS origin
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - LOG_FORMAT (-log-format): text or json

Values may also come from a .env file (-env).

# Architecture

  - bmi: validation, unit conversion and the BMI formula
  - form: state of the single-screen form
  - handlers: JSON API and HTML form handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing
  - logging: slog setup
  - server: listener lifecycle

A terminal front end lives in cmd/bmi.
*/
package main
