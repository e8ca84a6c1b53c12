// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - CalculateRequest: height, weight (raw text), units

# Response Types

  - CalculateResponse: id, bmi, display, finite, units, height_m, weight_kg, calculated_at
  - UnitModesResponse: supported unit modes and their labels
  - ErrorResponse: error, message

# Constructors

NewCalculateResponse turns a bmi.Result into the response shared by the
HTTP API and the CLI:

	resp := models.NewCalculateResponse(result, time.Now())
*/
package models
