// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the BMI calculator.

# Route Registration

NewRouter returns the configured handler with all endpoints:

	handler := router.NewRouter(cfg)

# Endpoints

Health:

	GET /health

JSON API:

	POST /bmi    - Calculate from {"height","weight","units"}
	GET  /bmi    - Calculate from ?height=&weight=&units=
	GET  /units  - Supported unit modes and labels

HTML form:

	GET  /           - Empty form (?units=ftlbs to preselect)
	POST /calculate  - Calculate from the posted fields
	POST /reset      - Clear height and weight
	POST /units      - Switch unit mode for the next calculation
	POST /dismiss    - Acknowledge the validation alert

# Middleware

Every route is wrapped with middleware.WithLogging; the mux itself sits
behind middleware.CORS and middleware.WithRequestID.
*/
package router
