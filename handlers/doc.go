// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the BMI calculator.

# Handler Types

  - CalculateHandler: JSON calculation API and unit listing
  - FormHandler: server-rendered single-screen form

Handlers are created via constructor functions that accept Config:

	calcHandler := handlers.NewCalculateHandler(cfg)

# JSON API

	POST /bmi   {"height":"1.8","weight":"70","units":"mkg"}
	GET  /bmi   ?height=1.8&weight=70&units=mkg
	GET  /units

Height and weight are sent as text, exactly as entered. Responses:

  - 200 with the BMI, canonical meters/kilograms and a display string
  - 422 with "Please enter a valid (non-negative) input numbers!" when
    validation fails
  - 400 for malformed JSON or an unknown unit mode

A zero height passes validation; the response then has "bmi": null and
"finite": false.

# HTML Form

The form posts back its whole state (units, inputs, and the inputs behind
the displayed result) on every action, so no server-side session exists:

	POST /calculate → form.State.Calculate
	POST /reset     → form.State.Reset
	POST /units     → form.State.SelectUnits
	POST /dismiss   → form.State.ClearError
*/
package handlers
