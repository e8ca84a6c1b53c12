// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form holds the state of the BMI screen that sits in front of the
calculator.

	s := form.New()
	s.Height, s.Weight = "1.8", "70"
	s.Calculate()
	s.DisplayResult() // "21.6"

# Actions

  - Calculate: compute from the current fields, or raise the alert
  - Reset: clear height and weight text
  - SelectUnits: change the mode for the next calculation
  - ClearError: dismiss the alert

Both the HTML handlers and the terminal prompt drive a State.
*/
package form
