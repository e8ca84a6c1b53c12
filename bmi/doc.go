// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bmi validates raw height/weight text and computes Body Mass Index.

# Unit Modes

Two measurement systems are supported:

	Metric   ("mkg")   height in meters, weight in kilograms
	Imperial ("ftlbs") height in feet,   weight in pounds

Raw values are divided by a conversion factor to reach meters and kilograms:

	         height  weight
	mkg      1.0     1.0
	ftlbs    3.28    2.2

# Calculation

	result, err := bmi.Calculate("1.8", "70", bmi.Metric)
	// result.Value ≈ 21.6049

Calculate runs Validate, converts both axes and applies weight / height².
The value is not rounded or clamped.

# Validation

Input is rejected when a field is empty or not a finite number, when weight
is <= 0, or when height is < 0. Height of exactly zero is accepted and yields
an infinite result; use Result.Finite to detect it.

Every rejection matches ErrInvalidInput:

	if errors.Is(err, bmi.ErrInvalidInput) {
		show(bmi.Message(err))
	}
*/
package bmi
