// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bmi

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Factors holds the divisors that take a raw value to canonical units
type Factors struct {
	Height float64 // raw height / Height = meters
	Weight float64 // raw weight / Weight = kilograms
}

// Input is a height/weight pair that passed validation
type Input struct {
	Height float64
	Weight float64
}

// Result is a single computed index with the canonical values it came from
type Result struct {
	Value           float64
	HeightMeters    float64
	WeightKilograms float64
	Units           UnitMode
}

// Finite reports whether Value is a usable number.
// A zero height passes validation and divides by zero.
func (r Result) Finite() bool {
	return !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value)
}

// Calculator converts and computes BMI using a fixed conversion table
type Calculator struct {
	table map[UnitMode]Factors
}

var standardFactors = map[UnitMode]Factors{
	Metric:   {Height: 1.0, Weight: 1.0},
	Imperial: {Height: 3.28, Weight: 2.2},
}

// NewCalculator returns a Calculator with the standard metric/imperial table.
// The zero Calculator uses the same table.
func NewCalculator() Calculator {
	return Calculator{table: standardFactors}
}

func (c Calculator) factors(mode UnitMode) Factors {
	table := c.table
	if table == nil {
		table = standardFactors
	}
	if f, ok := table[mode]; ok {
		return f
	}
	// unknown modes are left unconverted
	return standardFactors[Metric]
}

var defaultCalculator = NewCalculator()

// Validate parses the raw text fields.
// Weight must be > 0; height must be >= 0 (zero is accepted).
func (c Calculator) Validate(heightText, weightText string) (Input, error) {
	height, err := parseField(Height, heightText)
	if err != nil {
		return Input{}, err
	}
	weight, err := parseField(Weight, weightText)
	if err != nil {
		return Input{}, err
	}

	if weight <= 0 {
		return Input{}, &ValidationError{Field: Weight, Reason: "must be greater than zero"}
	}
	if height < 0 {
		return Input{}, &ValidationError{Field: Height, Reason: "must not be negative"}
	}

	return Input{Height: height, Weight: weight}, nil
}

// Convert divides value by the mode's factor for axis.
// A mode outside Metric and Imperial converts with the metric factors (1.0);
// callers that accept modes from outside the package go through ParseUnitMode.
func (c Calculator) Convert(value float64, mode UnitMode, axis Axis) float64 {
	f := c.factors(mode)
	if axis == Weight {
		return value / f.Weight
	}
	return value / f.Height
}

// Calculate validates, converts both axes to meters/kilograms and applies
// weight / height². No rounding or clamping is applied.
func (c Calculator) Calculate(heightText, weightText string, mode UnitMode) (Result, error) {
	in, err := c.Validate(heightText, weightText)
	if err != nil {
		return Result{}, err
	}

	height := c.Convert(in.Height, mode, Height)
	weight := c.Convert(in.Weight, mode, Weight)

	return Result{
		Value:           weight / (height * height),
		HeightMeters:    height,
		WeightKilograms: weight,
		Units:           mode,
	}, nil
}

// Validate uses the default conversion table
func Validate(heightText, weightText string) (Input, error) {
	return defaultCalculator.Validate(heightText, weightText)
}

// Convert uses the default conversion table
func Convert(value float64, mode UnitMode, axis Axis) float64 {
	return defaultCalculator.Convert(value, mode, axis)
}

// Calculate uses the default conversion table
func Calculate(heightText, weightText string, mode UnitMode) (Result, error) {
	return defaultCalculator.Calculate(heightText, weightText, mode)
}

// decimalPattern matches plain decimal text: optional sign, digits with an
// optional fraction, optional exponent. Hex floats, digit separators and
// Inf/NaN spellings do not match.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseField(axis Axis, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &ValidationError{Field: axis, Reason: "required"}
	}
	if !decimalPattern.MatchString(text) {
		return 0, &ValidationError{Field: axis, Reason: "not a decimal number"}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// out of float64 range
		return 0, &ValidationError{Field: axis, Reason: "not a finite number"}
	}
	return v, nil
}
