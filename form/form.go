// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-bmi/bmi"
)

// State is the single-screen form: unit toggle, two text inputs, the last
// result and the alert message
type State struct {
	Units  bmi.UnitMode
	Height string
	Weight string
	Result *bmi.Result
	Error  string
}

// New returns an empty form in metric mode
func New() *State {
	return &State{Units: bmi.Metric}
}

// Calculate runs the calculator on the current field values.
// On failure the alert is raised and the previous result is kept.
func (s *State) Calculate() {
	result, err := bmi.Calculate(s.Height, s.Weight, s.Units)
	if err != nil {
		s.Error = bmi.Message(err)
		return
	}
	s.Result = &result
}

// Reset clears the two input fields
func (s *State) Reset() {
	s.Height = ""
	s.Weight = ""
}

// SelectUnits changes the mode used by the next Calculate.
// A displayed result is not reconverted.
func (s *State) SelectUnits(mode bmi.UnitMode) {
	s.Units = mode
}

// ClearError acknowledges the alert
func (s *State) ClearError() {
	s.Error = ""
}

// AlertOpen reports whether an error is waiting to be acknowledged
func (s *State) AlertOpen() bool {
	return s.Error != ""
}

func (s *State) HeightLabel() string {
	return fmt.Sprintf("Your Height (%s)", s.Units.HeightUnit())
}

func (s *State) WeightLabel() string {
	return fmt.Sprintf("Your Weight (%s)", s.Units.WeightUnit())
}

// HasResult reports whether a result should be shown
func (s *State) HasResult() bool {
	return s.Result != nil
}

// DisplayResult formats the last result for display, or "" when there is none
func (s *State) DisplayResult() string {
	if s.Result == nil {
		return ""
	}
	return FormatValue(*s.Result)
}

// FormatValue renders a BMI with at most two decimals
func FormatValue(r bmi.Result) string {
	if !r.Finite() {
		return "undefined"
	}
	return humanize.FtoaWithDigits(r.Value, 2)
}
