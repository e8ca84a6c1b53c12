// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bmi

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculate_Metric(t *testing.T) {
	result, err := Calculate("1.8", "70", Metric)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if math.Abs(result.Value-21.6049) > 0.0001 {
		t.Errorf("Expected BMI ≈ 21.6049, got %f", result.Value)
	}
	if result.Units != Metric {
		t.Errorf("Expected units mkg, got %s", result.Units)
	}
}

func TestCalculate_Imperial(t *testing.T) {
	result, err := Calculate("6", "180", Imperial)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if math.Abs(result.HeightMeters-1.8293) > 0.0001 {
		t.Errorf("Expected height ≈ 1.8293 m, got %f", result.HeightMeters)
	}
	if math.Abs(result.WeightKilograms-81.818) > 0.001 {
		t.Errorf("Expected weight ≈ 81.818 kg, got %f", result.WeightKilograms)
	}
	if math.Abs(result.Value-24.45) > 0.01 {
		t.Errorf("Expected BMI ≈ 24.45, got %f", result.Value)
	}
}

func TestCalculate_MatchesFormula(t *testing.T) {
	pairs := []struct{ h, w float64 }{
		{1.8, 70},
		{1.55, 48.2},
		{2.01, 120.5},
		{0.5, 3},
		{6, 180},
		{5.25, 132},
	}

	for _, p := range pairs {
		h := strconv.FormatFloat(p.h, 'f', -1, 64)
		w := strconv.FormatFloat(p.w, 'f', -1, 64)

		metric, err := Calculate(h, w, Metric)
		if err != nil {
			t.Fatalf("Calculate(%s, %s, mkg) failed: %v", h, w, err)
		}
		if want := p.w / (p.h * p.h); metric.Value != want {
			t.Errorf("mkg %s/%s: expected %v, got %v", h, w, want, metric.Value)
		}

		imperial, err := Calculate(h, w, Imperial)
		if err != nil {
			t.Fatalf("Calculate(%s, %s, ftlbs) failed: %v", h, w, err)
		}
		hm := p.h / 3.28
		if want := (p.w / 2.2) / (hm * hm); imperial.Value != want {
			t.Errorf("ftlbs %s/%s: expected %v, got %v", h, w, want, imperial.Value)
		}
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	first, err := Calculate("1.72", "64.5", Imperial)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Calculate("1.72", "64.5", Imperial)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calculation differs (-first +second):\n%s", diff)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	testCases := []struct {
		name   string
		height string
		weight string
		field  Axis
	}{
		{"EmptyHeight", "", "70", Height},
		{"EmptyWeight", "1.8", "", Weight},
		{"BlankHeight", "   ", "70", Height},
		{"NegativeWeight", "1.8", "-5", Weight},
		{"ZeroWeight", "1.8", "0", Weight},
		{"NegativeHeight", "-1.8", "70", Height},
		{"NotANumber", "tall", "70", Height},
		{"InfiniteWeight", "1.8", "Inf", Weight},
		{"NaNHeight", "NaN", "70", Height},
		{"HexFloatHeight", "0x1p1", "80", Height},
		{"DigitSeparatorHeight", "1_0", "80", Height},
		{"HexWeight", "1.8", "0x46", Weight},
		{"OutOfRangeWeight", "1.8", "1e400", Weight},
		{"TrailingText", "1.8m", "70", Height},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.height, tc.weight, Metric)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Expected field %s, got %s", tc.field, verr.Field)
			}
			if Message(err) != InvalidInputMessage {
				t.Errorf("Expected fixed message, got %q", Message(err))
			}
		})
	}
}

// Height of zero is accepted by validation and divides by zero.
func TestCalculate_ZeroHeight(t *testing.T) {
	if _, err := Validate("0", "70"); err != nil {
		t.Fatalf("Expected zero height to pass validation, got %v", err)
	}

	result, err := Calculate("0", "70", Metric)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if result.Finite() {
		t.Errorf("Expected non-finite result, got %f", result.Value)
	}
	if !math.IsInf(result.Value, 1) {
		t.Errorf("Expected +Inf, got %f", result.Value)
	}
}

func TestValidate_DecimalForms(t *testing.T) {
	testCases := []struct {
		text string
		want float64
	}{
		{"1.8", 1.8},
		{"+1.8", 1.8},
		{"1.", 1},
		{".5", 0.5},
		{"18e-1", 1.8},
		{"1.8E0", 1.8},
	}

	for _, tc := range testCases {
		in, err := Validate(tc.text, "70")
		if err != nil {
			t.Errorf("Validate(%q) failed: %v", tc.text, err)
			continue
		}
		if in.Height != tc.want {
			t.Errorf("Validate(%q): expected height %v, got %v", tc.text, tc.want, in.Height)
		}
	}
}

func TestValidate(t *testing.T) {
	in, err := Validate(" 1.75 ", "68")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	want := Input{Height: 1.75, Weight: 68}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert(t *testing.T) {
	testCases := []struct {
		name   string
		value  float64
		mode   UnitMode
		axis   Axis
		factor float64
	}{
		{"MetricHeight", 1.8, Metric, Height, 1.0},
		{"MetricWeight", 70, Metric, Weight, 1.0},
		{"ImperialHeight", 6.56, Imperial, Height, 3.28},
		{"ImperialWeight", 220, Imperial, Weight, 2.2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.value, tc.mode, tc.axis)
			if want := tc.value / tc.factor; got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Expected empty message for nil error")
	}

	other := errors.New("boom")
	if Message(other) != "boom" {
		t.Errorf("Expected passthrough message, got %q", Message(other))
	}
}
