// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"math"
	"testing"

	"github.com/danielhkuo/quickly-bmi/bmi"
)

func TestCalculate_Success(t *testing.T) {
	s := New()
	s.Height, s.Weight = "1.8", "70"
	s.Calculate()

	if !s.HasResult() {
		t.Fatal("Expected a result")
	}
	if s.AlertOpen() {
		t.Errorf("Expected no alert, got %q", s.Error)
	}
	if s.DisplayResult() != "21.6" {
		t.Errorf("Expected display 21.6, got %q", s.DisplayResult())
	}
}

func TestCalculate_ErrorKeepsPreviousResult(t *testing.T) {
	s := New()
	s.Height, s.Weight = "1.8", "70"
	s.Calculate()
	previous := s.Result

	s.Weight = "-5"
	s.Calculate()

	if !s.AlertOpen() {
		t.Fatal("Expected alert to be open")
	}
	if s.Error != bmi.InvalidInputMessage {
		t.Errorf("Expected fixed message, got %q", s.Error)
	}
	if s.Result != previous {
		t.Error("Expected previous result to be kept")
	}

	s.ClearError()
	if s.AlertOpen() {
		t.Error("Expected alert to be cleared")
	}
}

func TestSelectUnits_DoesNotReconvert(t *testing.T) {
	s := New()
	s.Height, s.Weight = "1.8", "70"
	s.Calculate()
	shown := s.DisplayResult()

	s.SelectUnits(bmi.Imperial)
	if s.DisplayResult() != shown {
		t.Errorf("Expected displayed result %q to survive unit switch, got %q", shown, s.DisplayResult())
	}
	if s.Result.Units != bmi.Metric {
		t.Errorf("Expected result to keep metric units, got %s", s.Result.Units)
	}

	// Only the next calculation uses the new mode
	s.Calculate()
	hm := 1.8 / 3.28
	want := (70 / 2.2) / (hm * hm)
	if math.Abs(s.Result.Value-want) > 1e-9 {
		t.Errorf("Expected %f after recalculation, got %f", want, s.Result.Value)
	}
	if s.Result.Units != bmi.Imperial {
		t.Errorf("Expected imperial result, got %s", s.Result.Units)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Height, s.Weight = "6", "180"
	s.SelectUnits(bmi.Imperial)
	s.Calculate()

	s.Reset()

	if s.Height != "" || s.Weight != "" {
		t.Errorf("Expected empty fields, got %q/%q", s.Height, s.Weight)
	}
	if !s.HasResult() {
		t.Error("Expected result to stay after reset")
	}
	if s.Units != bmi.Imperial {
		t.Errorf("Expected units to stay imperial, got %s", s.Units)
	}
}

func TestLabels(t *testing.T) {
	s := New()
	if s.HeightLabel() != "Your Height (meters)" {
		t.Errorf("unexpected label %q", s.HeightLabel())
	}
	s.SelectUnits(bmi.Imperial)
	if s.WeightLabel() != "Your Weight (lbs)" {
		t.Errorf("unexpected label %q", s.WeightLabel())
	}
}

func TestDisplayResult_ZeroHeight(t *testing.T) {
	s := New()
	s.Height, s.Weight = "0", "70"
	s.Calculate()

	if s.AlertOpen() {
		t.Fatalf("Expected zero height to pass validation, got %q", s.Error)
	}
	if s.DisplayResult() != "undefined" {
		t.Errorf("Expected undefined, got %q", s.DisplayResult())
	}
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{20, "20"},
		{21.5, "21.5"},
		{24.4536, "24.45"},
		// digits past the second are cut, not rounded
		{21.609, "21.6"},
		{18.999, "18.99"},
	}

	for _, tc := range testCases {
		got := FormatValue(bmi.Result{Value: tc.value})
		if got != tc.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
