// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bmi

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseUnitMode(t *testing.T) {
	testCases := []struct {
		input string
		want  UnitMode
	}{
		{"mkg", Metric},
		{"ftlbs", Imperial},
		{" FTLBS ", Imperial},
	}

	for _, tc := range testCases {
		got, err := ParseUnitMode(tc.input)
		if err != nil {
			t.Errorf("ParseUnitMode(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseUnitMode(%q): expected %s, got %s", tc.input, tc.want, got)
		}
	}

	for _, bad := range []string{"", "metric", "kg"} {
		if _, err := ParseUnitMode(bad); !errors.Is(err, ErrUnknownUnitMode) {
			t.Errorf("ParseUnitMode(%q): expected ErrUnknownUnitMode, got %v", bad, err)
		}
	}
}

func TestUnitMode_Labels(t *testing.T) {
	if Metric.HeightUnit() != "meters" || Metric.WeightUnit() != "kg" {
		t.Errorf("unexpected metric labels: %s/%s", Metric.HeightUnit(), Metric.WeightUnit())
	}
	if Imperial.HeightUnit() != "feet" || Imperial.WeightUnit() != "lbs" {
		t.Errorf("unexpected imperial labels: %s/%s", Imperial.HeightUnit(), Imperial.WeightUnit())
	}
}

func TestUnitMode_JSON(t *testing.T) {
	var payload struct {
		Units UnitMode `json:"units"`
	}

	if err := json.Unmarshal([]byte(`{"units":"ftlbs"}`), &payload); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if payload.Units != Imperial {
		t.Errorf("Expected imperial, got %s", payload.Units)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"units":"ftlbs"}` {
		t.Errorf("unexpected JSON: %s", out)
	}

	if err := json.Unmarshal([]byte(`{"units":"stone"}`), &payload); err == nil {
		t.Error("Expected error for unknown unit mode")
	}
}

func TestUnitMode_OutOfRange(t *testing.T) {
	mode := UnitMode(7)

	if mode.Valid() {
		t.Error("Expected UnitMode(7) to be invalid")
	}
	if mode.String() != "UnitMode(7)" {
		t.Errorf("Expected String() to name the raw value, got %q", mode.String())
	}
	if _, err := mode.MarshalText(); !errors.Is(err, ErrUnknownUnitMode) {
		t.Errorf("Expected ErrUnknownUnitMode from MarshalText, got %v", err)
	}

	// Unknown modes convert with the metric factors
	if got := Convert(1.8, mode, Height); got != 1.8 {
		t.Errorf("Expected unconverted height 1.8, got %v", got)
	}

	result, err := Calculate("1.8", "70", mode)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if result.Units != mode {
		t.Errorf("Expected result to carry UnitMode(7), got %s", result.Units)
	}
	if result.Units.String() == ModeMetric {
		t.Error("Expected an unknown mode not to report itself as mkg")
	}
}

func TestUnitMode_Valid(t *testing.T) {
	for _, mode := range UnitModes() {
		if !mode.Valid() {
			t.Errorf("Expected %s to be valid", mode)
		}
	}
}
