// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bmi

import (
	"errors"
	"fmt"
	"strings"
)

// UnitMode selects the measurement system the raw input is entered in
type UnitMode int

const (
	// Metric is height in meters, weight in kilograms ("mkg")
	Metric UnitMode = iota
	// Imperial is height in feet, weight in pounds ("ftlbs")
	Imperial
)

// Wire values for the unit modes
const (
	ModeMetric   = "mkg"
	ModeImperial = "ftlbs"
)

var ErrUnknownUnitMode = errors.New("unknown unit mode")

// ParseUnitMode maps a wire value to a UnitMode
func ParseUnitMode(s string) (UnitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ModeMetric:
		return Metric, nil
	case ModeImperial:
		return Imperial, nil
	}
	return Metric, fmt.Errorf("%w: %q", ErrUnknownUnitMode, s)
}

// UnitModes lists the supported modes in display order
func UnitModes() []UnitMode {
	return []UnitMode{Metric, Imperial}
}

// Valid reports whether m is Metric or Imperial
func (m UnitMode) Valid() bool {
	return m == Metric || m == Imperial
}

func (m UnitMode) String() string {
	switch m {
	case Metric:
		return ModeMetric
	case Imperial:
		return ModeImperial
	}
	return fmt.Sprintf("UnitMode(%d)", int(m))
}

// HeightUnit is the label for the height field in this mode
func (m UnitMode) HeightUnit() string {
	if m == Imperial {
		return "feet"
	}
	return "meters"
}

// WeightUnit is the label for the weight field in this mode
func (m UnitMode) WeightUnit() string {
	if m == Imperial {
		return "lbs"
	}
	return "kg"
}

// MarshalText encodes the mode as its wire value
func (m UnitMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnitMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts "mkg" or "ftlbs"
func (m *UnitMode) UnmarshalText(text []byte) error {
	mode, err := ParseUnitMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Axis identifies which measurement a value represents
type Axis int

const (
	Height Axis = iota
	Weight
)

func (a Axis) String() string {
	if a == Weight {
		return "weight"
	}
	return "height"
}
