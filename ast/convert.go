package ast

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	twipsPerPoint = 20
	emusPerPoint  = 12700
)

var (
	// ErrNotSingleTerm is returned when converting an expression that does
	// not hold exactly one term.
	ErrNotSingleTerm = errors.New("expression is not a single term")

	// ErrNotNumber is returned when converting a term that is not numeric.
	ErrNotNumber = errors.New("term is not a number")

	// ErrUnit is returned when a term does not have the expected unit.
	ErrUnit = errors.New("unexpected unit")
)

// ConversionError is returned when an expression cannot be converted.
type ConversionError struct {
	Value  string // expression text
	Target string // name of the requested conversion
	Err    error
}

// Error returns the formatted error message.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %s", e.Value, e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error { return e.Err }

// Float returns the signed numeric value of a number term.
func (t *Term) Float() (float64, error) {
	if t.Type != Number {
		return 0, ErrNotNumber
	}
	v, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	if t.Sign == '-' {
		v = -v
	}
	return v, nil
}

// AsText returns the expression as CSS text.
func (e *Expression) AsText() string {
	return e.String()
}

// AsNumber returns the value of a single numeric term, ignoring its unit.
func (e *Expression) AsNumber() (float64, error) {
	t, err := e.single("number")
	if err != nil {
		return 0, err
	}
	v, err := t.Float()
	if err != nil {
		return 0, &ConversionError{Value: e.String(), Target: "number", Err: err}
	}
	return v, nil
}

// AsPoints returns the value of a single term expressed in points.
func (e *Expression) AsPoints() (float64, error) {
	return e.points("points")
}

// AsTwips returns a points value converted to twentieths of a point.
// The result is truncated toward zero.
func (e *Expression) AsTwips() (int64, error) {
	v, err := e.points("twips")
	if err != nil {
		return 0, err
	}
	return int64(v * twipsPerPoint), nil
}

// AsEMU returns a points value converted to English Metric Units.
// The result is truncated toward zero.
func (e *Expression) AsEMU() (int64, error) {
	v, err := e.points("EMU")
	if err != nil {
		return 0, err
	}
	return int64(v * emusPerPoint), nil
}

// IsAuto returns true if the expression is the keyword "auto".
func (e *Expression) IsAuto() bool { return e.isKeyword("auto") }

// IsNormal returns true if the expression is the keyword "normal".
func (e *Expression) IsNormal() bool { return e.isKeyword("normal") }

func (e *Expression) isKeyword(s string) bool {
	return e != nil && len(e.Terms) == 1 && e.Terms[0].Type == String && e.Terms[0].Quote == 0 && e.Terms[0].Value == s
}

// points returns the value of a single term with a "pt" unit.
func (e *Expression) points(target string) (float64, error) {
	t, err := e.single(target)
	if err != nil {
		return 0, err
	}
	v, err := t.Float()
	if err != nil {
		return 0, &ConversionError{Value: e.String(), Target: target, Err: err}
	} else if t.Unit != PT {
		return 0, &ConversionError{Value: e.String(), Target: target, Err: fmt.Errorf("%w: %q, expected %q", ErrUnit, t.Unit.String(), PT.String())}
	}
	return v, nil
}

func (e *Expression) single(target string) (*Term, error) {
	if e == nil || len(e.Terms) != 1 {
		return nil, &ConversionError{Value: e.String(), Target: target, Err: ErrNotSingleTerm}
	}
	return e.Terms[0], nil
}
