package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siikty/css/ast"
)

// Ensure that points expressions convert to absolute units.
func TestExpression_Points(t *testing.T) {
	e := expr(&ast.Term{Value: "12.5", Unit: ast.PT})

	pts, err := e.AsPoints()
	require.NoError(t, err)
	assert.Equal(t, 12.5, pts)

	twips, err := e.AsTwips()
	require.NoError(t, err)
	assert.Equal(t, int64(250), twips)

	emu, err := e.AsEMU()
	require.NoError(t, err)
	assert.Equal(t, int64(158750), emu)

	neg := expr(&ast.Term{Sign: '-', Value: "1.07", Unit: ast.PT})
	twips, err = neg.AsTwips()
	require.NoError(t, err)
	assert.Equal(t, int64(-21), twips)
}

// Ensure that conversions validate their input.
func TestExpression_Points_Errors(t *testing.T) {
	var tests = []struct {
		e   *ast.Expression
		err error
		msg string
	}{
		{e: expr(), err: ast.ErrNotSingleTerm, msg: `cannot convert "" to twips: expression is not a single term`},
		{e: expr(num("1"), num("2")), err: ast.ErrNotSingleTerm},
		{e: expr(&ast.Term{Value: "1", Unit: ast.PX}), err: ast.ErrUnit, msg: `cannot convert "1px" to twips: unexpected unit: "px", expected "pt"`},
		{e: expr(num("1")), err: ast.ErrUnit},
		{e: expr(&ast.Term{Type: ast.String, Value: "auto"}), err: ast.ErrNotNumber},
		{e: expr(&ast.Term{Value: "2n+1", Unit: ast.PT}), err: ast.ErrNotNumber},
		{e: nil, err: ast.ErrNotSingleTerm},
	}

	for i, tt := range tests {
		_, err := tt.e.AsTwips()
		assert.ErrorIs(t, err, tt.err, "%d", i)

		var convErr *ast.ConversionError
		assert.ErrorAs(t, err, &convErr, "%d", i)
		if tt.msg != "" {
			assert.EqualError(t, err, tt.msg, "%d", i)
		}
	}
}

// Ensure that numbers convert regardless of unit.
func TestExpression_AsNumber(t *testing.T) {
	v, err := expr(&ast.Term{Sign: '-', Value: "3", Unit: ast.EM}).AsNumber()
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)

	_, err = expr(&ast.Term{Type: ast.String, Value: "x"}).AsNumber()
	assert.ErrorIs(t, err, ast.ErrNotNumber)
}

// Ensure that keyword helpers match only bare identifiers.
func TestExpression_Keywords(t *testing.T) {
	assert.True(t, expr(&ast.Term{Type: ast.String, Value: "auto"}).IsAuto())
	assert.False(t, expr(&ast.Term{Type: ast.String, Value: "auto", Quote: '"'}).IsAuto())
	assert.True(t, expr(&ast.Term{Type: ast.String, Value: "normal"}).IsNormal())
	assert.False(t, expr(num("0")).IsNormal())
	assert.Equal(t, "1px solid", expr(&ast.Term{Value: "1", Unit: ast.PX}, &ast.Term{Type: ast.String, Value: "solid"}).AsText())
}

// Ensure that units are matched without regard to case.
func TestLookupUnit(t *testing.T) {
	var tests = []struct {
		s    string
		unit ast.Unit
		ok   bool
	}{
		{s: "px", unit: ast.PX, ok: true},
		{s: "PX", unit: ast.PX, ok: true},
		{s: "khz", unit: ast.KHZ, ok: true},
		{s: "Hz", unit: ast.HZ, ok: true},
		{s: "turn", unit: ast.TURN, ok: true},
		{s: "s", unit: ast.S, ok: true},
		{s: "%"},
		{s: "zz"},
		{s: ""},
	}

	for i, tt := range tests {
		unit, ok := ast.LookupUnit(tt.s)
		if ok != tt.ok || unit != tt.unit {
			t.Errorf("%d. <%q> exp=%v/%v, got=%v/%v", i, tt.s, tt.unit, tt.ok, unit, ok)
		}
	}
}
