package css_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siikty/css"
	"github.com/siikty/css/ast"
	"github.com/siikty/css/buffer"
	"github.com/siikty/css/parser"
)

const stylesheet = `@charset "utf-8";
/* base */
body { margin: 0; font: 12px/1.5 "Helvetica Neue", Arial, sans-serif }
a:hover, a.active > span { color: #f00 !important; background: url(img/bg.png) repeat-x }
@media print {
	.noprint { display: none }
}
li:nth-child(2n+1) { border-left: 1px solid rgba(0, 0, 0, 50%) }
`

// Ensure that equivalent color notations resolve to the same color.
func TestParseString_Colors(t *testing.T) {
	ss, err := css.ParseString(`a { a: rgb(255, 0, 0); b: #ff0000; c: #f00; d: red; e: hsl(0, 100%, 50%) }`)
	require.NoError(t, err)

	decls := ss.RuleSets[0].Declarations
	require.Len(t, decls, 5)
	for _, d := range decls[:4] {
		c, ok := d.Color()
		assert.True(t, ok, d.String())
		assert.Equal(t, ast.RGB{R: 255, G: 0, B: 0}, c, d.String())
	}

	c, ok := decls[4].Color()
	require.True(t, ok)
	assert.InDelta(t, 255, c.R, 1)
	assert.InDelta(t, 0, c.G, 1)
	assert.InDelta(t, 0, c.B, 1)
}

// Ensure that a stream read in small chunks parses the same as a string.
func TestParse_Chunked(t *testing.T) {
	exp, err := css.ParseString(stylesheet)
	require.NoError(t, err)

	one, err := css.Parse(iotest.OneByteReader(strings.NewReader(stylesheet)))
	require.NoError(t, err)
	assert.Equal(t, exp, one)

	half, err := css.Parse(iotest.HalfReader(strings.NewReader(stylesheet)))
	require.NoError(t, err)
	assert.Equal(t, exp.String(), half.String())
}

// Ensure that a seekable reader parses the same as a string.
func TestParseSeeker(t *testing.T) {
	exp, err := css.ParseString(stylesheet)
	require.NoError(t, err)

	ss, err := css.ParseSeeker(strings.NewReader(stylesheet))
	require.NoError(t, err)
	assert.Equal(t, exp, ss)
	assert.Len(t, ss.RuleSets, 3)
	assert.Len(t, ss.Directives, 2)
}

// Ensure that a stylesheet can be parsed from a file.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.css")
	require.NoError(t, os.WriteFile(path, []byte(stylesheet), 0o600))

	ss, err := css.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, ss.RuleSets, 3)

	_, err = css.ParseFile(filepath.Join(t.TempDir(), "missing.css"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Ensure that parse errors carry the offending source line.
func TestParseString_Error(t *testing.T) {
	_, err := css.ParseString("a {\n  color: red;\n  b: 'c\n}")
	require.Error(t, err)
	assert.EqualError(t, err, "css: line 3 col 6: unterminated string\n\tb: 'c")

	var e *parser.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, parser.SyntaxError, e.Kind)
	assert.Equal(t, 3, e.Pos.Line)
	assert.Equal(t, 6, e.Pos.Column)
}

// Ensure that a tolerant config is passed through to the parser.
func TestParseString_Tolerant(t *testing.T) {
	ss, err := css.ParseString("a { b: ; c: d }", parser.Config{Tolerant: true})
	require.NoError(t, err)
	assert.Equal(t, "a {\n\tc: d;\n}\n", ss.String())
}

// Ensure that a malformed byte order mark fails before parsing.
func TestParseString_BadBOM(t *testing.T) {
	_, err := css.ParseString("\xEF\xBB\x00a {}")
	assert.EqualError(t, err, "css: illegal byte order mark: EF BB 00")

	var bomErr *buffer.BOMError
	assert.True(t, errors.As(err, &bomErr))

	var e *parser.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, parser.FatalError, e.Kind)
}
