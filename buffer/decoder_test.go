package buffer_test

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siikty/css/buffer"
)

// Ensure that the decoder produces the correct code points.
func TestDecoder_ReadRune(t *testing.T) {
	var tests = []struct {
		s   string
		exp []rune
	}{
		{s: ``, exp: nil},
		{s: `abc`, exp: []rune{'a', 'b', 'c'}},
		{s: "\xEF\xBB\xBFa", exp: []rune{'a'}},
		{s: "é☃𝄞", exp: []rune{'é', '☃', '𝄞'}},
		{s: "\x80\xBFa", exp: []rune{'a'}},
		{s: "\xC3", exp: []rune{utf8.RuneError}},
		{s: "\xE2\x98a", exp: []rune{utf8.RuneError, 'a'}},
		{s: "\xFFa", exp: []rune{utf8.RuneError, 'a'}},
	}

	for i, tt := range tests {
		d, err := buffer.NewDecoder(buffer.NewStreaming(strings.NewReader(tt.s)))
		require.NoError(t, err, "%d. <%q>", i, tt.s)

		var got []rune
		for {
			ch, err := d.ReadRune()
			if err == io.EOF {
				break
			}
			require.NoError(t, err, "%d. <%q>", i, tt.s)
			got = append(got, ch)
		}
		assert.Equal(t, tt.exp, got, "%d. <%q>", i, tt.s)
	}
}

// Ensure that a malformed byte order mark fails before anything is decoded.
func TestNewDecoder_BadBOM(t *testing.T) {
	_, err := buffer.NewDecoder(buffer.NewStreaming(strings.NewReader("\xEF\xBBxa")))
	var bomErr *buffer.BOMError
	require.ErrorAs(t, err, &bomErr)
	assert.Equal(t, "illegal byte order mark: EF BB 78", err.Error())

	_, err = buffer.NewDecoder(buffer.NewStreaming(strings.NewReader("\xEF")))
	assert.EqualError(t, err, "illegal byte order mark: EF 00 00")
}

// Ensure that seeking the decoder rewinds to a code point boundary.
func TestDecoder_Seek(t *testing.T) {
	d, err := buffer.NewDecoder(buffer.NewStreaming(strings.NewReader("a☃b")))
	require.NoError(t, err)

	_, _ = d.ReadRune()
	pos := d.Pos()
	ch, _ := d.ReadRune()
	assert.Equal(t, '☃', ch)
	assert.Equal(t, 4, d.Pos())

	require.NoError(t, d.Seek(pos))
	ch, _ = d.ReadRune()
	assert.Equal(t, '☃', ch)

	s, err := d.Slice(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "a☃b", s)
}
