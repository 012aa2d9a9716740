package buffer

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// BOMError is returned when the input starts with a byte that looks like
// a UTF-8 byte order mark but the following bytes do not match.
type BOMError struct {
	B1, B2 byte
}

// Error returns the formatted error message.
func (e *BOMError) Error() string {
	return fmt.Sprintf("illegal byte order mark: EF %02X %02X", e.B1, e.B2)
}

// Decoder decodes UTF-8 code points from a Window.
type Decoder struct {
	w *Window
}

// NewDecoder returns a decoder over w. A leading byte order mark is skipped.
func NewDecoder(w *Window) (*Decoder, error) {
	b, err := w.PeekByte()
	if err == io.EOF {
		return &Decoder{w: w}, nil
	} else if err != nil {
		return nil, err
	} else if b != 0xEF {
		return &Decoder{w: w}, nil
	}

	// Read the full mark. Missing bytes are reported as zero.
	var mark [3]byte
	for i := range mark {
		if mark[i], err = w.ReadByte(); err != nil && err != io.EOF {
			return nil, err
		}
	}
	if mark[1] != 0xBB || mark[2] != 0xBF {
		return nil, &BOMError{B1: mark[1], B2: mark[2]}
	}
	return &Decoder{w: w}, nil
}

// ReadRune decodes the next code point. Stray continuation bytes are skipped.
// A truncated or malformed sequence decodes to utf8.RuneError.
// Returns io.EOF at end of input.
func (d *Decoder) ReadRune() (rune, error) {
	b, err := d.w.ReadByte()
	for err == nil && b >= 0x80 && b&0xC0 != 0xC0 {
		b, err = d.w.ReadByte()
	}
	if err != nil {
		return 0, err
	}

	var ch rune
	var n int
	switch {
	case b < 0x80:
		return rune(b), nil
	case b&0xF8 == 0xF0:
		ch, n = rune(b&0x07), 3
	case b&0xF0 == 0xE0:
		ch, n = rune(b&0x0F), 2
	case b&0xE0 == 0xC0:
		ch, n = rune(b&0x1F), 1
	default:
		return utf8.RuneError, nil
	}

	for i := 0; i < n; i++ {
		c, err := d.w.ReadByte()
		if err == io.EOF {
			return utf8.RuneError, nil
		} else if err != nil {
			return 0, err
		} else if c&0xC0 != 0x80 {
			// Leave the offending byte for the next read.
			if err := d.w.Seek(d.w.Pos() - 1); err != nil {
				return 0, err
			}
			return utf8.RuneError, nil
		}
		ch = ch<<6 | rune(c&0x3F)
	}
	return ch, nil
}

// PeekByte returns the next raw byte without consuming it.
func (d *Decoder) PeekByte() (byte, error) { return d.w.PeekByte() }

// Pos returns the byte offset of the next code point.
func (d *Decoder) Pos() int { return d.w.Pos() }

// Seek moves to an absolute byte offset.
func (d *Decoder) Seek(pos int) error { return d.w.Seek(pos) }

// Slice returns the raw input between two byte offsets.
func (d *Decoder) Slice(begin, end int) (string, error) { return d.w.Slice(begin, end) }
