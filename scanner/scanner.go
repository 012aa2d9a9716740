package scanner

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/siikty/css/buffer"
	"github.com/siikty/css/token"
)

// eof represents the end of input.
const eof rune = -1

// excerptWidth is the number of bytes on either side of a position
// considered when building an excerpt.
const excerptWidth = 40

// Scanner splits a CSS3 input into tokens.
//
// Whitespace and comments are never returned. Instead, the Space flag is set
// on the token that follows them.
//
// Scan consumes tokens. Peek reads ahead on a separate cursor without
// consuming and ResetPeek moves that cursor back to the next token Scan
// would return.
type Scanner struct {
	dec *buffer.Decoder
	err error

	ch  rune      // current code point
	pos token.Pos // position of ch
	buf bytes.Buffer

	queue     []token.Token
	committed int // index of the next token returned by Scan
	peek      int // index of the next token returned by Peek
}

// New returns a scanner over a non-seekable reader.
func New(r io.Reader) (*Scanner, error) {
	return newScanner(buffer.NewStreaming(r))
}

// NewSeekable returns a scanner over a seekable reader.
func NewSeekable(rs io.ReadSeeker) (*Scanner, error) {
	w, err := buffer.NewSeekable(rs)
	if err != nil {
		return nil, err
	}
	return newScanner(w)
}

// NewString returns a scanner over a string.
func NewString(s string) (*Scanner, error) {
	return NewSeekable(strings.NewReader(s))
}

func newScanner(w *buffer.Window) (*Scanner, error) {
	dec, err := buffer.NewDecoder(w)
	if err != nil {
		return nil, err
	}
	s := &Scanner{dec: dec, pos: token.Pos{Line: 1, Char: -1}}
	s.read()
	return s, nil
}

// Err returns the first read error from the underlying input.
// The scanner returns EOF once an error has occurred.
func (s *Scanner) Err() error { return s.err }

// Scan consumes and returns the next token.
func (s *Scanner) Scan() token.Token {
	if s.committed == len(s.queue) {
		s.queue = append(s.queue[:0], s.scan())
		s.committed = 0
	}
	tok := s.queue[s.committed]
	s.committed++
	s.peek = s.committed
	return tok
}

// Peek returns the next token after the peek cursor and advances the cursor.
// The token is still returned by a later call to Scan.
func (s *Scanner) Peek() token.Token {
	if s.peek == len(s.queue) {
		s.queue = append(s.queue, s.scan())
	}
	tok := s.queue[s.peek]
	s.peek++
	return tok
}

// ResetPeek moves the peek cursor back to the next unconsumed token.
func (s *Scanner) ResetPeek() {
	s.peek = s.committed
}

// Excerpt returns the input line containing pos.
func (s *Scanner) Excerpt(pos token.Pos) string {
	begin := pos.Offset - excerptWidth
	if begin < 0 {
		begin = 0
	}
	text, err := s.dec.Slice(begin, pos.Offset+excerptWidth)
	if err != nil {
		return ""
	}

	// Trim to the line containing the offset.
	i := pos.Offset - begin
	if i > len(text) {
		i = len(text)
	}
	if j := strings.LastIndexAny(text[:i], "\r\n"); j >= 0 {
		text, i = text[j+1:], i-j-1
	}
	if j := strings.IndexAny(text[i:], "\r\n"); j >= 0 {
		text = text[:i+j]
	}
	return strings.ToValidUTF8(strings.TrimSpace(text), "")
}

// scan reads the next token from the input.
func (s *Scanner) scan() token.Token {
	space := false
	for {
		if isWhitespace(s.ch) {
			s.read()
		} else if s.ch == '/' && s.peekByte() == '*' {
			s.skipComment()
		} else {
			break
		}
		space = true
	}

	tok := token.Token{Pos: s.pos, Space: space}
	ch := s.ch
	if ch == eof {
		tok.Kind = token.EOF
		return tok
	}

	switch tr := start(ch); tr.state {
	case stateSingle:
		s.read()
		tok.Kind, tok.Value = tr.kind, string(ch)
	case stateIdent:
		tok.Kind, tok.Value = s.scanIdent()
	case stateDigits:
		tok.Kind, tok.Value = token.DIGITS, s.scanDigits()
	case stateString:
		tok.Kind, tok.Value = s.scanString()
	case stateLess:
		tok.Kind, tok.Value = s.scanLess()
	case stateMinus:
		tok.Kind, tok.Value = s.scanMinus()
	case stateUnicode:
		tok.Kind, tok.Value = s.scanUnicode()
	case stateMatch:
		tok.Kind, tok.Value = s.scanMatch()
	default:
		s.read()
		tok.Kind, tok.Value = token.ILLEGAL, string(ch)
	}
	return tok
}

// scanIdent consumes an identifier and re-tags reserved words.
func (s *Scanner) scanIdent() (token.Kind, string) {
	s.buf.Reset()
	for isName(s.ch) {
		_, _ = s.buf.WriteRune(s.ch)
		s.read()
	}
	lit := s.buf.String()
	return token.Lookup(lit), lit
}

// scanDigits consumes a run of decimal digits.
func (s *Scanner) scanDigits() string {
	s.buf.Reset()
	for isDigit(s.ch) {
		_, _ = s.buf.WriteRune(s.ch)
		s.read()
	}
	return s.buf.String()
}

// scanString consumes a quoted string. The value excludes the quotes.
// A string ended by a newline or EOF is returned as BADSTRING.
func (s *Scanner) scanString() (token.Kind, string) {
	ending := s.ch
	kind := token.DQUOTE
	if ending == '\'' {
		kind = token.SQUOTE
	}
	s.read()

	s.buf.Reset()
	for {
		switch s.ch {
		case ending:
			s.read()
			return kind, s.buf.String()
		case eof, '\n':
			return token.BADSTRING, s.buf.String()
		case '\\':
			s.read()
			if s.ch == eof {
				return token.BADSTRING, s.buf.String()
			} else if s.ch == '\n' || s.ch == '\r' {
				cr := s.ch == '\r'
				if s.read(); cr && s.ch == '\n' {
					s.read()
				}
			} else {
				_, _ = s.buf.WriteRune(s.scanEscape())
			}
		default:
			_, _ = s.buf.WriteRune(s.ch)
			s.read()
		}
	}
}

// scanEscape consumes the code point following a backslash.
// Up to six hex digits are read as a code point followed by optional whitespace.
func (s *Scanner) scanEscape() rune {
	if !isHexDigit(s.ch) {
		ch := s.ch
		s.read()
		return ch
	}

	var hex bytes.Buffer
	for i := 0; i < 6 && isHexDigit(s.ch); i++ {
		_, _ = hex.WriteRune(s.ch)
		s.read()
	}
	if isWhitespace(s.ch) {
		s.read()
	}

	v, _ := strconv.ParseInt(hex.String(), 16, 32)
	if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return '\uFFFD'
	}
	return rune(v)
}

// scanLess consumes "<!--" or falls back to a single "<".
func (s *Scanner) scanLess() (token.Kind, string) {
	s.read()
	m := s.mark()
	for _, ch := range "!--" {
		if s.ch != ch {
			s.reset(m)
			return token.ILLEGAL, "<"
		}
		s.read()
	}
	return token.CDO, "<!--"
}

// scanMinus consumes "-->" or falls back to a single "-".
func (s *Scanner) scanMinus() (token.Kind, string) {
	s.read()
	if s.ch != '-' {
		return token.MINUS, "-"
	}

	m := s.mark()
	s.read()
	if s.ch != '>' {
		s.reset(m)
		return token.MINUS, "-"
	}
	s.read()
	return token.CDC, "-->"
}

// scanUnicode consumes a unicode range such as "U+0041-00FF" or "U\0041".
// The value keeps the prefix and the original case. If no range follows the
// prefix, or the range runs into a name, then the input is rescanned as an
// identifier.
func (s *Scanner) scanUnicode() (token.Kind, string) {
	m := s.mark()
	s.buf.Reset()
	_, _ = s.buf.WriteRune(s.ch)
	s.read()
	if s.ch != '+' && s.ch != '\\' {
		s.reset(m)
		return s.scanIdent()
	}
	_, _ = s.buf.WriteRune(s.ch)
	s.read()
	if !isHexDigit(s.ch) && s.ch != '?' {
		s.reset(m)
		return s.scanIdent()
	}

	for i := 0; i < 6 && (isHexDigit(s.ch) || s.ch == '?'); i++ {
		_, _ = s.buf.WriteRune(s.ch)
		s.read()
	}

	// Read the optional end of the range.
	if s.ch == '-' {
		end := s.mark()
		s.read()
		if !isHexDigit(s.ch) {
			s.reset(end)
		} else {
			_ = s.buf.WriteByte('-')
			for i := 0; i < 6 && isHexDigit(s.ch); i++ {
				_, _ = s.buf.WriteRune(s.ch)
				s.read()
			}
		}
	}

	// "u+abbr" is a selector, not a range followed by "r".
	if isName(s.ch) || s.ch == '\\' {
		s.reset(m)
		return s.scanIdent()
	}
	return token.UNICODE, s.buf.String()
}

// scanMatch consumes an attribute match operator or its single character prefix.
func (s *Scanner) scanMatch() (token.Kind, string) {
	ch := s.ch
	kinds := matchTable[ch]
	s.read()
	if s.ch == '=' {
		s.read()
		return kinds[1], string(ch) + "="
	}
	return kinds[0], string(ch)
}

// skipComment consumes a comment. An unterminated comment runs to EOF.
func (s *Scanner) skipComment() {
	s.read()
	s.read()
	for s.ch != eof {
		if s.ch == '*' {
			s.read()
			if s.ch == '/' {
				s.read()
				return
			}
			continue
		}
		s.read()
	}
}

// read advances to the next code point and updates the position.
// A carriage return that is not followed by a line feed is read as a line feed.
func (s *Scanner) read() {
	if s.ch == eof {
		return
	}

	pos := s.pos
	if s.ch == '\n' {
		pos.Line++
		pos.Column = 1
	} else {
		pos.Column++
	}
	pos.Char++
	pos.Offset = s.dec.Pos()

	ch, err := s.dec.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		ch = eof
	} else if ch == '\r' && s.peekByte() != '\n' {
		ch = '\n'
	}
	s.ch, s.pos = ch, pos
}

// peekByte returns the next raw byte or zero at end of input.
func (s *Scanner) peekByte() byte {
	b, err := s.dec.PeekByte()
	if err != nil {
		return 0
	}
	return b
}

// mark records the scanner state so it can be restored with reset.
type mark struct {
	ch     rune
	pos    token.Pos
	offset int
}

func (s *Scanner) mark() mark {
	return mark{ch: s.ch, pos: s.pos, offset: s.dec.Pos()}
}

// reset restores a state previously recorded by mark.
func (s *Scanner) reset(m mark) {
	if err := s.dec.Seek(m.offset); err != nil {
		s.err, s.ch = err, eof
		return
	}
	s.ch, s.pos = m.ch, m.pos
}

// isWhitespace returns true if the rune is a space, tab, newline or form feed.
func isWhitespace(ch rune) bool {
	return ch >= 0 && ch < 128 && startTable[ch].state == stateSpace
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// isHexDigit returns true if the rune is a hex digit.
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isName returns true if the rune can continue an identifier.
func isName(ch rune) bool {
	return start(ch).state == stateIdent || ch == 'u' || ch == 'U' || isDigit(ch) || ch == '-'
}
