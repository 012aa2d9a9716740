package token

import "fmt"

// Kind represents the kind of a lexical token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF

	IDENT     // main
	DIGITS    // 123
	WS        // whitespace; never emitted
	CDO       // <!--
	CDC       // -->
	SQUOTE    // 'abc'
	DQUOTE    // "abc"
	BADSTRING // unterminated string
	URL       // url
	LPAREN    // (
	RPAREN    // )

	mediumBeg
	ALL
	AURAL
	BRAILLE
	EMBOSSED
	HANDHELD
	PRINT
	PROJECTION
	SCREEN
	TTY
	TV
	mediumEnd

	N              // n
	AT             // @
	MINUS          // -
	COMMA          // ,
	LBRACE         // {
	SEMICOLON      // ;
	RBRACE         // }
	PLUS           // +
	GT             // >
	TILDE          // ~
	STAR           // *
	HASH           // #
	DOT            // .
	LBRACK         // [
	EQ             // =
	INCLUDES       // ~=
	DASHMATCH      // |=
	SUFFIXMATCH    // $=
	PREFIXMATCH    // ^=
	SUBSTRINGMATCH // *=
	RBRACK         // ]
	COLON          // :
	BANG           // !
	IMPORTANT      // important
	SLASH          // /
	UNICODE        // U+0041
	PERCENT        // %

	maxKind
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:     "identifier",
	DIGITS:    "digit",
	WS:        "whitespace",
	CDO:       `"<!--"`,
	CDC:       `"-->"`,
	SQUOTE:    `"'"`,
	DQUOTE:    `"\""`,
	BADSTRING: "unterminated string",
	URL:       `"url"`,
	LPAREN:    `"("`,
	RPAREN:    `")"`,

	ALL:        `"all"`,
	AURAL:      `"aural"`,
	BRAILLE:    `"braille"`,
	EMBOSSED:   `"embossed"`,
	HANDHELD:   `"handheld"`,
	PRINT:      `"print"`,
	PROJECTION: `"projection"`,
	SCREEN:     `"screen"`,
	TTY:        `"tty"`,
	TV:         `"tv"`,

	N:              `"n"`,
	AT:             `"@"`,
	MINUS:          `"-"`,
	COMMA:          `","`,
	LBRACE:         `"{"`,
	SEMICOLON:      `";"`,
	RBRACE:         `"}"`,
	PLUS:           `"+"`,
	GT:             `">"`,
	TILDE:          `"~"`,
	STAR:           `"*"`,
	HASH:           `"#"`,
	DOT:            `"."`,
	LBRACK:         `"["`,
	EQ:             `"="`,
	INCLUDES:       `"~="`,
	DASHMATCH:      `"|="`,
	SUFFIXMATCH:    `"$="`,
	PREFIXMATCH:    `"^="`,
	SUBSTRINGMATCH: `"*="`,
	RBRACK:         `"]"`,
	COLON:          `":"`,
	BANG:           `"!"`,
	IMPORTANT:      `"important"`,
	SLASH:          `"/"`,
	UNICODE:        "unicode range",
	PERCENT:        `"%"`,
}

// String returns the string representation of the token kind.
func (k Kind) String() string {
	if k >= 0 && k < Kind(len(tokens)) && tokens[k] != "" {
		return tokens[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsMedium returns true if the kind is one of the medium keywords.
func (k Kind) IsMedium() bool { return k > mediumBeg && k < mediumEnd }

// NumKinds is the number of token kinds. Every kind is less than NumKinds.
const NumKinds = int(maxKind)

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind)
	for _, k := range []Kind{URL, N, IMPORTANT} {
		keywords[tokens[k][1:len(tokens[k])-1]] = k
	}
	for k := mediumBeg + 1; k < mediumEnd; k++ {
		keywords[tokens[k][1:len(tokens[k])-1]] = k
	}
}

// Lookup maps an identifier to its reserved word kind or IDENT.
// Reserved words are matched exactly.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

// Token represents a single lexical token.
type Token struct {
	Kind  Kind
	Value string
	Pos   Pos

	// Space is true if the token was preceded by whitespace or a comment.
	Space bool
}

// String returns a human readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case SQUOTE:
		return "'" + t.Value + "'"
	case DQUOTE:
		return `"` + t.Value + `"`
	}
	return t.Value
}

// Pos specifies the position of a token in the input.
// Line and Column are both one-based.
type Pos struct {
	Offset int // byte offset
	Char   int // code point offset
	Line   int
	Column int
}

// String returns the position formatted as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
