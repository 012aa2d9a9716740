package scanner

import "github.com/siikty/css/token"

// state is the DFA state entered on the first code point of a token.
type state uint8

const (
	stateIllegal state = iota
	stateSingle        // single character token, kind taken from the table
	stateIdent
	stateDigits
	stateSpace
	stateString
	stateLess    // "<" or "<!--"
	stateMinus   // "-" or "-->"
	stateUnicode // "U+0041", "U\0041" or an identifier
	stateMatch   // "~", "*", "|", "$", "^" optionally followed by "="
)

// transition describes the start state for a code point.
type transition struct {
	state state
	kind  token.Kind
}

// startTable maps ASCII code points to their start state.
// Code points above the table start identifiers.
var startTable [128]transition

// matchTable maps a match operator prefix to the kinds produced with and
// without a trailing "=".
var matchTable = map[rune][2]token.Kind{
	'~': {token.TILDE, token.INCLUDES},
	'*': {token.STAR, token.SUBSTRINGMATCH},
	'|': {token.ILLEGAL, token.DASHMATCH},
	'$': {token.ILLEGAL, token.SUFFIXMATCH},
	'^': {token.ILLEGAL, token.PREFIXMATCH},
}

func init() {
	for ch := 'a'; ch <= 'z'; ch++ {
		startTable[ch] = transition{state: stateIdent}
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		startTable[ch] = transition{state: stateIdent}
	}
	startTable['_'] = transition{state: stateIdent}
	startTable['u'] = transition{state: stateUnicode}
	startTable['U'] = transition{state: stateUnicode}

	for ch := '0'; ch <= '9'; ch++ {
		startTable[ch] = transition{state: stateDigits}
	}
	for _, ch := range "\t\n\v\f\r " {
		startTable[ch] = transition{state: stateSpace}
	}

	startTable['\''] = transition{state: stateString}
	startTable['"'] = transition{state: stateString}
	startTable['<'] = transition{state: stateLess}
	startTable['-'] = transition{state: stateMinus}
	for ch := range matchTable {
		startTable[ch] = transition{state: stateMatch}
	}

	for ch, kind := range map[rune]token.Kind{
		'(': token.LPAREN,
		')': token.RPAREN,
		'@': token.AT,
		',': token.COMMA,
		'{': token.LBRACE,
		';': token.SEMICOLON,
		'}': token.RBRACE,
		'+': token.PLUS,
		'>': token.GT,
		'#': token.HASH,
		'.': token.DOT,
		'[': token.LBRACK,
		'=': token.EQ,
		']': token.RBRACK,
		':': token.COLON,
		'!': token.BANG,
		'/': token.SLASH,
		'%': token.PERCENT,
	} {
		startTable[ch] = transition{state: stateSingle, kind: kind}
	}
}

// start returns the start transition for a code point.
func start(ch rune) transition {
	if ch < 0 {
		return transition{state: stateIllegal}
	} else if ch >= 128 {
		return transition{state: stateIdent}
	}
	return startTable[ch]
}
