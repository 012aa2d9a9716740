package parser

import (
	"github.com/siikty/css/ast"
	"github.com/siikty/css/token"
)

// tokenSet is a set of token kinds.
type tokenSet uint64

func newSet(kinds ...token.Kind) tokenSet {
	var s tokenSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

func (s tokenSet) has(k token.Kind) bool {
	return k >= 0 && int(k) < token.NumKinds && s&(1<<uint(k)) != 0
}

func (s tokenSet) union(other tokenSet) tokenSet { return s | other }

var (
	mediumSet = newSet(token.ALL, token.AURAL, token.BRAILLE, token.EMBOSSED, token.HANDHELD,
		token.PRINT, token.PROJECTION, token.SCREEN, token.TTY, token.TV)

	// identitySet holds the kinds accepted where an identifier is expected.
	identitySet = newSet(token.IDENT, token.N, token.URL, token.IMPORTANT).union(mediumSet)

	// compoundSet starts a predicate attached to a simple selector.
	compoundSet = newSet(token.HASH, token.DOT, token.LBRACK, token.COLON)

	firstSimpleSelector = identitySet.union(newSet(token.MINUS, token.STAR, token.UNICODE)).union(compoundSet)

	firstDeclaration = identitySet.union(newSet(token.MINUS))

	firstTerm = identitySet.union(newSet(token.SQUOTE, token.DQUOTE, token.BADSTRING, token.UNICODE,
		token.HASH, token.MINUS, token.PLUS, token.DIGITS, token.DOT))

	// numberSet starts a number, or continues a term after a sign.
	numberSet = newSet(token.DIGITS, token.DOT, token.N)

	attribOpSet = newSet(token.EQ, token.INCLUDES, token.DASHMATCH, token.SUFFIXMATCH,
		token.PREFIXMATCH, token.SUBSTRINGMATCH)

	// stmtFollow resynchronizes after a broken statement or declaration.
	stmtFollow = newSet(token.SEMICOLON, token.RBRACE)
)

var mediums = map[token.Kind]ast.Medium{
	token.ALL:        ast.All,
	token.AURAL:      ast.Aural,
	token.BRAILLE:    ast.Braille,
	token.EMBOSSED:   ast.Embossed,
	token.HANDHELD:   ast.Handheld,
	token.PRINT:      ast.Print,
	token.PROJECTION: ast.Projection,
	token.SCREEN:     ast.Screen,
	token.TTY:        ast.TTY,
	token.TV:         ast.TV,
}

var attribOps = map[token.Kind]ast.AttributeOperator{
	token.EQ:             ast.Equals,
	token.INCLUDES:       ast.InList,
	token.DASHMATCH:      ast.Hyphenated,
	token.PREFIXMATCH:    ast.BeginsWith,
	token.SUFFIXMATCH:    ast.EndsWith,
	token.SUBSTRINGMATCH: ast.Contains,
}

var combinators = map[token.Kind]ast.Combinator{
	token.GT:    ast.Child,
	token.PLUS:  ast.Adjacent,
	token.TILDE: ast.Sibling,
}
