package parser

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/siikty/css/ast"
	"github.com/siikty/css/scanner"
	"github.com/siikty/css/token"
)

// Parser represents a recursive descent CSS3 parser.
type Parser struct {
	s      *scanner.Scanner
	config Config
	log    *zap.Logger

	tok  token.Token // lookahead
	prev token.Token // last consumed token

	errDist int // tokens consumed since the last error
	diags   ErrorList
}

// New returns a parser reading tokens from s.
func New(s *scanner.Scanner, config Config) *Parser {
	p := &Parser{
		s:       s,
		config:  config,
		log:     config.logger(),
		errDist: minErrDist,
	}
	p.tok = s.Scan()
	return p
}

// Diagnostics returns the errors recorded during parsing.
func (p *Parser) Diagnostics() ErrorList {
	return append(ErrorList(nil), p.diags...)
}

// Parse parses the input into a stylesheet.
//
// In strict mode the first recorded error is returned and the stylesheet is
// nil. In tolerant mode only read failures are returned and every other
// error is available from Diagnostics.
func (p *Parser) Parse() (*ast.Stylesheet, error) {
	ss, err := p.stylesheet()
	if err == nil && p.s.Err() != nil {
		err = p.fatal(p.s.Err())
	}

	var e *Error
	if err != nil && errors.As(err, &e) && e.Kind == FatalError {
		p.log.Debug("parse aborted", zap.Error(err))
		return nil, err
	} else if !p.config.Tolerant && len(p.diags) > 0 {
		return nil, p.diags[0]
	} else if err != nil {
		return nil, err
	}

	p.log.Debug("parsed stylesheet",
		zap.Int("directives", len(ss.Directives)),
		zap.Int("rulesets", len(ss.RuleSets)),
		zap.Int("diagnostics", len(p.diags)),
	)
	return ss, nil
}

// stylesheet parses top-level statements until EOF.
func (p *Parser) stylesheet() (*ast.Stylesheet, error) {
	dirs, rules, err := p.statements(false)
	if err != nil {
		return nil, err
	}
	return &ast.Stylesheet{Directives: dirs, RuleSets: rules}, nil
}

// statements parses directives and rule sets. A nested list ends at a
// closing brace, which is consumed. A top-level list ends at EOF.
func (p *Parser) statements(nested bool) ([]*ast.Directive, []*ast.RuleSet, error) {
	var dirs []*ast.Directive
	var rules []*ast.RuleSet
	for {
		var err error
		switch p.tok.Kind {
		case token.EOF:
			if nested {
				err = p.resync(p.syntaxError(int(token.RBRACE)), stmtFollow)
			}
			return dirs, rules, err
		case token.RBRACE:
			if nested {
				p.next()
				return dirs, rules, nil
			}
			r, e := p.ruleSet()
			rules, err = appendRuleSet(rules, r), e
		case token.CDO, token.CDC:
			p.next()
			continue
		case token.AT:
			var d *ast.Directive
			if d, err = p.directive(); d != nil {
				dirs = append(dirs, d)
			}
		default:
			r, e := p.ruleSet()
			rules, err = appendRuleSet(rules, r), e
		}

		if err != nil {
			if err = p.resync(err, stmtFollow); err != nil {
				return nil, nil, err
			}
			if p.tok.Kind == token.SEMICOLON || (!nested && p.tok.Kind == token.RBRACE) {
				p.next()
			}
		}
	}
}

func appendRuleSet(a []*ast.RuleSet, r *ast.RuleSet) []*ast.RuleSet {
	if r == nil {
		return a
	}
	return append(a, r)
}

// ruleSet parses a comma separated selector list and a declaration block.
func (p *Parser) ruleSet() (*ast.RuleSet, error) {
	r := &ast.RuleSet{}
	for {
		sel, err := p.selector()
		if err != nil {
			return nil, err
		}
		r.Selectors = append(r.Selectors, sel)

		if p.tok.Kind != token.COMMA {
			break
		}
		p.next()
	}

	decls, err := p.declarationBlock()
	if err != nil {
		return nil, err
	}
	r.Declarations = decls
	return r, nil
}

// declarationBlock parses "{" declarations "}". Empty declarations are
// skipped and a "}" where a declaration was expected ends the block.
func (p *Parser) declarationBlock() ([]*ast.Declaration, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	var decls []*ast.Declaration
	for {
		switch p.tok.Kind {
		case token.SEMICOLON:
			p.next()
			continue
		case token.RBRACE:
			p.next()
			return decls, nil
		case token.EOF:
			return decls, p.resync(p.syntaxError(int(token.RBRACE)), stmtFollow)
		}

		d, err := p.declaration()
		if err == nil {
			decls = append(decls, d)
			if p.tok.Kind != token.SEMICOLON && p.tok.Kind != token.RBRACE && p.tok.Kind != token.EOF {
				err = p.syntaxError(int(token.SEMICOLON))
			}
		}
		if err != nil {
			if err = p.resync(err, stmtFollow); err != nil {
				return nil, err
			}
		}
	}
}

// declaration parses "name: expression [!important]".
func (p *Parser) declaration() (*ast.Declaration, error) {
	name, err := p.prefixedIdentity()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	d := &ast.Declaration{Name: name, Expression: e}

	if p.tok.Kind == token.BANG {
		p.next()
		if p.tok.Kind == token.IDENT && strings.EqualFold(p.tok.Value, "important") {
			p.next()
		} else if _, err := p.expect(token.IMPORTANT); err != nil {
			return nil, err
		}
		d.Important = true
	}
	return d, nil
}

// directive parses an at-rule.
func (p *Parser) directive() (*ast.Directive, error) {
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	if p.tok.Space {
		return nil, p.syntaxError(InvalidDirective)
	}
	name, err := p.prefixedIdentity()
	if err != nil {
		return nil, err
	}
	d := &ast.Directive{Name: name, Type: ast.LookupDirectiveType(strings.ToLower(name))}

	switch d.Type {
	case ast.Import:
		var t *ast.Term
		if p.tok.Kind == token.URL {
			t, err = p.uri()
		} else {
			var v string
			var q rune
			v, q, err = p.quotedString()
			t = &ast.Term{Type: ast.String, Value: v, Quote: q}
		}
		if err != nil {
			return nil, err
		}
		d.Expression = &ast.Expression{Terms: []*ast.Term{t}}

		if mediumSet.has(p.tok.Kind) {
			if d.Mediums, err = p.mediumList(); err != nil {
				return nil, err
			}
		}

	case ast.Page:
		// Optional page selector such as ":first".
		if p.tok.Kind == token.COLON {
			p.next()
			name, err := p.identity()
			if err != nil {
				return nil, err
			}
			d.Expression = &ast.Expression{Terms: []*ast.Term{{Type: ast.String, Value: ":" + name}}}
		}

	default:
		if mediumSet.has(p.tok.Kind) {
			d.Mediums, err = p.mediumList()
		} else if firstTerm.has(p.tok.Kind) {
			d.Expression, err = p.expression()
		}
		if err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case token.SEMICOLON:
		p.next()
	case token.LBRACE:
		if d.Type == ast.Page || d.Type == ast.FontFace {
			d.Declarations, err = p.declarationBlock()
		} else {
			p.next()
			d.Directives, d.RuleSets, err = p.statements(true)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, p.syntaxError(InvalidDirective)
	}
	return d, nil
}

// mediumList parses a comma separated list of media types.
func (p *Parser) mediumList() ([]ast.Medium, error) {
	var a []ast.Medium
	for {
		m, err := p.medium()
		if err != nil {
			return nil, err
		}
		a = append(a, m)

		if p.tok.Kind != token.COMMA {
			return a, nil
		}
		p.next()
	}
}

func (p *Parser) medium() (ast.Medium, error) {
	m, ok := mediums[p.tok.Kind]
	if !ok {
		return 0, p.syntaxError(InvalidMedium)
	}
	p.next()
	return m, nil
}

// selector parses simple selectors joined by combinators. Whitespace
// between two simple selectors is the descendant combinator.
func (p *Parser) selector() (*ast.Selector, error) {
	sel := &ast.Selector{}
	comb := ast.NoCombinator
	for {
		var name string
		if p.tok.Kind == token.UNICODE {
			// "u+a" scans as a unicode range but names two sibling elements.
			elem, sibling, ok := splitSibling(p.tok.Value)
			if !ok {
				return nil, p.syntaxError(InvalidSimpleSelector)
			}
			sel.SimpleSelectors = append(sel.SimpleSelectors, &ast.SimpleSelector{ElementName: elem, Combinator: comb})
			comb, name = ast.Adjacent, sibling
			p.next()
		}

		ss, err := p.simpleSelector(name)
		if err != nil {
			return nil, err
		}
		ss.Combinator = comb
		sel.SimpleSelectors = append(sel.SimpleSelectors, ss)

		if c, ok := combinators[p.tok.Kind]; ok {
			comb = c
			p.next()
		} else if p.tok.Space && firstSimpleSelector.has(p.tok.Kind) {
			comb = ast.Descendant
		} else {
			return sel, nil
		}
	}
}

// splitSibling splits a unicode range token written as "u+name" into the
// element names on either side of the "+".
func splitSibling(v string) (elem, sibling string, ok bool) {
	if len(v) < 3 || v[1] != '+' || strings.ContainsRune(v, '?') {
		return "", "", false
	} else if c := v[2]; !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
		return "", "", false
	}
	return v[:1], v[2:], true
}

// simpleSelector parses an optional element name followed by adjacent
// id, class, attribute and pseudo-class predicates. A non-empty name is an
// element name the caller has already consumed.
func (p *Parser) simpleSelector(name string) (*ast.SimpleSelector, error) {
	ss := &ast.SimpleSelector{ElementName: name}
	n := 0
	switch {
	case name != "":
		n++
	case p.tok.Kind == token.STAR:
		ss.ElementName = "*"
		p.next()
		n++
	case firstDeclaration.has(p.tok.Kind):
		name, err := p.prefixedIdentity()
		if err != nil {
			return nil, err
		}
		ss.ElementName = name
		n++
	case !compoundSet.has(p.tok.Kind):
		return nil, p.syntaxError(InvalidSimpleSelector)
	}

	cur := ss
	for ; compoundSet.has(p.tok.Kind) && (n == 0 || !p.tok.Space); n++ {
		switch p.tok.Kind {
		case token.HASH:
			p.next()
			name, err := p.identity()
			if err != nil {
				return nil, err
			}
			cur = slot(cur, cur.ID != "")
			cur.ID = name

		case token.DOT:
			p.next()
			name, err := p.prefixedIdentity()
			if err != nil {
				return nil, err
			}
			cur = slot(cur, cur.Class != "")
			cur.Class = name

		case token.LBRACK:
			a, err := p.attrib()
			if err != nil {
				return nil, err
			}
			cur = slot(cur, cur.Attribute != nil)
			cur.Attribute = a

		case token.COLON:
			name, fn, err := p.pseudo()
			if err != nil {
				return nil, err
			}
			cur = slot(cur, cur.Pseudo != "" || cur.Function != nil)
			cur.Pseudo, cur.Function = name, fn
		}
	}
	return ss, nil
}

// slot returns s, or a new child of s when the predicate is already taken.
func slot(s *ast.SimpleSelector, taken bool) *ast.SimpleSelector {
	if !taken {
		return s
	}
	s.Child = &ast.SimpleSelector{}
	return s.Child
}

// attrib parses "[name]" or "[name op value]".
func (p *Parser) attrib() (*ast.Attribute, error) {
	if _, err := p.expect(token.LBRACK); err != nil {
		return nil, err
	}
	name, err := p.prefixedIdentity()
	if err != nil {
		return nil, err
	}
	a := &ast.Attribute{Operand: name}

	if op, ok := attribOps[p.tok.Kind]; ok {
		a.Operator = op
		p.next()

		switch {
		case p.tok.Kind == token.SQUOTE || p.tok.Kind == token.DQUOTE || p.tok.Kind == token.BADSTRING:
			if a.Value, a.Quote, err = p.quotedString(); err != nil {
				return nil, err
			}
		case p.tok.Kind == token.DIGITS:
			a.Value = p.tok.Value
			p.next()
		case firstDeclaration.has(p.tok.Kind):
			if a.Value, err = p.prefixedIdentity(); err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxError(InvalidAttrib)
		}
	}

	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return a, nil
}

// pseudo parses ":name", "::name" or ":name(expression)". A pseudo-element
// keeps its second colon in the returned name.
func (p *Parser) pseudo() (string, *ast.Function, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return "", nil, err
	}
	var prefix string
	if p.tok.Kind == token.COLON && !p.tok.Space {
		prefix = ":"
		p.next()
	}
	name, err := p.prefixedIdentity()
	if err != nil {
		return "", nil, err
	}
	name = prefix + name

	if p.tok.Kind != token.LPAREN || p.tok.Space {
		return name, nil, nil
	}
	args, err := p.pseudoArguments()
	if err != nil {
		return "", nil, err
	}
	return "", &ast.Function{Name: name, Expression: args}, nil
}

// pseudoArguments parses the arguments of a functional pseudo-class. A class
// argument such as ":not(.foo)" is kept as a single unquoted string term.
func (p *Parser) pseudoArguments() (*ast.Expression, error) {
	if tok := p.peek(); p.tok.Kind != token.LPAREN || tok.Kind != token.DOT || tok.Space {
		return p.arguments()
	}
	p.next()
	p.next()
	if p.tok.Space {
		return nil, p.syntaxError(InvalidIdentity)
	}
	name, err := p.prefixedIdentity()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Expression{Terms: []*ast.Term{{Type: ast.String, Value: "." + name}}}, nil
}

// arguments parses a parenthesized expression, which may be empty.
func (p *Parser) arguments() (*ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	e := &ast.Expression{}
	if p.tok.Kind != token.RPAREN {
		var err error
		if e, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

// expression parses terms separated by whitespace, "," or "/".
func (p *Parser) expression() (*ast.Expression, error) {
	e := &ast.Expression{}
	var sep rune
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		t.Separator = sep
		e.Terms = append(e.Terms, t)

		switch p.tok.Kind {
		case token.COMMA:
			sep = ','
			p.next()
		case token.SLASH:
			sep = '/'
			p.next()
		default:
			if !firstTerm.has(p.tok.Kind) {
				return e, nil
			}
			sep = 0
		}
	}
}

// term parses a single value.
func (p *Parser) term() (*ast.Term, error) {
	switch tok := p.tok; {
	case tok.Kind == token.SQUOTE || tok.Kind == token.DQUOTE || tok.Kind == token.BADSTRING:
		v, q, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		return &ast.Term{Type: ast.String, Value: v, Quote: q}, nil

	case tok.Kind == token.URL:
		return p.uri()

	case tok.Kind == token.UNICODE:
		p.next()
		return &ast.Term{Type: ast.Unicode, Value: strings.ToUpper(tok.Value[2:])}, nil

	case tok.Kind == token.HASH:
		return p.hexValue()

	case tok.Kind == token.MINUS:
		// A minus is a sign when a number follows and a vendor prefix otherwise.
		if next := p.peek(); !next.Space && numberSet.has(next.Kind) {
			p.next()
			return p.number(&ast.Term{Sign: '-'})
		}
		return p.identifier()

	case tok.Kind == token.PLUS:
		p.next()
		if p.tok.Space || !numberSet.has(p.tok.Kind) {
			return nil, p.syntaxError(InvalidTerm)
		}
		return p.number(&ast.Term{Sign: '+'})

	case numberSet.has(tok.Kind):
		return p.number(&ast.Term{})

	case identitySet.has(tok.Kind):
		return p.identifier()
	}
	return nil, p.syntaxError(InvalidTerm)
}

// number parses digits with an optional fraction followed by an optional
// adjacent unit or "An+B" suffix.
func (p *Parser) number(t *ast.Term) (*ast.Term, error) {
	var buf strings.Builder
	if p.tok.Kind == token.DIGITS {
		buf.WriteString(p.tok.Value)
		p.next()
	}

	// Fraction.
	if p.tok.Kind == token.DOT && (buf.Len() == 0 || !p.tok.Space) {
		if next := p.peek(); next.Kind == token.DIGITS && !next.Space {
			p.next()
			buf.WriteByte('.')
			buf.WriteString(p.tok.Value)
			p.next()
		} else if buf.Len() == 0 {
			return nil, p.syntaxError(InvalidTerm)
		}
	}

	if buf.Len() > 0 && p.tok.Space {
		t.Value = buf.String()
		return t, nil
	}

	switch tok := p.tok; {
	case tok.Kind == token.PERCENT:
		t.Unit = ast.Percent
		p.next()
	case tok.Kind == token.N:
		p.nth(&buf)
	case tok.Kind == token.IDENT && isNth(tok.Value):
		buf.WriteString(tok.Value)
		p.next()
	case tok.Kind == token.IDENT:
		if u, ok := ast.LookupUnit(tok.Value); ok {
			t.Unit = u
		} else {
			p.semanticError(tok.Pos, UnrecognizedUnit, fmt.Sprintf("unrecognized unit '%s'", tok.Value))
		}
		p.next()
	}

	if buf.Len() == 0 {
		return nil, p.syntaxError(InvalidTerm)
	}
	t.Value = buf.String()
	return t, nil
}

// nth consumes "n" and an optional signed offset. The sign is only consumed
// when digits follow it.
func (p *Parser) nth(buf *strings.Builder) {
	buf.WriteString(p.tok.Value)
	p.next()

	if p.tok.Kind != token.PLUS && p.tok.Kind != token.MINUS {
		return
	} else if next := p.peek(); next.Kind != token.DIGITS {
		return
	}
	buf.WriteString(p.tok.Value)
	p.next()
	buf.WriteString(p.tok.Value)
	p.next()
}

// isNth returns true for identifiers such as "n-1" that the scanner reads
// as a single name.
func isNth(s string) bool {
	if len(s) < 3 || s[0] != 'n' || s[1] != '-' {
		return false
	}
	for i := 2; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// identifier parses an identifier term, including IE filter compounds such
// as "progid:DXImageTransform.Microsoft.Alpha" and "opacity=50". An adjacent
// "(" makes it a function term.
func (p *Parser) identifier() (*ast.Term, error) {
	name, err := p.prefixedIdentity()
	if err != nil {
		return nil, err
	}

	for !p.tok.Space && (p.tok.Kind == token.COLON || p.tok.Kind == token.DOT || p.tok.Kind == token.EQ) {
		sep := p.tok.Value
		p.next()
		if p.tok.Space || !(identitySet.has(p.tok.Kind) || p.tok.Kind == token.DIGITS) {
			return nil, p.syntaxError(InvalidTerm)
		}
		name += sep + p.tok.Value
		p.next()
	}

	if p.tok.Kind != token.LPAREN || p.tok.Space {
		return &ast.Term{Type: ast.String, Value: name}, nil
	}
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return &ast.Term{Type: ast.FunctionTerm, Function: &ast.Function{Name: name, Expression: args}}, nil
}

// hexValue parses "#" followed by hex digits. Digits and letters are
// separate tokens so an adjacent identifier is joined only while the value
// stays within six digits.
func (p *Parser) hexValue() (*ast.Term, error) {
	if _, err := p.expect(token.HASH); err != nil {
		return nil, err
	} else if p.tok.Space {
		return nil, p.syntaxError(InvalidHexValue)
	}

	var value string
	switch p.tok.Kind {
	case token.DIGITS:
		value = p.tok.Value
		p.next()
		if tok := p.tok; tok.Kind == token.IDENT && !tok.Space && isHex(tok.Value) && len(value)+len(tok.Value) <= 6 {
			value += tok.Value
			p.next()
		}
	case token.IDENT:
		if !isHex(p.tok.Value) || len(p.tok.Value) > 6 {
			return nil, p.syntaxError(InvalidHexValue)
		}
		value = p.tok.Value
		p.next()
	default:
		return nil, p.syntaxError(InvalidHexValue)
	}
	return &ast.Term{Type: ast.Hex, Value: value}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return false
		}
	}
	return s != ""
}

// uri parses "url(value)" where value is quoted or a run of adjacent tokens.
func (p *Parser) uri() (*ast.Term, error) {
	if _, err := p.expect(token.URL); err != nil {
		return nil, err
	} else if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	t := &ast.Term{Type: ast.URL}
	switch p.tok.Kind {
	case token.SQUOTE, token.DQUOTE, token.BADSTRING:
		v, _, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		t.Value = v
	default:
		var buf strings.Builder
		for p.tok.Kind != token.RPAREN && p.tok.Kind != token.EOF && (buf.Len() == 0 || !p.tok.Space) {
			buf.WriteString(p.tok.Value)
			p.next()
		}
		if buf.Len() == 0 {
			return nil, p.syntaxError(InvalidURI)
		}
		t.Value = buf.String()
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return t, nil
}

// quotedString returns the value and quote character of a string token.
func (p *Parser) quotedString() (string, rune, error) {
	var q rune
	switch p.tok.Kind {
	case token.SQUOTE:
		q = '\''
	case token.DQUOTE:
		q = '"'
	default:
		return "", 0, p.syntaxError(InvalidQuotedString)
	}
	v := p.tok.Value
	p.next()
	return v, q, nil
}

// prefixedIdentity parses an identity with optional leading hyphens,
// such as a vendor prefixed property name.
func (p *Parser) prefixedIdentity() (string, error) {
	var prefix string
	for p.tok.Kind == token.MINUS {
		prefix += "-"
		p.next()
		if p.tok.Space {
			return "", p.syntaxError(InvalidIdentity)
		}
	}
	name, err := p.identity()
	if err != nil {
		return "", err
	}
	return prefix + name, nil
}

// identity parses an identifier. Reserved words are accepted as names.
func (p *Parser) identity() (string, error) {
	if !identitySet.has(p.tok.Kind) {
		return "", p.syntaxError(InvalidIdentity)
	}
	v := p.tok.Value
	p.next()
	return v, nil
}

// next consumes the lookahead and scans the next token.
func (p *Parser) next() {
	p.prev, p.tok = p.tok, p.s.Scan()
	p.errDist++
}

// peek returns the token after the lookahead without consuming anything.
func (p *Parser) peek() token.Token {
	p.s.ResetPeek()
	return p.s.Peek()
}

// expect consumes the lookahead if it has kind k.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.tok.Kind != k {
		return p.tok, p.syntaxError(int(k))
	}
	tok := p.tok
	p.next()
	return tok, nil
}

// syntaxError returns an error for the lookahead. Errors at EOF are
// reported at the last consumed token.
func (p *Parser) syntaxError(code int) error {
	if err := p.s.Err(); err != nil {
		return p.fatal(err)
	}

	pos := p.tok.Pos
	switch {
	case p.tok.Kind == token.BADSTRING:
		code = UnterminatedString
	case p.tok.Kind == token.EOF && p.prev.Pos.Line > 0:
		pos = p.prev.Pos
	}
	return p.report(&Error{Kind: SyntaxError, Code: code, Message: Message(code), Pos: pos})
}

// semanticError records an error without interrupting the parse.
func (p *Parser) semanticError(pos token.Pos, code int, msg string) {
	p.report(&Error{Kind: SemanticError, Code: code, Message: msg, Pos: pos})
}

// report records e unless it follows too closely after the previous error.
func (p *Parser) report(e *Error) *Error {
	e.Excerpt = p.s.Excerpt(e.Pos)
	if p.errDist >= minErrDist {
		p.diags = append(p.diags, e)
		p.log.Debug("css error",
			zap.Stringer("kind", e.Kind),
			zap.Int("code", e.Code),
			zap.Stringer("pos", e.Pos),
			zap.String("message", e.Message),
		)
	}
	p.errDist = 0
	return e
}

func (p *Parser) fatal(err error) error {
	return &Error{Kind: FatalError, Code: ReadFailure, Message: err.Error(), Err: err}
}

// resync skips to the next token in follow when the parser is tolerant.
// Otherwise, and for read failures, err is returned unchanged.
func (p *Parser) resync(err error, follow tokenSet) error {
	var e *Error
	if !p.config.Tolerant || (errors.As(err, &e) && e.Kind == FatalError) {
		return err
	}
	p.skip(follow)
	if err := p.s.Err(); err != nil {
		return p.fatal(err)
	}
	return nil
}

// skip consumes tokens until one in follow is found outside of any braces.
// A braced block that closes back to the starting depth is consumed whole
// when follow includes "}".
func (p *Parser) skip(follow tokenSet) {
	start := p.tok.Pos
	depth := 0
	defer func() {
		p.log.Debug("recovered", zap.Stringer("from", start), zap.Stringer("to", p.tok.Pos))
	}()

	for ; p.tok.Kind != token.EOF; p.next() {
		switch {
		case p.tok.Kind == token.LBRACE:
			depth++
		case p.tok.Kind == token.RBRACE && depth > 0:
			if depth--; depth == 0 && follow.has(token.RBRACE) {
				p.next()
				return
			}
		case depth == 0 && follow.has(p.tok.Kind):
			return
		}
	}
}
