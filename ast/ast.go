package ast

// Node represents a node in the CSS3 abstract syntax tree.
type Node interface {
	node()
	String() string
}

func (_ *Stylesheet) node()     {}
func (_ *RuleSet) node()        {}
func (_ *Selector) node()       {}
func (_ *SimpleSelector) node() {}
func (_ *Attribute) node()      {}
func (_ *Declaration) node()    {}
func (_ *Expression) node()     {}
func (_ *Term) node()           {}
func (_ *Function) node()       {}
func (_ *Directive) node()      {}

// Stylesheet represents a top-level CSS3 stylesheet.
// Directives and rule sets are kept in source order.
type Stylesheet struct {
	Directives []*Directive
	RuleSets   []*RuleSet
}

func (s *Stylesheet) String() string { return print(s) }

// RuleSet represents a group of selectors and their declaration block.
type RuleSet struct {
	Selectors    []*Selector
	Declarations []*Declaration
}

func (r *RuleSet) String() string { return print(r) }

// Selector represents a chain of simple selectors joined by combinators.
type Selector struct {
	SimpleSelectors []*SimpleSelector
}

func (s *Selector) String() string { return print(s) }

// Combinator represents the relationship between a simple selector and
// the one before it.
type Combinator int

const (
	NoCombinator Combinator = iota
	Descendant              // whitespace
	Child                   // >
	Adjacent                // +
	Sibling                 // ~
)

var combinators = [...]string{
	NoCombinator: "",
	Descendant:   " ",
	Child:        " > ",
	Adjacent:     " + ",
	Sibling:      " ~ ",
}

// String returns the combinator as it appears between two selectors.
func (c Combinator) String() string {
	if c >= 0 && c < Combinator(len(combinators)) {
		return combinators[c]
	}
	return ""
}

// SimpleSelector represents a compound selector such as "div.foo#bar".
//
// Each predicate fills its own field. When a predicate appears twice in one
// compound, as with ".a.b", the extra predicate is stored on Child.
type SimpleSelector struct {
	Combinator  Combinator
	ElementName string // element name or "*"
	ID          string
	Class       string
	Pseudo      string     // pseudo-class without the leading colon
	Attribute   *Attribute // [name=value]
	Function    *Function  // functional pseudo-class such as :nth-child(2n+1)
	Child       *SimpleSelector
}

func (s *SimpleSelector) String() string { return print(s) }

// AttributeOperator represents the comparison in an attribute selector.
type AttributeOperator int

const (
	NoOperator AttributeOperator = iota
	Equals                       // =
	InList                       // ~=
	Hyphenated                   // |=
	BeginsWith                   // ^=
	EndsWith                     // $=
	Contains                     // *=
)

var attributeOperators = [...]string{
	NoOperator: "",
	Equals:     "=",
	InList:     "~=",
	Hyphenated: "|=",
	BeginsWith: "^=",
	EndsWith:   "$=",
	Contains:   "*=",
}

// String returns the operator symbol.
func (op AttributeOperator) String() string {
	if op >= 0 && op < AttributeOperator(len(attributeOperators)) {
		return attributeOperators[op]
	}
	return ""
}

// Attribute represents an attribute selector.
type Attribute struct {
	Operand  string
	Operator AttributeOperator
	Value    string
	Quote    rune // quote used for Value, zero if unquoted
}

func (a *Attribute) String() string { return print(a) }

// Declaration represents a property name and value.
type Declaration struct {
	Name       string
	Expression *Expression
	Important  bool
}

func (d *Declaration) String() string { return print(d) }

// Expression represents a list of terms.
type Expression struct {
	Terms []*Term
}

func (e *Expression) String() string { return print(e) }

// TermType represents the kind of value held by a term.
type TermType int

const (
	Number TermType = iota
	FunctionTerm
	String
	URL
	Unicode
	Hex
)

var termTypes = [...]string{
	Number:       "Number",
	FunctionTerm: "Function",
	String:       "String",
	URL:          "URL",
	Unicode:      "Unicode",
	Hex:          "Hex",
}

func (t TermType) String() string {
	if t >= 0 && t < TermType(len(termTypes)) {
		return termTypes[t]
	}
	return ""
}

// Term represents a single value in an expression.
//
// Separator holds the "," or "/" that preceded the term, if any. Sign holds
// a leading "+" or "-" on numbers. Hex values are stored without the "#".
type Term struct {
	Type      TermType
	Separator rune
	Sign      rune
	Value     string
	Unit      Unit
	Quote     rune // quote used for a string value, zero for identifiers
	Function  *Function
}

func (t *Term) String() string { return print(t) }

// Function represents a function call such as rgb(0, 0, 0).
type Function struct {
	Name       string
	Expression *Expression
}

func (f *Function) String() string { return print(f) }

// DirectiveType represents the kind of an at-rule.
type DirectiveType int

const (
	Media DirectiveType = iota
	Import
	Charset
	Page
	FontFace
	Namespace
	Other
)

var directiveTypes = map[string]DirectiveType{
	"media":     Media,
	"import":    Import,
	"charset":   Charset,
	"page":      Page,
	"font-face": FontFace,
	"namespace": Namespace,
}

// LookupDirectiveType returns the type for a lowercase directive name
// without the "@".
func LookupDirectiveType(name string) DirectiveType {
	if typ, ok := directiveTypes[name]; ok {
		return typ
	}
	return Other
}

// Directive represents an at-rule. Only the fields relevant to the
// directive's type are populated.
type Directive struct {
	Type         DirectiveType
	Name         string // name without the "@"
	Expression   *Expression
	Mediums      []Medium
	Directives   []*Directive
	RuleSets     []*RuleSet
	Declarations []*Declaration
}

func (d *Directive) String() string { return print(d) }

// Medium represents a media type.
type Medium int

const (
	All Medium = iota
	Aural
	Braille
	Embossed
	Handheld
	Print
	Projection
	Screen
	TTY
	TV
)

var mediums = [...]string{
	All:        "all",
	Aural:      "aural",
	Braille:    "braille",
	Embossed:   "embossed",
	Handheld:   "handheld",
	Print:      "print",
	Projection: "projection",
	Screen:     "screen",
	TTY:        "tty",
	TV:         "tv",
}

func (m Medium) String() string {
	if m >= 0 && m < Medium(len(mediums)) {
		return mediums[m]
	}
	return ""
}
