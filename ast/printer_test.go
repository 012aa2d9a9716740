package ast_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/siikty/css/ast"
)

// Ensure than the printer prints nodes correctly.
func TestFprint(t *testing.T) {
	var tests = []struct {
		in ast.Node
		s  string
	}{
		// 0. Full stylesheet with a directive and a rule set.
		{in: &ast.Stylesheet{
			Directives: []*ast.Directive{
				{Type: ast.Charset, Name: "charset", Expression: expr(&ast.Term{Type: ast.String, Value: "utf-8", Quote: '"'})},
			},
			RuleSets: []*ast.RuleSet{
				{
					Selectors: []*ast.Selector{
						{SimpleSelectors: []*ast.SimpleSelector{{ElementName: "foo"}, {Combinator: ast.Descendant, ElementName: "bar"}}},
						{SimpleSelectors: []*ast.SimpleSelector{{Class: "baz"}}},
					},
					Declarations: []*ast.Declaration{
						{Name: "font-size", Expression: expr(&ast.Term{Value: "10", Unit: ast.PX})},
						{Name: "color", Expression: expr(&ast.Term{Type: ast.Hex, Value: "fff"}), Important: true},
					},
				},
			},
		}, s: "@charset \"utf-8\";\n\nfoo bar, .baz {\n\tfont-size: 10px;\n\tcolor: #fff !important;\n}\n"},

		// Test that nil values are safe to print.
		{in: (*ast.Stylesheet)(nil), s: ``},     // 1
		{in: (*ast.RuleSet)(nil), s: ``},        // 2
		{in: (*ast.Selector)(nil), s: ``},       // 3
		{in: (*ast.SimpleSelector)(nil), s: ``}, // 4
		{in: (*ast.Attribute)(nil), s: ``},      // 5
		{in: (*ast.Declaration)(nil), s: ``},    // 6
		{in: (*ast.Expression)(nil), s: ``},     // 7
		{in: (*ast.Term)(nil), s: ``},           // 8
		{in: (*ast.Function)(nil), s: ``},       // 9
		{in: (*ast.Directive)(nil), s: ``},      // 10

		// Selectors.
		{in: &ast.SimpleSelector{ElementName: "a", ID: "bar", Class: "foo", Pseudo: "hover"}, s: `a#bar.foo:hover`},                      // 11
		{in: &ast.SimpleSelector{Class: "a", Child: &ast.SimpleSelector{Class: "b"}}, s: `.a.b`},                                        // 12
		{in: &ast.SimpleSelector{ElementName: "*", Pseudo: ":before"}, s: `*::before`},                                                  // 13
		{in: &ast.SimpleSelector{ElementName: "li", Function: &ast.Function{Name: "nth-child", Expression: expr(num("2n+1"))}}, s: `li:nth-child(2n+1)`}, // 14
		{in: &ast.Selector{SimpleSelectors: []*ast.SimpleSelector{
			{ElementName: "a"},
			{Combinator: ast.Child, ElementName: "b"},
			{Combinator: ast.Adjacent, ElementName: "c"},
			{Combinator: ast.Sibling, ElementName: "d"},
		}}, s: `a > b + c ~ d`}, // 15

		// Attributes.
		{in: &ast.Attribute{Operand: "title"}, s: `[title]`},                                                        // 16
		{in: &ast.Attribute{Operand: "data-x", Operator: ast.Equals, Value: "y", Quote: '"'}, s: `[data-x="y"]`},    // 17
		{in: &ast.Attribute{Operand: "lang", Operator: ast.Hyphenated, Value: "en"}, s: `[lang|=en]`},               // 18
		{in: &ast.Attribute{Operand: "href", Operator: ast.BeginsWith, Value: "http", Quote: '\''}, s: `[href^='http']`}, // 19
		{in: &ast.Attribute{Operand: "href", Operator: ast.EndsWith, Value: ".pdf", Quote: '\''}, s: `[href$='.pdf']`},   // 20

		// Terms.
		{in: num("12"), s: `12`}, // 21
		{in: &ast.Term{Sign: '-', Value: "1.5", Unit: ast.EM}, s: `-1.5em`},                                  // 22
		{in: &ast.Term{Value: "50", Unit: ast.Percent}, s: `50%`},                                          // 23
		{in: &ast.Term{Value: "10", Unit: ast.KHZ}, s: `10kHz`},                                            // 24
		{in: &ast.Term{Type: ast.String, Value: "bold"}, s: `bold`},                                        // 25
		{in: &ast.Term{Type: ast.String, Value: `it's`, Quote: '\''}, s: `'it\'s'`},                        // 26
		{in: &ast.Term{Type: ast.URL, Value: "a.png"}, s: `url('a.png')`},                                  // 27
		{in: &ast.Term{Type: ast.Unicode, Value: "0041-00FF"}, s: `U+0041-00FF`},                           // 28
		{in: &ast.Term{Type: ast.Hex, Value: "FF0000"}, s: `#FF0000`},                                      // 29
		{in: &ast.Term{Type: ast.FunctionTerm, Function: &ast.Function{Name: "rgb", Expression: &ast.Expression{Terms: []*ast.Term{
			num("1"), {Separator: ',', Value: "2"}, {Separator: ',', Value: "3"},
		}}}}, s: `rgb(1, 2, 3)`}, // 30

		// Expressions.
		{in: &ast.Expression{Terms: []*ast.Term{
			{Value: "12", Unit: ast.PX},
			{Separator: '/', Value: "1.5"},
			{Type: ast.String, Value: "Times", Quote: '"'},
			{Separator: ',', Type: ast.String, Value: "serif"},
		}}, s: `12px/1.5 "Times", serif`}, // 31

		// Directives.
		{in: &ast.Directive{Type: ast.Media, Name: "media", Mediums: []ast.Medium{ast.Screen, ast.Print}, RuleSets: []*ast.RuleSet{
			{Selectors: []*ast.Selector{{SimpleSelectors: []*ast.SimpleSelector{{ElementName: "body"}}}}, Declarations: []*ast.Declaration{{Name: "margin", Expression: expr(num("0"))}}},
		}}, s: "@media screen, print {\n\tbody {\n\t\tmargin: 0;\n\t}\n}"}, // 32
		{in: &ast.Directive{Type: ast.Import, Name: "import", Expression: expr(&ast.Term{Type: ast.URL, Value: "a.css"}), Mediums: []ast.Medium{ast.Print}}, s: `@import url('a.css') print;`}, // 33
		{in: &ast.Directive{Type: ast.Page, Name: "page", Expression: expr(&ast.Term{Type: ast.String, Value: ":first"}), Declarations: []*ast.Declaration{
			{Name: "margin", Expression: expr(&ast.Term{Value: "1", Unit: ast.IN})},
		}}, s: "@page :first {\n\tmargin: 1in;\n}"}, // 34
		{in: &ast.Directive{Type: ast.FontFace, Name: "font-face"}, s: "@font-face {\n}"},                                                         // 35
		{in: &ast.Directive{Type: ast.Other, Name: "-moz-document", Expression: expr(&ast.Term{Type: ast.String, Value: "x"})}, s: `@-moz-document x;`}, // 36
	}

	for i, tt := range tests {
		var buf bytes.Buffer
		if err := ast.Fprint(&buf, tt.in); err != nil {
			t.Errorf("%d. unexpected error: %s", i, err)
		} else if buf.String() != tt.s {
			t.Errorf("%d. \n\nexp: %q\n\ngot: %q", i, tt.s, buf.String())
		} else if tt.in.String() != tt.s {
			t.Errorf("%d. String() mismatch: %q", i, tt.in.String())
		}
	}
}

// Ensure that write errors are returned.
func TestFprint_WriteError(t *testing.T) {
	err := ast.Fprint(errWriter{}, &ast.Term{Type: ast.String, Value: "x"})
	if err == nil || err.Error() != "marker" {
		t.Fatalf("unexpected error: %v", err)
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("marker") }

func expr(terms ...*ast.Term) *ast.Expression {
	return &ast.Expression{Terms: terms}
}

func num(s string) *ast.Term {
	return &ast.Term{Type: ast.Number, Value: s}
}
