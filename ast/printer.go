package ast

import (
	"bytes"
	"io"
	"strings"
)

// Fprint writes the CSS representation of a node to w.
//
// Rule sets are written one declaration per line and nested rule sets are
// indented with tabs. Whitespace and comments from the source are not kept.
func Fprint(w io.Writer, n Node) error {
	p := printer{w: w}
	p.print(n)
	return p.err
}

// printer writes nodes and records the first write error.
type printer struct {
	w      io.Writer
	err    error
	indent int
}

func (p *printer) write(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) print(n Node) {
	switch n := n.(type) {
	case *Stylesheet:
		if n == nil {
			return
		}
		for _, d := range n.Directives {
			p.print(d)
			p.write("\n")
		}
		if len(n.Directives) > 0 {
			p.write("\n")
		}
		for _, r := range n.RuleSets {
			p.print(r)
			p.write("\n")
		}

	case *RuleSet:
		if n == nil {
			return
		}
		start := strings.Repeat("\t", p.indent)
		p.write(start)
		for i, sel := range n.Selectors {
			if i > 0 {
				p.write(", ")
			}
			p.print(sel)
		}
		p.write(" {\n")
		for _, d := range n.Declarations {
			p.write(start + "\t")
			p.print(d)
			p.write(";\n")
		}
		p.write(start + "}")

	case *Selector:
		if n == nil {
			return
		}
		for _, ss := range n.SimpleSelectors {
			p.print(ss)
		}

	case *SimpleSelector:
		if n == nil {
			return
		}
		p.write(n.Combinator.String())
		p.write(n.ElementName)
		if n.ID != "" {
			p.write("#" + n.ID)
		}
		if n.Class != "" {
			p.write("." + n.Class)
		}
		if n.Pseudo != "" {
			p.write(":" + n.Pseudo)
		}
		if n.Attribute != nil {
			p.print(n.Attribute)
		}
		if n.Function != nil {
			p.write(":")
			p.print(n.Function)
		}
		if n.Child != nil {
			p.print(n.Child)
		}

	case *Attribute:
		if n == nil {
			return
		}
		p.write("[" + n.Operand)
		if n.Operator != NoOperator {
			p.write(n.Operator.String())
			p.write(quote(n.Value, n.Quote))
		}
		p.write("]")

	case *Declaration:
		if n == nil {
			return
		}
		p.write(n.Name + ": ")
		p.print(n.Expression)
		if n.Important {
			p.write(" !important")
		}

	case *Expression:
		if n == nil {
			return
		}
		for i, t := range n.Terms {
			if i > 0 {
				switch t.Separator {
				case ',':
					p.write(", ")
				case '/':
					p.write("/")
				default:
					p.write(" ")
				}
			}
			p.print(t)
		}

	case *Term:
		if n == nil {
			return
		}
		switch n.Type {
		case FunctionTerm:
			p.print(n.Function)
		case URL:
			p.write("url(" + quote(n.Value, '\'') + ")")
		case Unicode:
			p.write("U+" + n.Value)
		case Hex:
			p.write("#" + n.Value)
		case String:
			p.write(quote(n.Value, n.Quote))
		default:
			if n.Sign != 0 {
				p.write(string(n.Sign))
			}
			p.write(n.Value)
			p.write(n.Unit.String())
		}

	case *Function:
		if n == nil {
			return
		}
		p.write(n.Name + "(")
		p.print(n.Expression)
		p.write(")")

	case *Directive:
		if n == nil {
			return
		}
		p.printDirective(n)
	}
}

// printDirective writes an at-rule. Directives without a body end in ";".
func (p *printer) printDirective(d *Directive) {
	start := strings.Repeat("\t", p.indent)
	p.write(start + "@" + d.Name)

	// Imports list their mediums after the imported location.
	if d.Type != Import {
		p.printMediums(d.Mediums)
	}
	if d.Expression != nil && len(d.Expression.Terms) > 0 {
		p.write(" ")
		p.print(d.Expression)
	}
	if d.Type == Import {
		p.printMediums(d.Mediums)
	}

	hasBody := len(d.Directives) > 0 || len(d.RuleSets) > 0 || len(d.Declarations) > 0
	switch d.Type {
	case Media, Page, FontFace:
		hasBody = true
	}
	if !hasBody {
		p.write(";")
		return
	}

	p.write(" {\n")
	p.indent++
	for _, child := range d.Directives {
		p.print(child)
		p.write("\n")
	}
	for _, r := range d.RuleSets {
		p.print(r)
		p.write("\n")
	}
	for _, decl := range d.Declarations {
		p.write(start + "\t")
		p.print(decl)
		p.write(";\n")
	}
	p.indent--
	p.write(start + "}")
}

func (p *printer) printMediums(a []Medium) {
	for i, m := range a {
		if i == 0 {
			p.write(" ")
		} else {
			p.write(", ")
		}
		p.write(m.String())
	}
}

// quote wraps s in the quote character q, escaping as needed.
// A zero quote returns s unchanged.
func quote(s string, q rune) string {
	if q == 0 {
		return s
	}
	var buf bytes.Buffer
	_, _ = buf.WriteRune(q)
	for _, ch := range s {
		switch ch {
		case q, '\\':
			_ = buf.WriteByte('\\')
			_, _ = buf.WriteRune(ch)
		case '\n':
			_, _ = buf.WriteString(`\a `)
		default:
			_, _ = buf.WriteRune(ch)
		}
	}
	_, _ = buf.WriteRune(q)
	return buf.String()
}

// print returns the CSS representation of a node.
func print(n Node) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, n)
	return buf.String()
}
