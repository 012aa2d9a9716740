/*
Package css implements a CSS3 scanner and parser. It turns raw CSS text into
a strongly typed syntax tree that can be inspected, rendered back to CSS and
queried for colors and lengths.


Basics

Parsing occurs in three steps. The buffer package reads bytes from the input
through a window that works with both seekable and streaming readers, and
decodes them into code points. The scanner breaks the code points into tokens
such as identifiers, digit runs, strings and punctuation. Whitespace and
comments are dropped but every token records whether they preceded it. The
parser then consumes the tokens with one method per grammar production and
builds the tree defined in the ast package.

The simplest way to parse is with ParseString:

	ss, err := css.ParseString(`a { color: red }`)

Parse and ParseSeeker read from an io.Reader or io.ReadSeeker instead.


Abstract Syntax Tree

At the top-level there is a Stylesheet which holds Directives and RuleSets.
A Directive is an at-rule such as @media, @import or @page. Depending on its
type it holds mediums, an expression, nested directives and rule sets, or a
list of declarations.

A RuleSet is a list of Selectors followed by a block of Declarations. Each
Selector is a chain of SimpleSelectors joined by combinators. A Declaration
is a property name, an Expression and an important flag. An Expression is a
list of Terms, each of which is a number with an optional unit, a string or
identifier, a url, a unicode range, a hex color or a function call.

Every node implements String() which renders it as CSS. Terms and
declarations can also be resolved to RGB colors and expressions can be
converted to points, twips and EMUs.


Errors

By default the first error aborts the parse and is returned as a
*parser.Error with its line, column and the source line it occurred on.
A tolerant parser records errors instead and skips ahead to the next
declaration or statement. See parser.Config.

*/
package css
