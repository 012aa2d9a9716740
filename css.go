package css

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siikty/css/ast"
	"github.com/siikty/css/parser"
	"github.com/siikty/css/scanner"
)

// ParseString parses a stylesheet from a string.
// An optional config changes the parser's error handling and logging.
func ParseString(src string, config ...parser.Config) (*ast.Stylesheet, error) {
	s, err := scanner.NewString(src)
	if err != nil {
		return nil, fatal(err)
	}
	return parse(s, config)
}

// Parse parses a stylesheet from a reader that cannot seek.
// All input read is kept in memory until the parse completes.
func Parse(r io.Reader, config ...parser.Config) (*ast.Stylesheet, error) {
	s, err := scanner.New(r)
	if err != nil {
		return nil, fatal(err)
	}
	return parse(s, config)
}

// ParseSeeker parses a stylesheet from a seekable reader.
func ParseSeeker(rs io.ReadSeeker, config ...parser.Config) (*ast.Stylesheet, error) {
	s, err := scanner.NewSeekable(rs)
	if err != nil {
		return nil, fatal(err)
	}
	return parse(s, config)
}

// ParseFile parses the stylesheet in the named file.
func ParseFile(name string, config ...parser.Config) (*ast.Stylesheet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSeeker(f, config...)
}

func parse(s *scanner.Scanner, config []parser.Config) (*ast.Stylesheet, error) {
	var c parser.Config
	if len(config) > 0 {
		c = config[0]
	}

	ss, err := parser.New(s, c).Parse()
	if err != nil {
		// Append the offending source line to the message.
		var e *parser.Error
		if errors.As(err, &e) && e.Excerpt != "" {
			return nil, fmt.Errorf("%w\n\t%s", err, e.Excerpt)
		}
		return nil, err
	}
	return ss, nil
}

// fatal wraps an error raised before the first token was read.
func fatal(err error) error {
	return &parser.Error{Kind: parser.FatalError, Code: parser.ReadFailure, Message: err.Error(), Err: err}
}
