package parser

import "go.uber.org/zap"

// minErrDist is the number of tokens that must be consumed after an error
// before another error is recorded.
const minErrDist = 2

// Config controls parser behavior. The zero value is a strict parser
// without logging.
type Config struct {
	// Tolerant records errors in Diagnostics and skips to the next
	// declaration or statement instead of aborting the parse.
	// Read failures abort in either mode.
	Tolerant bool

	// Logger receives debug entries for errors, recovery and parse results.
	// A nil logger discards everything.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
