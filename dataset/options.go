// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultCommentPrefix marks comment lines in KONECT-style edge lists.
const DefaultCommentPrefix = "%"

// Option configures Parse and Load.
type Option func(*Options)

// Options holds the parser policy.
type Options struct {
	// CommentPrefix marks lines to ignore, checked after leading whitespace.
	CommentPrefix string

	// SkipMalformed skips bad data lines instead of aborting the parse.
	SkipMalformed bool

	// Logger receives a warning per skipped line.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns the abort-on-error policy with "%" comments and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		CommentPrefix: DefaultCommentPrefix,
		SkipMalformed: false,
		Logger:        zerolog.Nop(),
	}
}

// WithCommentPrefix sets the comment marker. An empty prefix is a violation.
func WithCommentPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix == "" {
			o.err = fmt.Errorf("%w: comment prefix cannot be empty", ErrOptionViolation)
			return
		}
		o.CommentPrefix = prefix
	}
}

// WithSkipMalformed switches between aborting (false) and skipping (true)
// malformed data lines.
func WithSkipMalformed(skip bool) Option {
	return func(o *Options) { o.SkipMalformed = skip }
}

// WithLogger sets the logger used for skipped-line warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
