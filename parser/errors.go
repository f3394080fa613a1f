package parser

import "github.com/pkg/errors"

// ErrBufferExceeded is returned by the tokenizer (and, wrapped, by the
// parser entry points) when a single token's raw bytes would exceed the
// configured MaxBuf, per the "configurable maximum buffer size" requirement.
var ErrBufferExceeded = errors.New("html: buffer exceeded")

// ErrNoProgress is returned when the underlying reader repeatedly returns
// zero bytes with a nil error; the tokenizer retries a fixed number of
// times before giving up rather than spinning forever.
var ErrNoProgress = errors.New("html: reader made no progress")

// ErrInconsistentNode is returned by ParseFragment when the supplied
// context Node is not an element with a tag name, or has a non-zero Atom
// that disagrees with its Data; this indicates a caller bug, not malformed
// HTML.
var ErrInconsistentNode = errors.New("html: inconsistent node: context is not a named element")

const maxNoProgressReads = 8
