// Package parser implements an HTML5 tokenizer and tree constructor
// conforming to the WHATWG parsing algorithm: Parse and ParseFragment are
// the two entry points, each driving a Tokenizer and a treeConstructor
// through a single pull loop with no goroutines involved.
package parser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/naqvis/crystal-html5/atom"
)

// Options configures a parse. The zero value parses as a full document with
// scripting disabled.
type Options struct {
	// Scripting, when true, makes <noscript> a raw-text element instead of
	// letting its contents be parsed as markup, and is consulted by the
	// fragment-parsing raw-text-mode table below.
	Scripting bool
	// MaxBuf bounds the tokenizer's live token window; 0 means unbounded.
	MaxBuf int
	// Logger receives a Debug line when the tokenizer stops on a hard error
	// (a reader error, ErrBufferExceeded or ErrNoProgress); recovered parse
	// errors are not logged. A nil Logger uses logrus's standard logger.
	Logger *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Parse parses an entire HTML document from r and returns its document
// node, per §5.1-5.4. The returned error is non-nil only for I/O failures
// reading r (ErrBufferExceeded, ErrNoProgress, or a wrapped reader error);
// malformed markup is never an error; it is recovered from per the
// insertion-mode rules, same as a browser would.
func Parse(r io.Reader, opts Options) (*Node, error) {
	z := NewTokenizer(r)
	z.SetMaxBuf(opts.MaxBuf)
	c := newTreeConstructor(z)
	c.scripting = opts.Scripting
	log := opts.logger()

	if err := runTokenLoop(z, c, log); err != nil {
		return nil, errors.Wrap(err, "html: parse")
	}
	return c.doc, nil
}

// ParseFragment parses input as the children of context (per §5.4
// "parsing HTML fragments"), returning the resulting child nodes. context
// must be an ElementNode in the HTML namespace; its Data/Atom select the
// tokenizer's starting raw-text/RCDATA/script-data/plaintext sub-mode the
// same way an innerHTML assignment would.
func ParseFragment(r io.Reader, context *Node, opts Options) ([]*Node, error) {
	if context.Kind != ElementNode || context.Data == "" {
		return nil, ErrInconsistentNode
	}
	if context.Atom != 0 && atom.Lookup([]byte(context.Data)) != context.Atom {
		return nil, ErrInconsistentNode
	}
	z := NewTokenizer(r)
	z.SetMaxBuf(opts.MaxBuf)
	c := newTreeConstructor(z)
	c.scripting = opts.Scripting
	c.fragment = true
	c.context = context
	log := opts.logger()

	switch context.Data {
	case "title", "textarea":
		z.ToRCData(context.Data)
	case "style", "xmp", "iframe", "noembed", "noframes":
		z.ToRawText(context.Data)
	case "script":
		z.ToScriptData()
	case "noscript":
		if opts.Scripting {
			z.ToRawText(context.Data)
		}
	case "plaintext":
		z.ToPlaintext()
	}

	root := newElement("html")
	c.doc.AppendChild(root)
	c.push(root)

	if context.Data == "template" {
		c.templateModes = append(c.templateModes, inTemplateMode)
	}

	for n := context.Parent; n != nil; n = n.Parent {
		if n.Data == "form" && n.Namespace == NamespaceHTML {
			c.form = n
			break
		}
	}

	c.resetInsertionMode()

	if err := runTokenLoop(z, c, log); err != nil {
		return nil, errors.Wrap(err, "html: parse fragment")
	}
	return collectChildren(root), nil
}

func collectChildren(n *Node) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// runTokenLoop pulls tokens from z and feeds them to c.step until EOF or a
// hard tokenizer error.
func runTokenLoop(z *Tokenizer, c *treeConstructor, log *logrus.Logger) error {
	for {
		tt := z.Next()
		if tt == ErrorToken {
			if err := z.Err(); err != nil && err != io.EOF {
				log.WithError(err).Debug("html: tokenizer stopped early")
				return err
			}
			c.step(Token{Type: ErrorToken})
			return nil
		}
		tok := z.Token()
		c.step(tok)
	}
}
