// Command htmlcore parses an HTML document from stdin (or a named file) and
// re-serializes it to stdout, exercising the parser and render packages end
// to end.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/naqvis/crystal-html5/parser"
	"github.com/naqvis/crystal-html5/render"
)

func main() {
	scripting := flag.Bool("scripting", false, "treat <noscript> as a raw-text element")
	maxBuf := flag.Int("max-buf", 0, "maximum live token buffer size, 0 for unbounded")
	verbose := flag.Bool("v", false, "log parse diagnostics to stderr")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	var r = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.WithError(err).Fatal("htmlcore: open input")
		}
		defer f.Close()
		r = f
	}

	doc, err := parser.Parse(r, parser.Options{Scripting: *scripting, MaxBuf: *maxBuf, Logger: log})
	if err != nil {
		log.WithError(err).Fatal("htmlcore: parse")
	}

	if err := render.Render(os.Stdout, doc); err != nil {
		log.WithError(err).Fatal("htmlcore: render")
	}
}
