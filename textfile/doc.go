/*
Package textfile provides API helpers to load UTF-8 markup files as styled
texts.

Files are read in fragments and parsed with package markup; options for the
parser (e.g. a theme) are passed through.

	text, err := textfile.Load("motd.txt", markup.WithTheme(theme.Default()))

A Loader broadcasts the progress of loading to any number of subscribers:

	loader := textfile.NewLoader(nil, markup.WithTheme(th))
	defer loader.Close()
	progress, _ := loader.Subscribe(ctx)
	go report(progress)
	text, err := loader.Load("news.txt")

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}
