/*
Package inline bridges styled text and inline HTML.

TextFromHTML and InnerText read the textual content of HTML fragments into
styled texts, translating inline elements like <b> or <em> into terminal
styles. CSS translates terminal styles into inline CSS, which is what HTML
output of styled text uses.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

// blockElements start and end a line of text.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore styling of the resulting text is limited to inline elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Block elements and <br> break lines.
func InnerText(n *html.Node) (*styled.Text, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: HTML node is nil", termtext.ErrIllegalArguments)
	}
	c := collector{b: styled.NewTextBuilder()}
	c.collect(n, style.Empty())
	return c.text(), nil
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a paragraph-like element.
func TextFromHTML(input io.Reader) (*styled.Text, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	c := collector{b: styled.NewTextBuilder()}
	for _, n := range nodes {
		c.collect(n, style.Empty())
	}
	return c.text(), nil
}

type collector struct {
	b       *styled.TextBuilder
	atStart bool // at the start of a line
	pending bool // a line break is pending
	started bool // any content written
}

func (c *collector) collect(n *html.Node, st style.Style) {
	switch n.Type {
	case html.ElementNode:
		tracer().Debugf("styled inline text: collect text of <%s>", n.Data)
		if n.Data == "br" {
			c.breakLine(true)
			return
		}
		if elem, ok := StyleFromHTMLName(n.Data); ok {
			st = st.Merge(elem)
		}
		if blockElements[n.Data] {
			c.breakLine(false)
			defer c.breakLine(false)
		}
	case html.TextNode:
		c.write(n.Data, st)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, st)
	}
}

// breakLine requests a line break. Unforced breaks collapse with each other
// and are dropped at the start of the text.
func (c *collector) breakLine(force bool) {
	if force {
		c.flush()
		_ = c.b.Newline()
		c.atStart = true
		return
	}
	if c.started && !c.atStart {
		c.pending = true
	}
}

func (c *collector) flush() {
	if c.pending {
		_ = c.b.Newline()
		c.pending = false
	}
}

func (c *collector) write(s string, st style.Style) {
	s = collapseSpace(s, c.atStart || c.pending || !c.started)
	if s == "" {
		return
	}
	c.flush()
	tracer().Debugf("styled inline text = %q (%v)", s, st)
	_ = c.b.Append(s, st)
	c.started, c.atStart = true, false
}

func (c *collector) text() *styled.Text {
	return c.b.Text()
}

// collapseSpace replaces runs of white space by single blanks, the way
// browsers render text outside of <pre>. Leading white space is dropped at
// the start of a line.
func collapseSpace(s string, lineStart bool) string {
	out := make([]byte, 0, len(s))
	space := lineStart
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				out = append(out, ' ')
			}
			space = true
		default:
			out = append(out, s[i])
			space = false
		}
	}
	return string(out)
}
