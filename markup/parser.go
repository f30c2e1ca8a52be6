package markup

import (
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"github.com/npillmayer/termtext/theme"
)

/*
BSD 3-Clause License

Copyright (c) 2020–24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Option configures a parser.
type Option func(*Parser)

// WithTheme makes the aliases of a theme available as attribute names.
// Regular attribute names take precedence over aliases.
func WithTheme(t *theme.Theme) Option {
	return func(p *Parser) {
		p.theme = t
	}
}

// WithOuterStyle sets the outer style of the resulting text.
func WithOuterStyle(st style.Style) Option {
	return func(p *Parser) {
		p.outer = st
	}
}

// Parser turns markup into styled text. It is a state machine over the token
// stream of a Lexer, holding a stack of enclosing styles.
//
// A parser is single-use; create one per input.
type Parser struct {
	lexer   *Lexer
	theme   *theme.Theme
	outer   style.Style
	current style.Style
	stack   []style.Style
	builder *styled.TextBuilder
}

// NewParser creates a parser for an input string.
func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		lexer:   NewLexer(input),
		builder: styled.NewTextBuilder(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses markup input into styled text. Parsing never fails: malformed
// markup degrades to literal text.
func Parse(input string, opts ...Option) *styled.Text {
	return NewParser(input, opts...).Parse()
}

// ParseLine parses markup input into a single line. Line breaks are dropped.
func ParseLine(input string, opts ...Option) styled.Line {
	text := Parse(input, opts...)
	return styled.Line{}.Concat(text.Lines()...)
}

// Parse consumes the input and returns the resulting text.
func (p *Parser) Parse() *styled.Text {
	_ = p.builder.SetOuterStyle(p.outer)
	for tok := range p.lexer.Tokens() {
		switch tok.Type {
		case TokenText:
			p.text(tok.Literal)
		case TokenStyleOpen:
			p.stack = append(p.stack, p.current)
			p.current = p.accept(p.current, tok.Names)
		case TokenStyleClose:
			if len(p.stack) == 0 {
				p.text(tok.Literal)
				continue
			}
			p.current = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
		case TokenLineBreak:
			_ = p.builder.Newline()
		case TokenEscSeq:
			p.current = p.current.Accept(style.DecodeSGR(tok.Literal)...)
		}
	}
	if len(p.stack) > 0 {
		tracer().Debugf("markup: %d style scope(s) left open", len(p.stack))
	}
	return p.builder.Text()
}

func (p *Parser) text(s string) {
	if err := p.builder.Append(s, p.current); err != nil {
		tracer().Errorf("markup: %v", err)
	}
}

// accept adds named attributes to a style. Theme aliases contribute all of
// their attributes.
func (p *Parser) accept(st style.Style, names []string) style.Style {
	for _, name := range names {
		if a, ok := style.LookupByName(name); ok {
			st = st.Accept(a)
			continue
		}
		if alias, ok := p.theme.Lookup(name); ok {
			st = st.Accept(alias.Attrs()...)
			continue
		}
		tracer().Debugf("markup: ignoring unknown style attribute %q", name)
	}
	return st
}
