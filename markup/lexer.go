package markup

import (
	"fmt"
	"iter"
	"strings"
)

// TokenType is the type of a markup token.
type TokenType int

const (
	TokenEOF        TokenType = iota
	TokenText                 // literal text, escapes already resolved
	TokenStyleOpen            // @|name,name;
	TokenStyleClose           // |@
	TokenLineBreak            // \n or \r\n
	TokenEscSeq               // ESC [ params m
)

var tokenTypeNames = [...]string{"EOF", "Text", "StyleOpen", "StyleClose", "LineBreak", "EscSeq"}

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical token of markup input.
type Token struct {
	Type TokenType
	// Literal is the token's text, i.e. the content for TokenText, the
	// parameter list for TokenEscSeq and the raw input otherwise.
	Literal string
	// Names are the attribute names of a TokenStyleOpen.
	Names []string
	Pos   int // byte offset in the input
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenStyleOpen:
		return fmt.Sprintf("StyleOpen%v", t.Names)
	case TokenLineBreak:
		return "LineBreak"
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

const esc = '\x1b'

// Lexer splits markup input into tokens.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer for an input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokens iterates over the tokens of the input, excluding the final EOF.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := l.NextToken()
			if tok.Type == TokenEOF || !yield(tok) {
				return
			}
		}
	}
}

// NextToken returns the next token in the stream.
func (l *Lexer) NextToken() Token {
	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}
	}
	rest := l.input[l.pos:]
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		l.pos += 2
		return Token{Type: TokenLineBreak, Literal: "\r\n", Pos: start}
	case rest[0] == '\n':
		l.pos++
		return Token{Type: TokenLineBreak, Literal: "\n", Pos: start}
	case strings.HasPrefix(rest, "@||"):
		l.pos += 3
		return Token{Type: TokenText, Literal: "@|", Pos: start}
	case strings.HasPrefix(rest, "||@"):
		l.pos += 3
		return Token{Type: TokenText, Literal: "|@", Pos: start}
	case strings.HasPrefix(rest, "@|"):
		if names, n, ok := scanNames(rest[2:]); ok {
			l.pos += 2 + n
			return Token{Type: TokenStyleOpen, Literal: rest[:2+n], Names: names, Pos: start}
		}
		l.pos += 2
		return Token{Type: TokenText, Literal: "@|", Pos: start}
	case strings.HasPrefix(rest, "|@"):
		l.pos += 2
		return Token{Type: TokenStyleClose, Literal: "|@", Pos: start}
	case rest[0] == esc:
		if params, n, ok := scanSGR(rest); ok {
			l.pos += n
			return Token{Type: TokenEscSeq, Literal: params, Pos: start}
		}
		l.pos++
		return Token{Type: TokenText, Literal: rest[:1], Pos: start}
	}
	return l.readText()
}

// readText reads literal characters up to the start of the next special token.
func (l *Lexer) readText() Token {
	start := l.pos
	l.pos++ // the first byte is never special here
	for l.pos < len(l.input) && !l.atSpecial() {
		l.pos++
	}
	return Token{Type: TokenText, Literal: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) atSpecial() bool {
	rest := l.input[l.pos:]
	switch rest[0] {
	case '\n', esc:
		return true
	case '\r':
		return strings.HasPrefix(rest, "\r\n")
	case '@':
		return strings.HasPrefix(rest, "@|")
	case '|':
		return strings.HasPrefix(rest, "|@") || strings.HasPrefix(rest, "||@")
	}
	return false
}

// scanNames scans an attribute list following "@|". It returns the names and
// the number of bytes consumed, including a terminating space or semicolon.
func scanNames(s string) ([]string, int, bool) {
	var names []string
	i := 0
	for {
		j := i
		for j < len(s) && isNameChar(s[j]) {
			j++
		}
		if j == i {
			return nil, 0, false
		}
		names = append(names, s[i:j])
		switch {
		case j == len(s):
			return names, j, true
		case s[j] == ',':
			i = j + 1
		case s[j] == ' ' || s[j] == ';':
			return names, j + 1, true
		case s[j] == '\n', strings.HasPrefix(s[j:], "\r\n"), strings.HasPrefix(s[j:], "|@"):
			return names, j, true
		default:
			return nil, 0, false
		}
	}
}

func isNameChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!^#()_-", c) >= 0
}

// scanSGR scans an SGR escape sequence "ESC[...m". It returns the parameter
// list and the length of the sequence.
func scanSGR(s string) (string, int, bool) {
	if len(s) < 3 || s[1] != '[' {
		return "", 0, false
	}
	for i := 2; i < len(s); i++ {
		switch c := s[i]; {
		case c == 'm':
			return s[2:i], i + 1, true
		case c == ';' || '0' <= c && c <= '9':
		default:
			return "", 0, false
		}
	}
	return "", 0, false
}
