package lexers

import (
	"iter"
	"slices"
	"unicode"

	"github.com/reusee/tailex/tokens"
)

type Lexer struct {
	cursor         *Cursor
	keepWhitespace bool
	span           Span
}

// Span covers the runes of one produced token, End exclusive.
type Span struct {
	Start Pos
	End   Pos
}

// Item is a token with its span.
type Item struct {
	Span  Span
	Token tokens.Token
}

type Option func(*Lexer)

// KeepWhitespace makes the lexer surface whitespace runs as tokens instead of skipping them.
func KeepWhitespace() Option {
	return func(l *Lexer) {
		l.keepWhitespace = true
	}
}

func New(input string, options ...Option) *Lexer {
	l := &Lexer{
		cursor: NewCursor(input),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Next produces the next token. It returns false once the input is exhausted.
func (l *Lexer) Next() (tokens.Token, bool) {
	if l.keepWhitespace {
		start := l.cursor.Pos()
		if ws := l.cursor.ConsumeWhile(unicode.IsSpace); ws != "" {
			l.span = Span{Start: start, End: l.cursor.Pos()}
			return tokens.NewWhitespace(ws), true
		}
	} else {
		l.cursor.ConsumeWhile(unicode.IsSpace)
	}

	start := l.cursor.Pos()
	startByte := l.cursor.byteOffset
	c, ok := l.cursor.Advance()
	if !ok {
		l.span = Span{Start: start, End: start}
		return tokens.Token{}, false
	}
	token := l.classify(c, startByte)
	l.span = Span{Start: start, End: l.cursor.Pos()}
	return token, true
}

func (l *Lexer) classify(c rune, startByte int) tokens.Token {
	switch c {
	case '{':
		return tokens.NewDelimiter(tokens.Curly, tokens.Open)
	case '}':
		return tokens.NewDelimiter(tokens.Curly, tokens.Close)
	case '[':
		return tokens.NewDelimiter(tokens.Square, tokens.Open)
	case ']':
		return tokens.NewDelimiter(tokens.Square, tokens.Close)
	case '(':
		return tokens.NewDelimiter(tokens.Parentheses, tokens.Open)
	case ')':
		return tokens.NewDelimiter(tokens.Parentheses, tokens.Close)
	case ';':
		return tokens.NewPunctuation(tokens.Semi)
	}

	switch {
	case isSymbol(c):
		return tokens.NewPunctuation(munch(l.cursor, c))

	case isDigit(c):
		l.cursor.ConsumeWhile(isDigit)
		return tokens.NewInteger(l.cursor.input[startByte:l.cursor.byteOffset])

	case isAlphanumeric(c):
		l.cursor.ConsumeWhile(isAlphanumeric)
		ident := l.cursor.input[startByte:l.cursor.byteOffset]
		if k, ok := tokens.LookupKeyword(ident); ok {
			return tokens.NewKeyword(k)
		}
		return tokens.NewIdentifier(ident)
	}

	return tokens.NewInvalid(c)
}

// Span returns the position of the token last returned by Next.
func (l *Lexer) Span() Span {
	return l.span
}

func (l *Lexer) All() iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			token, ok := l.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

func (l *Lexer) Spanned() iter.Seq2[Span, tokens.Token] {
	return func(yield func(Span, tokens.Token) bool) {
		for {
			token, ok := l.Next()
			if !ok || !yield(l.span, token) {
				return
			}
		}
	}
}

// Items drains the lexer keeping spans.
func (l *Lexer) Items() []Item {
	var ret []Item
	for span, token := range l.Spanned() {
		ret = append(ret, Item{
			Span:  span,
			Token: token,
		})
	}
	return ret
}

func Tokenize(input string, options ...Option) []tokens.Token {
	return slices.Collect(New(input, options...).All())
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return r >= '0' && r <= '9' ||
		r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}
