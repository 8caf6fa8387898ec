package lexers

import "github.com/reusee/tailex/tokens"

// TokenStream is the one-token lookahead view a parser consumes.
type TokenStream interface {
	Current() (tokens.Token, bool)
	Consume()
}

type Stream struct {
	lexer   *Lexer
	current tokens.Token
	ok      bool
	filled  bool
}

var _ TokenStream = new(Stream)

func NewStream(lexer *Lexer) *Stream {
	return &Stream{
		lexer: lexer,
	}
}

func (s *Stream) Current() (tokens.Token, bool) {
	if !s.filled {
		s.current, s.ok = s.lexer.Next()
		s.filled = true
	}
	return s.current, s.ok
}

func (s *Stream) Consume() {
	if !s.filled {
		s.lexer.Next()
		return
	}
	s.filled = false
}

type SliceStream struct {
	tokens []tokens.Token
	idx    int
}

var _ TokenStream = new(SliceStream)

func NewSliceStream(list []tokens.Token) *SliceStream {
	return &SliceStream{
		tokens: list,
	}
}

func (s *SliceStream) Current() (tokens.Token, bool) {
	if s.idx >= len(s.tokens) {
		return tokens.Token{}, false
	}
	return s.tokens[s.idx], true
}

func (s *SliceStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
