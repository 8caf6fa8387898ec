package tokens

import (
	"fmt"
	"strconv"
)

// Token is a lexed unit. Only the field selected by Kind is meaningful;
// the others stay zero so that tokens compare with ==.
type Token struct {
	Kind        Kind
	Text        string
	Keyword     Keyword
	Punctuation Punctuation
	Delimiter   Delimiter
	Char        rune
}

type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindIdentifier
	KindKeyword
	KindPunctuation
	KindDelimiter
	KindWhitespace

	numKinds
)

var kindLabels = [numKinds]string{
	KindInvalid:     "Invalid",
	KindInteger:     "Integer",
	KindIdentifier:  "Identifier",
	KindKeyword:     "Keyword",
	KindPunctuation: "Punctuation",
	KindDelimiter:   "Delimiter",
	KindWhitespace:  "Whitespace",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindLabels[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func Kinds() []Kind {
	ret := make([]Kind, 0, numKinds)
	for k := range numKinds {
		ret = append(ret, k)
	}
	return ret
}

func NewInteger(text string) Token {
	return Token{Kind: KindInteger, Text: text}
}

func NewIdentifier(text string) Token {
	return Token{Kind: KindIdentifier, Text: text}
}

func NewKeyword(k Keyword) Token {
	return Token{Kind: KindKeyword, Keyword: k}
}

func NewPunctuation(p Punctuation) Token {
	return Token{Kind: KindPunctuation, Punctuation: p}
}

func NewDelimiter(bracket Bracket, orientation Orientation) Token {
	return Token{Kind: KindDelimiter, Delimiter: Delimiter{
		Bracket:     bracket,
		Orientation: orientation,
	}}
}

func NewInvalid(c rune) Token {
	return Token{Kind: KindInvalid, Char: c}
}

func NewWhitespace(text string) Token {
	return Token{Kind: KindWhitespace, Text: text}
}

// String returns the source spelling of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindInteger, KindIdentifier, KindWhitespace:
		return t.Text
	case KindKeyword:
		return t.Keyword.String()
	case KindPunctuation:
		return t.Punctuation.String()
	case KindDelimiter:
		return t.Delimiter.String()
	case KindInvalid:
		return string(t.Char)
	}
	return "Token(" + t.Kind.String() + ")"
}

// GoString is used by %#v, mostly in test failures.
func (t Token) GoString() string {
	switch t.Kind {
	case KindInteger, KindIdentifier, KindWhitespace:
		return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
	case KindInvalid:
		return fmt.Sprintf("%v(%q)", t.Kind, t.Char)
	}
	return fmt.Sprintf("%v(%s)", t.Kind, t.String())
}
