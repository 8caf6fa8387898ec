package tokens

import "strconv"

type Punctuation uint8

const (
	Plus Punctuation = iota
	Minus
	Star
	Slash
	Percent
	Caret
	Not
	And
	Or
	AndAnd
	OrOr
	Shl
	Shr
	PlusEq
	MinusEq
	StarEq
	SlashEq
	PercentEq
	CaretEq
	AndEq
	OrEq
	ShlEq
	ShrEq
	Eq
	EqEq
	Ne
	Gt
	Lt
	Ge
	Le
	At
	Underscore
	Dot
	DotDot
	DotDotDot
	DotDotEq
	RArrow
	FatArrow
	Semi

	numPunctuations
)

var punctuationSpellings = [numPunctuations]string{
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Caret:      "^",
	Not:        "!",
	And:        "&",
	Or:         "|",
	AndAnd:     "&&",
	OrOr:       "||",
	Shl:        "<<",
	Shr:        ">>",
	PlusEq:     "+=",
	MinusEq:    "-=",
	StarEq:     "*=",
	SlashEq:    "/=",
	PercentEq:  "%=",
	CaretEq:    "^=",
	AndEq:      "&=",
	OrEq:       "|=",
	ShlEq:      "<<=",
	ShrEq:      ">>=",
	Eq:         "=",
	EqEq:       "==",
	Ne:         "!=",
	Gt:         ">",
	Lt:         "<",
	Ge:         ">=",
	Le:         "<=",
	At:         "@",
	Underscore: "_",
	Dot:        ".",
	DotDot:     "..",
	DotDotDot:  "...",
	DotDotEq:   "..=",
	RArrow:     "->",
	FatArrow:   "=>",
	Semi:       ";",
}

func (p Punctuation) String() string {
	if p < numPunctuations {
		return punctuationSpellings[p]
	}
	return "Punctuation(" + strconv.Itoa(int(p)) + ")"
}

func Punctuations() []Punctuation {
	ret := make([]Punctuation, 0, numPunctuations)
	for p := range numPunctuations {
		ret = append(ret, p)
	}
	return ret
}
