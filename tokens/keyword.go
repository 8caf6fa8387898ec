package tokens

import "strconv"

type Keyword uint8

const (
	As Keyword = iota
	Break
	Const
	Continue
	Crate
	Else
	Enum
	Extern
	False
	Fn
	For
	If
	Impl
	In
	Let
	Loop
	Match
	Mod
	Move
	Mut
	Pub
	Ref
	Return
	SelfValue
	SelfType
	Static
	Struct
	Super
	Trait
	True
	Type
	Unsafe
	Use
	Where
	While
	Dyn
	Union
	Abstract
	Become
	Box
	Do
	Final
	Macro
	Override
	Priv
	Typeof
	Unsized
	Virtual
	Yield
	Async
	Await
	Try
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64

	numKeywords
)

var keywordSpellings = [numKeywords]string{
	As:        "as",
	Break:     "break",
	Const:     "const",
	Continue:  "continue",
	Crate:     "crate",
	Else:      "else",
	Enum:      "enum",
	Extern:    "extern",
	False:     "false",
	Fn:        "fn",
	For:       "for",
	If:        "if",
	Impl:      "impl",
	In:        "in",
	Let:       "let",
	Loop:      "loop",
	Match:     "match",
	Mod:       "mod",
	Move:      "move",
	Mut:       "mut",
	Pub:       "pub",
	Ref:       "ref",
	Return:    "return",
	SelfValue: "self",
	SelfType:  "Self",
	Static:    "static",
	Struct:    "struct",
	Super:     "super",
	Trait:     "trait",
	True:      "true",
	Type:      "type",
	Unsafe:    "unsafe",
	Use:       "use",
	Where:     "where",
	While:     "while",
	Dyn:       "dyn",
	Union:     "union",
	Abstract:  "abstract",
	Become:    "become",
	Box:       "box",
	Do:        "do",
	Final:     "final",
	Macro:     "macro",
	Override:  "override",
	Priv:      "priv",
	Typeof:    "typeof",
	Unsized:   "unsized",
	Virtual:   "virtual",
	Yield:     "yield",
	Async:     "async",
	Await:     "await",
	Try:       "try",
	U8:        "u8",
	I8:        "i8",
	U16:       "u16",
	I16:       "i16",
	U32:       "u32",
	I32:       "i32",
	U64:       "u64",
	I64:       "i64",
}

var keywordsBySpelling = func() map[string]Keyword {
	ret := make(map[string]Keyword, numKeywords)
	for k, spelling := range keywordSpellings {
		ret[spelling] = Keyword(k)
	}
	return ret
}()

// LookupKeyword matches a fully scanned identifier run against the reserved words.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywordsBySpelling[ident]
	return k, ok
}

func (k Keyword) String() string {
	if k < numKeywords {
		return keywordSpellings[k]
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

func Keywords() []Keyword {
	ret := make([]Keyword, 0, numKeywords)
	for k := range numKeywords {
		ret = append(ret, k)
	}
	return ret
}
