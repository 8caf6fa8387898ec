package lexers

import (
	"slices"
	"strings"
	"testing"

	"github.com/reusee/tailex/tokens"
)

func TestLexer(t *testing.T) {
	var (
		openParen  = tokens.NewDelimiter(tokens.Parentheses, tokens.Open)
		closeParen = tokens.NewDelimiter(tokens.Parentheses, tokens.Close)
		openCurly  = tokens.NewDelimiter(tokens.Curly, tokens.Open)
		closeCurly = tokens.NewDelimiter(tokens.Curly, tokens.Close)
	)

	tests := []struct {
		input  string
		tokens []tokens.Token
	}{
		{
			input: "fn main() { return 0; }",
			tokens: []tokens.Token{
				tokens.NewKeyword(tokens.Fn),
				tokens.NewIdentifier("main"),
				openParen,
				closeParen,
				openCurly,
				tokens.NewKeyword(tokens.Return),
				tokens.NewInteger("0"),
				tokens.NewPunctuation(tokens.Semi),
				closeCurly,
			},
		},
		{
			input: "a -> b",
			tokens: []tokens.Token{
				tokens.NewIdentifier("a"),
				tokens.NewPunctuation(tokens.RArrow),
				tokens.NewIdentifier("b"),
			},
		},
		{
			input: "x <<= 1",
			tokens: []tokens.Token{
				tokens.NewIdentifier("x"),
				tokens.NewPunctuation(tokens.ShlEq),
				tokens.NewInteger("1"),
			},
		},
		{
			input: "@#",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.At),
				tokens.NewInvalid('#'),
			},
		},
		{
			input: "#~",
			tokens: []tokens.Token{
				tokens.NewInvalid('#'),
				tokens.NewInvalid('~'),
			},
		},
		{
			input: "-=",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.MinusEq),
			},
		},
		{
			input: "- =",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.Minus),
				tokens.NewPunctuation(tokens.Eq),
			},
		},
		{
			input: "->>",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.RArrow),
				tokens.NewPunctuation(tokens.Gt),
			},
		},
		{
			input: "....=",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.DotDotDot),
				tokens.NewPunctuation(tokens.Dot),
				tokens.NewPunctuation(tokens.Eq),
			},
		},
		{
			input: "..= >>= >> => == != <= &&& ||",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.DotDotEq),
				tokens.NewPunctuation(tokens.ShrEq),
				tokens.NewPunctuation(tokens.Shr),
				tokens.NewPunctuation(tokens.FatArrow),
				tokens.NewPunctuation(tokens.EqEq),
				tokens.NewPunctuation(tokens.Ne),
				tokens.NewPunctuation(tokens.Le),
				tokens.NewPunctuation(tokens.AndAnd),
				tokens.NewPunctuation(tokens.And),
				tokens.NewPunctuation(tokens.OrOr),
			},
		},
		{
			input: "fn2 foo i32 Self self",
			tokens: []tokens.Token{
				tokens.NewIdentifier("fn2"),
				tokens.NewIdentifier("foo"),
				tokens.NewKeyword(tokens.I32),
				tokens.NewKeyword(tokens.SelfType),
				tokens.NewKeyword(tokens.SelfValue),
			},
		},
		{
			input: "12abc",
			tokens: []tokens.Token{
				tokens.NewInteger("12"),
				tokens.NewIdentifier("abc"),
			},
		},
		{
			input: "_x",
			tokens: []tokens.Token{
				tokens.NewPunctuation(tokens.Underscore),
				tokens.NewIdentifier("x"),
			},
		},
		{
			input: "a[0]",
			tokens: []tokens.Token{
				tokens.NewIdentifier("a"),
				tokens.NewDelimiter(tokens.Square, tokens.Open),
				tokens.NewInteger("0"),
				tokens.NewDelimiter(tokens.Square, tokens.Close),
			},
		},
		{
			input: "é,",
			tokens: []tokens.Token{
				tokens.NewInvalid('é'),
				tokens.NewInvalid(','),
			},
		},
		{
			input:  "",
			tokens: nil,
		},
		{
			input:  " \t\n\r ",
			tokens: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := Tokenize(test.input)
			if !slices.Equal(got, test.tokens) {
				t.Fatalf("got %#v, want %#v", got, test.tokens)
			}
		})
	}
}

func TestWhitespaceTransparency(t *testing.T) {
	expected := Tokenize("a+b")
	for _, input := range []string{
		"a + b",
		"a\n+\tb",
		"  a  +\r\n\n b \n",
	} {
		if got := Tokenize(input); !slices.Equal(got, expected) {
			t.Fatalf("%q: got %#v", input, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"fn main() { return 0; }",
		"let mut x: i32 = a<<=b->c..=d...e;",
		"#~ @_ 12abc !== ||| %= ^= |= &= *= /= += -=",
		"pub struct Foo { x: u8 } impl Foo { fn get(&self) -> u8 { self.x } }",
	}
	for _, input := range inputs {
		original := Tokenize(input)
		var texts []string
		for _, token := range original {
			texts = append(texts, token.String())
		}
		relexed := Tokenize(strings.Join(texts, " "))
		if !slices.Equal(original, relexed) {
			t.Fatalf("%q: got %#v, want %#v", input, relexed, original)
		}
	}
}

func TestRoundTripSingle(t *testing.T) {
	var all []tokens.Token
	for _, k := range tokens.Keywords() {
		all = append(all, tokens.NewKeyword(k))
	}
	for _, p := range tokens.Punctuations() {
		all = append(all, tokens.NewPunctuation(p))
	}
	for _, d := range tokens.Delimiters() {
		all = append(all, tokens.NewDelimiter(d.Bracket, d.Orientation))
	}
	all = append(all,
		tokens.NewInteger("007"),
		tokens.NewIdentifier("abc1"),
		tokens.NewInvalid('$'),
	)
	for _, token := range all {
		got := Tokenize(token.String())
		if len(got) != 1 || got[0] != token {
			t.Fatalf("%#v: got %#v", token, got)
		}
	}
}

func TestProgress(t *testing.T) {
	input := "fn  main()\n{ x -= 1; y <<= 2 } #~ é ...."
	lexer := New(input)
	prev := 0
	for range lexer.All() {
		span := lexer.Span()
		if span.End.Offset <= span.Start.Offset {
			t.Fatalf("empty span %+v", span)
		}
		if span.Start.Offset < prev {
			t.Fatalf("went back: %+v", span)
		}
		prev = span.End.Offset
	}
}

func TestSpanned(t *testing.T) {
	var spans []Span
	var texts []string
	for span, token := range New("fn\n  x->y").Spanned() {
		spans = append(spans, span)
		texts = append(texts, token.String())
	}
	if str := strings.Join(texts, " "); str != "fn x -> y" {
		t.Fatalf("got %q", str)
	}
	expected := []Span{
		{Start: Pos{0, 0, 0}, End: Pos{2, 0, 2}},
		{Start: Pos{5, 1, 2}, End: Pos{6, 1, 3}},
		{Start: Pos{6, 1, 3}, End: Pos{8, 1, 5}},
		{Start: Pos{8, 1, 5}, End: Pos{9, 1, 6}},
	}
	if !slices.Equal(spans, expected) {
		t.Fatalf("got %+v", spans)
	}
}

func TestKeepWhitespace(t *testing.T) {
	got := Tokenize("a \n\tb ", KeepWhitespace())
	expected := []tokens.Token{
		tokens.NewIdentifier("a"),
		tokens.NewWhitespace(" \n\t"),
		tokens.NewIdentifier("b"),
		tokens.NewWhitespace(" "),
	}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %#v", got)
	}

	// concatenation reproduces the input exactly
	var sb strings.Builder
	input := "fn main() {\n\treturn 0;\n}\n"
	for token := range New(input, KeepWhitespace()).All() {
		sb.WriteString(token.String())
	}
	if sb.String() != input {
		t.Fatalf("got %q", sb.String())
	}
}

func TestRestartable(t *testing.T) {
	input := "let x = y >> 2;"
	if !slices.Equal(Tokenize(input), Tokenize(input)) {
		t.Fatal()
	}
}

func TestStopEarly(t *testing.T) {
	lexer := New("a b c d")
	n := 0
	for range lexer.All() {
		n++
		if n == 2 {
			break
		}
	}
	// the lexer resumes after the last produced token
	token, ok := lexer.Next()
	if !ok || token != tokens.NewIdentifier("c") {
		t.Fatalf("got %#v", token)
	}
}

func TestExhausted(t *testing.T) {
	lexer := New("x")
	if _, ok := lexer.Next(); !ok {
		t.Fatal()
	}
	for range 3 {
		if _, ok := lexer.Next(); ok {
			t.Fatal()
		}
	}
}

func TestNextAllocs(t *testing.T) {
	input := "pub fn add(a: i32, b: i32) -> i32 { a += b; return a <<= 10; }"
	allocs := testing.AllocsPerRun(100, func() {
		lexer := New(input)
		for {
			if _, ok := lexer.Next(); !ok {
				break
			}
		}
	})
	// at most the lexer and its cursor; token texts are slices of the input
	if allocs > 2 {
		t.Fatalf("got %v allocs", allocs)
	}
}

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat("pub fn add(a: i32, b: i32) -> i32 { a += b; return a <<= 1; }\n", 64)
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		for range New(input).All() {
		}
	}
}

func TestItems(t *testing.T) {
	items := New("a;").Items()
	if len(items) != 2 {
		t.Fatalf("got %v", items)
	}
	if items[1].Token != tokens.NewPunctuation(tokens.Semi) {
		t.Fatalf("got %#v", items[1].Token)
	}
	if items[1].Span != (Span{Start: Pos{1, 0, 1}, End: Pos{2, 0, 2}}) {
		t.Fatalf("got %+v", items[1].Span)
	}
	if items := New("").Items(); len(items) != 0 {
		t.Fatal()
	}
}
