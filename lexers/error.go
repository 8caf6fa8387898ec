package lexers

import (
	"fmt"
	"iter"
	"strings"

	"github.com/reusee/tailex/tokens"
	"gopkg.in/src-d/go-errors.v1"
)

var ErrInvalidCharacter = errors.NewKind("invalid character %q")

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %d:%d", p.Err.Error(), p.Pos.Line+1, p.Pos.Column+1)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line+1, p.Pos.Column+1)

	lines := p.Source.Lines
	if p.Pos.Line >= 0 && p.Pos.Line < len(lines) {
		line := strings.TrimSuffix(lines[p.Pos.Line], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := 0
		for _, r := range line {
			if col >= p.Pos.Column {
				break
			}
			col++
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Diagnose lexes the source and yields one error per invalid token.
func Diagnose(source *Source) iter.Seq[error] {
	return func(yield func(error) bool) {
		for span, token := range New(source.Content).Spanned() {
			if token.Kind != tokens.KindInvalid {
				continue
			}
			if !yield(InvalidCharacterError(source, Item{
				Span:  span,
				Token: token,
			})) {
				return
			}
		}
	}
}

func InvalidCharacterError(source *Source, item Item) error {
	return PosError{
		Err:    ErrInvalidCharacter.New(item.Token.Char),
		Pos:    item.Span.Start,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
