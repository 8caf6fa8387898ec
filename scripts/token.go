package scripts

import (
	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// tokenValue exposes a token to scripts as a struct with kind, text, line and column.
// Line and column are 1-based.
func tokenValue(span lexers.Span, token tokens.Token) starlark.Value {
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"kind":   starlark.String(token.Kind.String()),
		"text":   starlark.String(token.String()),
		"line":   starlark.MakeInt(span.Start.Line + 1),
		"column": starlark.MakeInt(span.Start.Column + 1),
	})
}
