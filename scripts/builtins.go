package scripts

import (
	"github.com/reusee/starlarkutil"
	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/tokens"
	"go.starlark.net/starlark"
)

// Builtins are predeclared in every script.
type Builtins starlark.StringDict

func (Module) Builtins() Builtins {
	return Builtins{
		"tokenize": starlark.NewBuiltin("tokenize", tokenize),
		"is_keyword": starlarkutil.MakeFunc("is_keyword", func(ident string) bool {
			_, ok := tokens.LookupKeyword(ident)
			return ok
		}),
	}
}

func tokenize(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var src string
	keepWhitespace := false
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"src", &src,
		"keep_whitespace?", &keepWhitespace,
	); err != nil {
		return nil, err
	}
	var options []lexers.Option
	if keepWhitespace {
		options = append(options, lexers.KeepWhitespace())
	}
	var elems []starlark.Value
	for span, token := range lexers.New(src, options...).Spanned() {
		elems = append(elems, tokenValue(span, token))
	}
	return starlark.NewList(elems), nil
}
