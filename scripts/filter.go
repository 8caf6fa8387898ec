package scripts

import (
	"fmt"

	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/logs"
	"github.com/reusee/tailex/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Filter reports whether a token is kept. It is safe for concurrent use.
type Filter func(span lexers.Span, token tokens.Token) (bool, error)

// LoadFilter compiles a script defining filter(token).
// src may be nil, in which case the file at path is read.
type LoadFilter func(path string, src any) (Filter, error)

func (Module) LoadFilter(
	builtins Builtins,
	logger logs.Logger,
) LoadFilter {
	return func(path string, src any) (Filter, error) {
		thread := &starlark.Thread{
			Name: "load " + path,
			Print: func(_ *starlark.Thread, msg string) {
				logger.Info("script", "path", path, "msg", msg)
			},
		}
		globals, err := starlark.ExecFileOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, path, src, starlark.StringDict(builtins))
		if err != nil {
			return nil, fmt.Errorf("load filter %s: %w", path, err)
		}
		globals.Freeze()

		fn, ok := globals["filter"].(starlark.Callable)
		if !ok {
			return nil, fmt.Errorf("%s: filter function not defined", path)
		}

		return func(span lexers.Span, token tokens.Token) (bool, error) {
			thread := &starlark.Thread{
				Name: "filter " + path,
			}
			ret, err := starlark.Call(thread, fn, starlark.Tuple{tokenValue(span, token)}, nil)
			if err != nil {
				return false, fmt.Errorf("filter %s: %w", path, err)
			}
			return bool(ret.Truth()), nil
		}, nil
	}
}
