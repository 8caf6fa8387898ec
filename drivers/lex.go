package drivers

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reusee/tailex/lexconfigs"
	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/logs"
	"github.com/reusee/tailex/scripts"
	"github.com/reusee/tailex/syncs"
	"github.com/reusee/tailex/tokens"
)

const stdinName = "<stdin>"

type Result struct {
	Source  *lexers.Source
	Items   []lexers.Item
	Invalid []error
}

// Lex lexes each path, or stdin when paths is empty.
// Files are lexed concurrently; results keep the order of paths.
type Lex func(ctx context.Context, paths []string) ([]*Result, error)

func (Module) Lex(
	keepWhitespace lexconfigs.KeepWhitespace,
	jobs lexconfigs.Jobs,
	filterPath lexconfigs.FilterPath,
	loadFilter scripts.LoadFilter,
	newSpan logs.NewSpan,
	logger logs.Logger,
	stdin Stdin,
) Lex {
	var options []lexers.Option
	if keepWhitespace {
		options = append(options, lexers.KeepWhitespace())
	}

	return func(ctx context.Context, paths []string) ([]*Result, error) {
		var filter scripts.Filter
		if filterPath != "" {
			var err error
			filter, err = loadFilter(string(filterPath), nil)
			if err != nil {
				return nil, err
			}
		}

		if len(paths) == 0 {
			content, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			result, err := lexSource(lexers.NewSource(stdinName, string(content)), options, filter)
			if err != nil {
				return nil, err
			}
			return []*Result{result}, nil
		}

		results := make([]*Result, len(paths))
		errs := make([]error, len(paths))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				ctx, _ := newSpan(ctx, path)

				content, err := os.ReadFile(path)
				if err != nil {
					errs[i] = logs.WrapSpan(ctx, fmt.Errorf("read %s: %w", path, err))
					return
				}
				result, err := lexSource(lexers.NewSource(path, string(content)), options, filter)
				if err != nil {
					errs[i] = logs.WrapSpan(ctx, err)
					return
				}
				logger.DebugContext(ctx, "lexed",
					"path", path,
					"tokens", len(result.Items),
					"invalid", len(result.Invalid),
				)
				results[i] = result
			})
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		return results, nil
	}
}

func lexSource(source *lexers.Source, options []lexers.Option, filter scripts.Filter) (*Result, error) {
	result := &Result{
		Source: source,
	}
	for span, token := range lexers.New(source.Content, options...).Spanned() {
		item := lexers.Item{
			Span:  span,
			Token: token,
		}
		if token.Kind == tokens.KindInvalid {
			result.Invalid = append(result.Invalid, lexers.InvalidCharacterError(source, item))
		}
		if filter != nil {
			ok, err := filter(span, token)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", source.Name, err)
			}
			if !ok {
				continue
			}
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}
