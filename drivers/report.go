package drivers

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/tailex/lexconfigs"
	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/logs"
	"github.com/reusee/tailex/renders"
	"github.com/reusee/tailex/tokens"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

var ErrInvalidInput = goerrors.NewKind("%s: %d invalid characters")

// Report prints results and logs invalid characters.
// In strict mode it fails when any invalid character was found.
type Report func(ctx context.Context, results []*Result) error

func (Module) Report(
	format lexconfigs.Format,
	strict lexconfigs.Strict,
	fingerprint lexconfigs.Fingerprint,
	stdout Stdout,
	logger logs.Logger,
) Report {
	return func(ctx context.Context, results []*Result) error {
		renderFormat, err := renders.ParseFormat(string(format))
		if err != nil {
			return err
		}

		var errs []error
		for _, result := range results {
			for _, invalid := range result.Invalid {
				logger.WarnContext(ctx, "invalid character",
					"path", result.Source.Name,
					"error", invalid.Error(),
				)
			}
			if strict && len(result.Invalid) > 0 {
				errs = append(errs, ErrInvalidInput.New(result.Source.Name, len(result.Invalid)))
			}

			if fingerprint {
				sum, err := renders.Fingerprint(itemTokens(result.Items))
				if err != nil {
					return fmt.Errorf("fingerprint %s: %w", result.Source.Name, err)
				}
				if _, err := fmt.Fprintf(stdout, "%016x  %s\n", sum, result.Source.Name); err != nil {
					return err
				}
				continue
			}

			if len(results) > 1 {
				if _, err := fmt.Fprintf(stdout, "# %s\n", result.Source.Name); err != nil {
					return err
				}
			}
			if err := renders.Write(stdout, renderFormat, result.Items); err != nil {
				return err
			}
		}

		return errors.Join(errs...)
	}
}

func itemTokens(items []lexers.Item) []tokens.Token {
	ret := make([]tokens.Token, 0, len(items))
	for _, item := range items {
		ret = append(ret, item.Token)
	}
	return ret
}
