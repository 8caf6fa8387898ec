package renders

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/tailex/lexers"
	"github.com/reusee/tailex/tokens"
	"gopkg.in/yaml.v2"
)

func Write(w io.Writer, format Format, items []lexers.Item) error {
	switch format {
	case FormatText:
		return writeText(w, items)
	case FormatYAML:
		return writeYAML(w, items)
	case FormatSource:
		return writeSource(w, items)
	}
	return ErrUnknownFormat.New(format)
}

func displayText(token tokens.Token) string {
	switch token.Kind {
	case tokens.KindWhitespace, tokens.KindInvalid:
		return strconv.Quote(token.String())
	}
	return token.String()
}

func writeText(w io.Writer, items []lexers.Item) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%-12s : %s\n", item.Token.Kind, displayText(item.Token)); err != nil {
			return err
		}
	}
	return nil
}

type yamlItem struct {
	Kind   string `yaml:"kind"`
	Text   string `yaml:"text"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

func writeYAML(w io.Writer, items []lexers.Item) error {
	list := make([]yamlItem, 0, len(items))
	for _, item := range items {
		list = append(list, yamlItem{
			Kind:   item.Token.Kind.String(),
			Text:   item.Token.String(),
			Line:   item.Span.Start.Line + 1,
			Column: item.Span.Start.Column + 1,
		})
	}
	bs, err := yaml.Marshal(list)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// writeSource prints tokens with a single space between adjacent non-whitespace tokens.
// Whitespace tokens are printed as they are.
func writeSource(w io.Writer, items []lexers.Item) error {
	prevSolid := false
	for _, item := range items {
		solid := item.Token.Kind != tokens.KindWhitespace
		if solid && prevSolid {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, item.Token.String()); err != nil {
			return err
		}
		prevSolid = solid
	}
	if len(items) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
