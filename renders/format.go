package renders

import "gopkg.in/src-d/go-errors.v1"

type Format string

const (
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatSource Format = "source"
)

var ErrUnknownFormat = errors.NewKind("unknown format: %s")

func ParseFormat(str string) (Format, error) {
	switch format := Format(str); format {
	case FormatText, FormatYAML, FormatSource:
		return format, nil
	}
	return "", ErrUnknownFormat.New(str)
}
