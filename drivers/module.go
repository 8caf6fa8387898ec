package drivers

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tailex/lexconfigs"
	"github.com/reusee/tailex/logs"
	"github.com/reusee/tailex/scripts"
)

type Module struct {
	dscope.Module
	Configs lexconfigs.Module
	Scripts scripts.Module
	Logs    logs.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
