package lexconfigs

import (
	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/configs"
	"github.com/reusee/tailex/vars"
)

// FilterPath names a starlark file defining filter(token).
type FilterPath string

var filterFlag = cmds.Var[string]("filter", "starlark filter file path")

func (Module) FilterPath(
	loader configs.Loader,
) FilterPath {
	return vars.FirstNonZero(
		FilterPath(*filterFlag),
		configs.First[FilterPath](loader, "filter"),
	)
}
