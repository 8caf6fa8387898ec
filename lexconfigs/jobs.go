package lexconfigs

import (
	"runtime"

	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/configs"
	"github.com/reusee/tailex/vars"
)

// Jobs bounds how many files are lexed at the same time.
type Jobs int

var jobsFlag = cmds.Var[int]("jobs", "number of files lexed at the same time")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(max(1, vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	)))
}
