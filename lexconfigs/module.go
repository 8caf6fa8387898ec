package lexconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tailex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
