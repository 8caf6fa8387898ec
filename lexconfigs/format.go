package lexconfigs

import (
	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/configs"
	"github.com/reusee/tailex/vars"
)

type Format string

var formatFlag = cmds.Var[string]("format", "output format: text, yaml or source")

func init() {
	cmds.Define("text", cmds.Func(func() {
		*formatFlag = "text"
	}).Desc("list tokens as text"))
	cmds.Define("yaml", cmds.Func(func() {
		*formatFlag = "yaml"
	}).Desc("list tokens as yaml"))
	cmds.Define("source", cmds.Func(func() {
		*formatFlag = "source"
	}).Desc("print tokens separated by spaces"))
}

func (Module) Format(
	loader configs.Loader,
) Format {
	return vars.FirstNonZero(
		Format(*formatFlag),
		configs.First[Format](loader, "format"),
		"text",
	)
}
