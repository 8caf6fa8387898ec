package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking its arguments from the following words,
// or a set of sub commands.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. fn must not be variadic and may return an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if err := checkFunc(fnValue); err != nil {
		panic(err)
	}
	return &Command{
		Func: fnValue,
	}
}

func checkFunc(fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("must be function, got %v", fn.Kind())
	}
	typ := fn.Type()
	if typ.IsVariadic() {
		return fmt.Errorf("variadic function not supported: %v", typ)
	}
	switch typ.NumOut() {
	case 0:
	case 1:
		if typ.Out(0) != errorType {
			return fmt.Errorf("must return error, got %v", typ.Out(0))
		}
	default:
		return fmt.Errorf("must return 0 or 1 value, got %v", typ)
	}
	return nil
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
