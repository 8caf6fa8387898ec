package cmds

import (
	"strings"
	"testing"
)

func TestFuncRejects(t *testing.T) {
	for _, c := range []struct {
		fn   any
		want string
	}{
		{42, "must be function"},
		{func(...string) {}, "variadic"},
		{func() int { return 0 }, "must return error"},
		{func() (int, error) { return 0, nil }, "0 or 1 value"},
	} {
		func() {
			defer func() {
				p := recover()
				err, ok := p.(error)
				if !ok || !strings.Contains(err.Error(), c.want) {
					t.Fatalf("got %v, want %q", p, c.want)
				}
			}()
			Func(c.fn)
		}()
	}
}

func TestFuncAccepts(t *testing.T) {
	Func(func() {})
	Func(func(string, int) error { return nil })
}
