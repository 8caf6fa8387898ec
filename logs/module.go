package logs

import "github.com/reusee/dscope"

// Module provides Logger, Writer and NewSpan.
// A mode module (modes.ForProduction or modes.ForTest) must be in the same scope.
type Module struct {
	dscope.Module
}
