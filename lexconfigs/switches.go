package lexconfigs

import (
	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/configs"
)

// KeepWhitespace surfaces whitespace runs as tokens.
type KeepWhitespace bool

// Strict fails the run when any invalid character is found.
type Strict bool

// Fingerprint prints a whitespace-insensitive hash of each token sequence.
type Fingerprint bool

var (
	wsFlag          = cmds.Switch("ws", "keep whitespace tokens")
	strictFlag      = cmds.Switch("strict", "fail on invalid characters")
	fingerprintFlag = cmds.Switch("fingerprint", "print token fingerprints instead of tokens")
)

func (Module) KeepWhitespace(
	loader configs.Loader,
) KeepWhitespace {
	return KeepWhitespace(*wsFlag || configs.First[bool](loader, "keep_whitespace"))
}

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return Strict(*strictFlag || configs.First[bool](loader, "strict"))
}

func (Module) Fingerprint(
	loader configs.Loader,
) Fingerprint {
	return Fingerprint(*fingerprintFlag || configs.First[bool](loader, "fingerprint"))
}
