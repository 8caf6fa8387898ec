package renders

import (
	"github.com/mitchellh/hashstructure"
	"github.com/reusee/tailex/tokens"
)

// Fingerprint hashes a token sequence. Whitespace tokens do not contribute,
// so sources differing only in spacing share a fingerprint.
func Fingerprint(list []tokens.Token) (uint64, error) {
	solid := make([]tokens.Token, 0, len(list))
	for _, token := range list {
		if token.Kind == tokens.KindWhitespace {
			continue
		}
		solid = append(solid, token)
	}
	return hashstructure.Hash(solid, nil)
}
