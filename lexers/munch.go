package lexers

import "github.com/reusee/tailex/tokens"

// munchNode is a trie over punctuation spellings.
// A node with terminal set ends a spelling.
type munchNode struct {
	next        map[rune]*munchNode
	punctuation tokens.Punctuation
	terminal    bool
}

var munchRoot = func() *munchNode {
	root := &munchNode{
		next: make(map[rune]*munchNode),
	}
	for _, p := range tokens.Punctuations() {
		node := root
		for _, r := range p.String() {
			child, ok := node.next[r]
			if !ok {
				child = &munchNode{
					next: make(map[rune]*munchNode),
				}
				node.next[r] = child
			}
			node = child
		}
		node.punctuation = p
		node.terminal = true
	}
	return root
}()

func isSymbol(r rune) bool {
	_, ok := munchRoot.next[r]
	return ok
}

// munch extends the spelling starting with first as far as the cursor allows.
// Every prefix of a spelling is a spelling, so stopping at the first
// non-extending rune gives the longest match.
func munch(cursor *Cursor, first rune) tokens.Punctuation {
	node := munchRoot.next[first]
	for {
		r, ok := cursor.Peek()
		if !ok {
			break
		}
		child, ok := node.next[r]
		if !ok || !child.terminal {
			break
		}
		cursor.Advance()
		node = child
	}
	return node.punctuation
}
