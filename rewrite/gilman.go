package rewrite

import (
	"github.com/libsemigroups/libsemigroups-sub005/digraph"
	"github.com/libsemigroups/libsemigroups-sub005/present"
)

// GilmanDigraph builds the automaton of irreducible words (words with no
// active rule's left-hand side as a substring) over an alphabet of the
// given size: one node per distinct "longest trie-prefix suffix" state
// reachable from the empty word, with an edge labelled by each letter to
// the state reached by extending with that letter, omitted when the
// extension would itself be reducible. The irreducible words are exactly
// the label sequences of the paths starting at node 0 (the empty word,
// included). A node is an automaton state, not a word: several
// irreducible words can end at the same node, so the node count can be
// smaller than the number of irreducible words. Every node is reachable
// from node 0, so a cycle means infinitely many irreducible words.
//
// GilmanDigraph requires the system to be confluent (see Confluent);
// otherwise the automaton does not recognise normal forms and an error
// is returned.
func (s *System) GilmanDigraph(alphabetSize int) (*digraph.WordGraph, error) {
	if confluent, _ := s.Confluent(0); !confluent {
		return nil, ErrNotConfluent
	}
	s.ensureTrie()

	nodeOf := make(map[*trieNode]int)
	order := []*trieNode{s.trie.root}
	nodeOf[s.trie.root] = 0

	for i := 0; i < len(order); i++ {
		cur := order[i]
		for l := 0; l < alphabetSize; l++ {
			nxt := s.trie.step(cur, present.Letter(l))
			if nxt.match != nil {
				continue
			}
			if _, ok := nodeOf[nxt]; !ok {
				nodeOf[nxt] = len(order)
				order = append(order, nxt)
			}
		}
	}

	g := digraph.New(len(order), alphabetSize)
	for i, cur := range order {
		for l := 0; l < alphabetSize; l++ {
			nxt := s.trie.step(cur, present.Letter(l))
			if nxt.match != nil {
				continue
			}
			g.SetTarget(i, l, uint32(nodeOf[nxt]))
		}
	}
	return g, nil
}
