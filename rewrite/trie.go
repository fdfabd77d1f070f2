package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// trieNode is a node of the Aho-Corasick automaton built over the active
// rules' left-hand sides.
type trieNode struct {
	children map[present.Letter]*trieNode
	fail     *trieNode
	match    *trieNode // nearest node (via fail chain, including self) with ruleIdx >= 0
	ruleIdx  int        // index into System.rules, or -1
	depth    int
}

func newTrieNode(depth int) *trieNode {
	return &trieNode{children: make(map[present.Letter]*trieNode), ruleIdx: -1, depth: depth}
}

// trie indexes the active rules' left-hand sides for one-pass rewriting.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode(0)}
}

// insert adds word as a path from root, marking the terminal node with
// ruleIdx. Called once per active rule when the trie is (re)built.
func (t *trie) insert(word present.Word, ruleIdx int) {
	cur := t.root
	for _, l := range word {
		nxt, ok := cur.children[l]
		if !ok {
			nxt = newTrieNode(cur.depth + 1)
			cur.children[l] = nxt
		}
		cur = nxt
	}
	cur.ruleIdx = ruleIdx
}

// build computes failure links and match shortcuts by breadth-first
// traversal, standard Aho-Corasick construction.
func (t *trie) build() {
	t.root.fail = t.root
	queue := make([]*trieNode, 0)
	for _, child := range t.root.children {
		child.fail = t.root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for letter, child := range node.children {
			fail := node.fail
			for fail != t.root && fail.children[letter] == nil {
				fail = fail.fail
			}
			if nxt, ok := fail.children[letter]; ok && nxt != child {
				child.fail = nxt
			} else {
				child.fail = t.root
			}
			queue = append(queue, child)
		}
	}
	// match shortcuts, computed in BFS order so each node's fail parent is
	// already resolved before it is consulted.
	if t.root.ruleIdx >= 0 {
		t.root.match = t.root
	}
	order := make([]*trieNode, 0)
	frontier := make([]*trieNode, 0, len(t.root.children))
	for _, c := range t.root.children {
		frontier = append(frontier, c)
	}
	for len(frontier) > 0 {
		node := frontier[0]
		frontier = frontier[1:]
		order = append(order, node)
		for _, c := range node.children {
			frontier = append(frontier, c)
		}
	}
	for _, node := range order {
		if node.ruleIdx >= 0 {
			node.match = node
		} else {
			node.match = node.fail.match
		}
	}
}

// step follows the automaton transition for letter l from cur, using
// failure links when there is no direct child (standard goto/fail walk).
func (t *trie) step(cur *trieNode, l present.Letter) *trieNode {
	for cur != t.root && cur.children[l] == nil {
		cur = cur.fail
	}
	if nxt, ok := cur.children[l]; ok {
		return nxt
	}
	return t.root
}
