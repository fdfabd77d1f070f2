package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// Rewrite reduces word to its normal form under the active rules, using a
// single left-to-right scan of the Aho-Corasick automaton built over the
// rules' left-hand sides. Whenever the automaton recognises a left-hand
// side ending at the current position, the matched suffix of the output
// buffer is replaced by the rule's right-hand side, and the scan resumes
// from maxLhsLen letters before the end of the buffer so that any new
// match spanning the replacement boundary is still found.
func (s *System) Rewrite(word present.Word) present.Word {
	s.ensureTrie()
	if s.maxLhsLen == 0 || len(word) == 0 {
		return word.Clone()
	}
	buf := make(present.Word, 0, len(word))
	rest := append(present.Word(nil), word...)
	cur := s.trie.root
	for len(rest) > 0 {
		l := rest[0]
		rest = rest[1:]
		cur = s.trie.step(cur, l)
		buf = append(buf, l)
		if cur.match == nil {
			continue
		}
		rule := s.rules[cur.match.ruleIdx]
		cut := len(buf) - len(rule.Lhs)
		buf = append(buf[:cut], rule.Rhs...)
		resumeAt := len(buf) - s.maxLhsLen
		if resumeAt < 0 {
			resumeAt = 0
		}
		rest = append(append(present.Word(nil), buf[resumeAt:]...), rest...)
		buf = buf[:resumeAt]
		cur = s.trie.root
		for _, c := range buf {
			cur = s.trie.step(cur, c)
		}
	}
	return buf
}
