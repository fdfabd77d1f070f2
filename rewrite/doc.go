// Package rewrite implements a string-rewriting system over present.Word:
// an active/inactive rule multiset, ordered by a pluggable Ordering, with
// a trie of left-hand sides (with Aho-Corasick failure links) so that
// rewriting a candidate word is a single left-to-right scan.
//
// Complexity: adding a rule rebuilds the trie lazily on next Rewrite call,
// in O(total rule length); Rewrite scans the word once, and each
// replacement additionally re-walks the output produced so far and copies
// the unread remainder of the word.
package rewrite
