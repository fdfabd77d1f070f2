// Package present defines the data model shared by every rewriting and
// enumeration engine: letters, words, relations, and presentations.
//
// A Presentation is a generator alphabet together with a multiset of
// defining relations (u, v) asserting u = v. Word is an ordered finite
// sequence of Letter; Letter is a small unsigned index into the alphabet.
//
// Complexity: all operations here are O(len(word)) or O(len(relations));
// Presentation carries no hidden state and is safe to share (read-only)
// across goroutines once built.
package present
