// Package digraph implements the word graph (action digraph) shared by
// the rewriting and enumeration engines: an ordered set of nodes with a
// fixed out-degree, each out-edge labelled and either undefined or
// pointing at another node.
//
// Storage is row-major in a single flat slice, out.data[n*degree+a],
// mirroring the teacher corpus's Dense matrix layout. Node/edge addition
// mutate in place; shrinking only happens through Restrict (truncate) or
// Quotient (coarsen). Cached artifacts — strongly connected component
// ids and the acyclicity flag — are invalidated by any mutation and
// recomputed lazily on next use. No spanning forest or reverse-edge index
// is kept.
package digraph
