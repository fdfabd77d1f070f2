// Package race runs several cooperative engines (anything with Run and
// Kill methods, see Runnable) concurrently and
// returns whichever finishes first, killing the rest. It is the
// concurrency-budgeted counterpart to running one engine at a time: e.g.
// racing a knuthbendix.KnuthBendix completion attempt against a
// froidurepin.FroidurePin enumeration to decide a semigroup's finiteness
// however it becomes apparent first.
package race
