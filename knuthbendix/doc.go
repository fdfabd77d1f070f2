// Package knuthbendix implements Knuth-Bendix completion of a semigroup
// or monoid presentation into a confluent rewriting system, built on
// rewrite.System and driven by a runner.Runner so that completion can be
// bounded by wall clock, a predicate, or killed from another goroutine.
package knuthbendix
