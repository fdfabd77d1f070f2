package knuthbendix

import "github.com/libsemigroups/libsemigroups-sub005/rewrite"

// options holds tunable completion parameters, configured via Option.
type options struct {
	ordering        rewrite.Ordering
	maxRules        int  // 0 = unbounded
	maxOverlap      int  // 0 = unbounded overlap length
	reportEvery     int  // overlap batches processed between confluence re-checks
	checkConfluence bool
}

func defaultOptions() options {
	return options{
		ordering:        rewrite.ShortLex{},
		maxRules:        0,
		maxOverlap:      0,
		reportEvery:     32,
		checkConfluence: true,
	}
}

// Option configures a KnuthBendix instance at construction time.
type Option func(*options)

// WithOrdering selects the reduction ordering used to orient new rules.
// The default is ShortLex.
func WithOrdering(ord rewrite.Ordering) Option {
	return func(o *options) {
		if ord != nil {
			o.ordering = ord
		}
	}
}

// WithMaxRules bounds the number of active rules completion will create
// before giving up and reporting non-confluence; 0 (the default) means
// unbounded.
func WithMaxRules(n int) Option {
	return func(o *options) { o.maxRules = n }
}

// WithMaxOverlap bounds the length of overlap considered between two
// rules' left-hand sides when searching for critical pairs; 0 (the
// default) means unbounded.
func WithMaxOverlap(n int) Option {
	return func(o *options) { o.maxOverlap = n }
}

// WithCheckConfluence controls whether Run performs periodic confluence
// checks to allow early exit once the rule set stabilises; disabling it
// trades early-exit for raw throughput on presentations known to need
// the full rule budget.
func WithCheckConfluence(b bool) Option {
	return func(o *options) { o.checkConfluence = b }
}
