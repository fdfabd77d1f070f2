package toddcoxeter

// Option configures a ToddCoxeter at construction time, in the
// functional-options style shared with knuthbendix.Option.
type Option func(*options)

type options struct {
	strategy Strategy
}

func defaultOptions() options {
	return options{strategy: HLT}
}

// WithStrategy selects HLT or Felsch coset expansion.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}
