package period

import "fmt"

// DefaultIterationLimit bounds the recurrence walk.
const DefaultIterationLimit = 10_000_000

type options struct {
	limit int
}

// Option configures Find.
type Option func(*options)

// WithIterationLimit overrides DefaultIterationLimit. It panics for limits
// below 2, which can never observe a period.
func WithIterationLimit(limit int) Option {
	if limit < 2 {
		panic(fmt.Sprintf("period: WithIterationLimit(%d): limit must be >= 2", limit))
	}

	return func(o *options) { o.limit = limit }
}

func gatherOptions(opts []Option) options {
	o := options{limit: DefaultIterationLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
