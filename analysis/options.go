package analysis

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/katalvlaran/lightsout/inversion"
)

const (
	// DefaultMaxRank is the largest reachable-space rank GodsNumber explores.
	DefaultMaxRank = 24
	// FullSubspaceRank is the largest image rank whose every state is listed
	// in a solvability report; larger images list only the basis.
	FullSubspaceRank = 6
	// groupingLimit is the bit count below which state counts are printed
	// in full.
	groupingLimit = 50
)

type options struct {
	cache   *inversion.Cache
	maxRank int
	lang    language.Tag
}

// Option configures the reports.
type Option func(*options)

// WithCache sets the operator cache. Defaults to inversion.Default.
func WithCache(c *inversion.Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithMaxRank overrides DefaultMaxRank. It panics outside [1, 32].
func WithMaxRank(rank int) Option {
	if rank < 1 || rank > 32 {
		panic(fmt.Sprintf("analysis: WithMaxRank(%d): rank must be in [1, 32]", rank))
	}

	return func(o *options) { o.maxRank = rank }
}

// WithLanguage selects the locale used for digit grouping.
// Defaults to English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

func gatherOptions(opts []Option) options {
	o := options{
		cache:   inversion.Default,
		maxRank: DefaultMaxRank,
		lang:    language.English,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
