package inversion

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
)

// entry is the memoised state of one board shape.
type entry struct {
	operator gf2.Matrix
	inverse  gf2.Matrix // nil when operator is singular
}

// Cache memoises combined operators and their inverses per board shape.
// It is safe for concurrent use; concurrent misses on one shape build it
// once.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	opts    options
}

// New returns an empty Cache.
func New(opts ...Option) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		opts:    gatherOptions(opts),
	}
}

// Default is the process-wide cache behind the package-level Product.
var Default = New()

// Product solves with the Default cache.
func Product(input []int, rows, cols int) ([]int, error) {
	return Default.Product(input, rows, cols)
}

func key(rows, cols int) string {
	return strconv.Itoa(rows) + "," + strconv.Itoa(cols)
}

func (c *Cache) logger() log.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}

	return log.Root()
}

// Len reports the number of cached shapes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) lookup(k string) (*entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[k]

	return e, ok
}

// load returns the entry for a shape, building it on a miss.
func (c *Cache) load(rows, cols int) (*entry, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	k := key(rows, cols)
	if e, ok := c.lookup(k); ok {
		if c.opts.metrics != nil {
			c.opts.metrics.Hits.Inc()
		}
		return e, nil
	}

	_, err, _ := c.group.Do(k, func() (any, error) {
		if e, ok := c.lookup(k); ok {
			return e, nil
		}
		return nil, c.fill(k, rows, cols)
	})
	if err != nil {
		return nil, err
	}

	e, ok := c.lookup(k)
	if !ok {
		return nil, fmt.Errorf("key %q: %w", k, ErrCacheInconsistent)
	}

	return e, nil
}

func (c *Cache) fill(k string, rows, cols int) error {
	start := time.Now()
	m, err := c.opts.builder.Operator(rows, cols)
	if err != nil {
		return fmt.Errorf("build %s: %w", k, err)
	}

	e := &entry{operator: m}
	inv, err := gf2.Invert(m)
	switch {
	case err == nil:
		e.inverse = inv
	case errors.Is(err, gf2.ErrSingular):
		if c.opts.metrics != nil {
			c.opts.metrics.Singular.Inc()
		}
	default:
		return fmt.Errorf("invert %s: %w", k, err)
	}

	c.mu.Lock()
	c.entries[k] = e
	c.mu.Unlock()

	elapsed := time.Since(start)
	if c.opts.metrics != nil {
		c.opts.metrics.Misses.Inc()
		c.opts.metrics.BuildSeconds.Observe(elapsed.Seconds())
	}
	c.logger().Debug(log.Inversion, "cached shape", "key", k, "singular", e.inverse == nil, "elapsed", elapsed)

	return nil
}

// Operator returns the combined operator P_{rows+1}(A) of a shape.
func (c *Cache) Operator(rows, cols int) (gf2.Matrix, error) {
	e, err := c.load(rows, cols)
	if err != nil {
		return nil, err
	}

	return e.operator, nil
}

// Inverse returns the cached inverse of a shape, or ErrSingularShape.
// The returned matrix is shared and must not be modified.
func (c *Cache) Inverse(rows, cols int) (gf2.Matrix, error) {
	e, err := c.load(rows, cols)
	if err != nil {
		return nil, err
	}
	if e.inverse == nil {
		return nil, fmt.Errorf("%s: %w", key(rows, cols), ErrSingularShape)
	}

	return e.inverse, nil
}

// Product maps a last-row pattern to the top-row presses that clear it.
//
// input holds one 0/1 entry per column, input[0] being column 0; an empty
// input is the zero pattern. Output bit r is the parity of inverse row r
// AND the packed input. Singular shapes answer with the lightest press
// pattern reaching input, or ErrUnsolvable.
func (c *Cache) Product(input []int, rows, cols int) ([]int, error) {
	if len(input) != 0 && len(input) != cols {
		return nil, fmt.Errorf("len %d, cols %d: %w", len(input), cols, ErrInputWidth)
	}
	e, err := c.load(rows, cols)
	if err != nil {
		return nil, err
	}

	v := new(big.Int)
	if len(input) > 0 {
		if v, err = gf2.Pack(input); err != nil {
			return nil, err
		}
	}

	if e.inverse != nil {
		out := make([]int, cols)
		tmp := new(big.Int)
		for r, row := range e.inverse {
			out[r] = int(gf2.Parity(tmp.And(row, v)))
		}
		return out, nil
	}

	x, ok := operator.MinWeightSolution(e.operator, v, cols)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", key(rows, cols), gf2.Format(v, cols), ErrUnsolvable)
	}

	return gf2.Unpack(x, cols), nil
}
