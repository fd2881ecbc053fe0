package channel

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted for 0/1 bit slices
type Number interface {
	constraints.Integer | constraints.Float
}

// DefaultErasureValue marks an erased symbol in BEC output
const DefaultErasureValue = -1.0

type options struct {
	src          rand.Source
	erasureValue float64
}

// Option configures a single channel call
type Option func(*options)

// WithSource draws randomness from src. The caller owns src; it is not
// synchronized, so it must not be shared across concurrent calls.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithErasureValue sets the value BEC writes in place of erased symbols
func WithErasureValue(v float64) Option {
	return func(o *options) {
		o.erasureValue = v
	}
}

func applyOptions(opts []Option) *options {
	o := &options{erasureValue: DefaultErasureValue}
	for _, opt := range opts {
		opt(o)
	}
	if o.src == nil {
		// Private to this call, never kept between calls
		o.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return o
}
