// Package ook implements on-off keying, where a 1 is sent as a carrier of
// fixed amplitude and a 0 as silence.
package ook

import (
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/exp/constraints"
)

var log = logging.Logger("ook")

const (
	// DefaultAmplitude is the carrier amplitude used for a 1
	DefaultAmplitude = 1.0

	// DefaultThreshold is the decision threshold used by Demodulate
	DefaultThreshold = 0.5
)

// Number is the set of element types accepted as 0/1 data
type Number interface {
	constraints.Integer | constraints.Float
}

type options struct {
	amplitude float64
	threshold float64
}

// Option configures Modulate or Demodulate
type Option func(*options)

// WithAmplitude sets the carrier amplitude for Modulate
func WithAmplitude(a float64) Option {
	return func(o *options) {
		o.amplitude = a
	}
}

// WithThreshold sets the decision threshold for Demodulate
func WithThreshold(th float64) Option {
	return func(o *options) {
		o.threshold = th
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		amplitude: DefaultAmplitude,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Modulate maps each data value d to the complex sample d*amplitude. Data is
// expected to hold only 0 and 1; other values are scaled the same way.
func Modulate[T Number](data []T, opts ...Option) []complex128 {
	o := applyOptions(opts)

	signal := make([]complex128, len(data))
	for i, d := range data {
		signal[i] = complex(float64(d)*o.amplitude, 0)
	}
	log.Debugf("modulated %d symbols at amplitude %g", len(data), o.amplitude)
	return signal
}

// Demodulate decides each sample against the threshold, producing 1+0i for
// sample >= threshold and 0+0i otherwise.
//
// The decision is only defined for real samples. Callers holding complex
// samples must reduce them first, e.g. with RealPart.
func Demodulate(signal []float64, opts ...Option) []complex128 {
	o := applyOptions(opts)

	symbols := make([]complex128, len(signal))
	for i, s := range signal {
		if s >= o.threshold {
			symbols[i] = 1
		}
	}
	return symbols
}

// RealPart returns the real part of every sample
func RealPart(signal []complex128) []float64 {
	out := make([]float64, len(signal))
	for i, s := range signal {
		out[i] = real(s)
	}
	return out
}

// Bits converts demodulated symbols to 0/1 bits
func Bits(symbols []complex128) []uint8 {
	out := make([]uint8, len(symbols))
	for i, s := range symbols {
		if s != 0 {
			out[i] = 1
		}
	}
	return out
}
