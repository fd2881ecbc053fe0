// Package channel implements the binary symmetric, binary erasure and
// additive white Gaussian noise channel models.
//
// None of the models validate their parameters: a flip or erasure
// probability outside [0, 1] or an extreme SNR yields defined but possibly
// meaningless output. Inputs are never modified.
package channel

import (
	"math"
	"math/rand/v2"

	logging "github.com/ipfs/go-log/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var log = logging.Logger("channel")

// minSignalPower replaces a zero signal power to avoid dividing by zero
const minSignalPower = 1e-16

// BSC passes numeric 0/1 bits through a binary symmetric channel, replacing
// each bit with 1-bit with probability p.
func BSC[T Number](bits []T, p float64, opts ...Option) []T {
	u := uniform(applyOptions(opts).src)

	out := make([]T, len(bits))
	for i, b := range bits {
		if u.Rand() < p {
			out[i] = 1 - b
		} else {
			out[i] = b
		}
	}
	return out
}

// BSCBool passes boolean bits through a binary symmetric channel, negating
// each bit with probability p.
func BSCBool(bits []bool, p float64, opts ...Option) []bool {
	u := uniform(applyOptions(opts).src)

	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = b != (u.Rand() < p)
	}
	return out
}

// BEC passes symbols through a binary erasure channel. Each symbol is
// replaced with the erasure value (DefaultErasureValue unless set with
// WithErasureValue) with probability p. The output is always float64 so the
// erasure marker can coexist with the data.
func BEC[T Number](bits []T, p float64, opts ...Option) []float64 {
	o := applyOptions(opts)
	u := uniform(o.src)

	out := make([]float64, len(bits))
	for i, b := range bits {
		if u.Rand() < p {
			out[i] = o.erasureValue
		} else {
			out[i] = float64(b)
		}
	}
	return out
}

// BECBool is BEC for boolean bits, with true and false mapped to 1 and 0
func BECBool(bits []bool, p float64, opts ...Option) []float64 {
	numeric := make([]uint8, len(bits))
	for i, b := range bits {
		if b {
			numeric[i] = 1
		}
	}
	return BEC(numeric, p, opts...)
}

// SignalPower returns the mean power mean(x^2) of a real signal
func SignalPower(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x) / float64(len(x))
}

// SignalPowerComplex returns the mean power mean(|x|^2) of a complex signal
func SignalPowerComplex(x []complex128) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return sum / float64(len(x))
}

// AWGN adds real Gaussian noise to x so that the signal-to-noise ratio is
// approximately snrDB decibels. The noise variance is mean(x^2) / 10^(snrDB/10).
func AWGN(x []float64, snrDB float64, opts ...Option) []float64 {
	src := applyOptions(opts).src
	noisePower := noisePowerFor(SignalPower(x), snrDB)

	n := normal(math.Sqrt(noisePower), src)
	noise := make([]float64, len(x))
	for i := range noise {
		noise[i] = n.Rand()
	}

	out := make([]float64, len(x))
	floats.AddTo(out, x, noise)
	return out
}

// AWGNComplex adds circularly symmetric complex Gaussian noise to x. The real
// and imaginary parts are independent, each with half the noise power.
func AWGNComplex(x []complex128, snrDB float64, opts ...Option) []complex128 {
	src := applyOptions(opts).src
	noisePower := noisePowerFor(SignalPowerComplex(x), snrDB)

	n := normal(math.Sqrt(noisePower/2), src)
	re := make([]float64, len(x))
	for i := range re {
		re[i] = n.Rand()
	}
	im := make([]float64, len(x))
	for i := range im {
		im[i] = n.Rand()
	}

	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = v + complex(re[i], im[i])
	}
	return out
}

func noisePowerFor(signalPower, snrDB float64) float64 {
	if signalPower == 0 {
		signalPower = minSignalPower
	}
	snrLin := math.Pow(10, snrDB/10)
	noisePower := signalPower / snrLin
	log.Debugf("signal power %g, SNR %g dB, noise power %g", signalPower, snrDB, noisePower)
	return noisePower
}

func uniform(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}

func normal(sigma float64, src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
}
