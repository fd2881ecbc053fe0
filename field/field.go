package field

import (
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("field")

var (
	// ErrInvalidArgument is returned when a field is constructed from an invalid modulus
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoInverse is returned when an element has no multiplicative inverse
	ErrNoInverse = errors.New("no inverse exists")
)

// IsPrime reports whether n is prime using trial division up to sqrt(n)
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	for i := int64(2); withinSqrt(i, n); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// withinSqrt reports i*i <= n for positive i without overflowing
func withinSqrt(i, n int64) bool {
	return i <= n/i
}

// ModInv returns the multiplicative inverse of a modulo p, computed with the
// extended Euclidean algorithm. The result is in [0, p).
func ModInv(a, p int64) (int64, error) {
	t, newT := int64(0), int64(1)
	r, newR := p, a
	for newR != 0 {
		q := floorDiv(r, newR)
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r > 1 {
		return 0, fmt.Errorf("%d has no inverse mod %d: %w", a, p, ErrNoInverse)
	}
	if t < 0 {
		t += p
	}
	return t, nil
}

// floorDiv rounds toward negative infinity so negative operands walk the
// same remainder sequence as a mathematical Euclid.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod reduces a into [0, m)
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
