package field

import (
	"fmt"
	"math/bits"
)

// PrimeField represents the prime finite field GF(p)
type PrimeField struct {
	p        int64   // the prime modulus
	elements []int64 // 0, 1, ..., p-1
}

// NewPrimeField creates a new prime field. It fails with ErrInvalidArgument
// unless p is a prime greater than 1. All p elements are materialized, so
// only small moduli are practical.
func NewPrimeField(p int64) (*PrimeField, error) {
	if p <= 1 || !IsPrime(p) {
		return nil, fmt.Errorf("p must be a prime number greater than 1, got %d: %w", p, ErrInvalidArgument)
	}

	elements := make([]int64, p)
	for i := range elements {
		elements[i] = int64(i)
	}
	log.Debugf("created GF(%d)", p)

	return &PrimeField{
		p:        p,
		elements: elements,
	}, nil
}

// P returns the prime modulus
func (f *PrimeField) P() int64 {
	return f.p
}

// Order returns the order (size) of the field, which is p for a prime field
func (f *PrimeField) Order() int64 {
	return f.p
}

// Elements returns a copy of the field elements in ascending order
func (f *PrimeField) Elements() []int64 {
	out := make([]int64, len(f.elements))
	copy(out, f.elements)
	return out
}

// Add returns (a + b) mod p
func (f *PrimeField) Add(a, b int64) int64 {
	return mod(a+b, f.p)
}

// Sub returns (a - b) mod p
func (f *PrimeField) Sub(a, b int64) int64 {
	return mod(a-b, f.p)
}

// Mul returns (a * b) mod p. The product is formed in 128 bits, so any
// int64 modulus is safe.
func (f *PrimeField) Mul(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(mod(a, f.p)), uint64(mod(b, f.p)))
	return int64(bits.Rem64(hi, lo, uint64(f.p)))
}

// Inv returns the multiplicative inverse of a
func (f *PrimeField) Inv(a int64) (int64, error) {
	return ModInv(mod(a, f.p), f.p)
}

// Div returns a / b, failing with ErrNoInverse when b is zero
func (f *PrimeField) Div(a, b int64) (int64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

// Pow returns a^e mod p for e >= 0
func (f *PrimeField) Pow(a, e int64) int64 {
	result := int64(1) % f.p
	base := mod(a, f.p)
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		e >>= 1
	}
	return result
}

// AddVec adds two slices elementwise. A slice of length one is broadcast
// against the other operand; any other length mismatch panics.
func (f *PrimeField) AddVec(a, b []int64) []int64 {
	return f.elementwise(a, b, f.Add)
}

// SubVec subtracts two slices elementwise with the same broadcasting rules as AddVec
func (f *PrimeField) SubVec(a, b []int64) []int64 {
	return f.elementwise(a, b, f.Sub)
}

func (f *PrimeField) elementwise(a, b []int64, op func(x, y int64) int64) []int64 {
	n := len(a)
	switch {
	case len(a) == len(b):
	case len(a) == 1:
		n = len(b)
	case len(b) == 1:
	default:
		panic(fmt.Sprintf("operands could not be broadcast together: lengths %d and %d", len(a), len(b)))
	}

	result := make([]int64, n)
	for i := range result {
		result[i] = op(a[i%len(a)], b[i%len(b)])
	}
	return result
}

// MultiplicativeOrder returns the smallest k > 0 with g^k = 1, found by
// repeated multiplication. It returns 0 when g is zero.
func (f *PrimeField) MultiplicativeOrder(g int64) int64 {
	g = mod(g, f.p)
	if g == 0 {
		return 0
	}
	order := int64(1)
	current := g
	for current != 1 {
		current = f.Mul(current, g)
		order++
	}
	return order
}

// IsPrimitiveRoot reports whether g generates the multiplicative group
func (f *PrimeField) IsPrimitiveRoot(g int64) bool {
	return f.MultiplicativeOrder(g) == f.p-1
}

// PrimitiveRoots returns all primitive roots of the field in ascending order.
// 0 and 1 are never candidates, so GF(2) has none.
func (f *PrimeField) PrimitiveRoots() []int64 {
	var roots []int64
	for _, g := range f.elements {
		if g == 0 || g == 1 {
			continue
		}
		if f.MultiplicativeOrder(g) == f.p-1 {
			roots = append(roots, g)
		}
	}
	log.Debugf("GF(%d) has %d primitive roots", f.p, len(roots))
	return roots
}

// String returns the string representation of the field
func (f *PrimeField) String() string {
	return fmt.Sprintf("GF(%d)", f.p)
}
