package arith

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxEuclidIterations bounds ExtendedGCD. The Euclidean algorithm always
// terminates well before this for any input MiniRSA produces, so reaching it
// means the loop itself is broken.
const MaxEuclidIterations = 1_000_000

var (
	ErrArithmeticExhausted = errors.New("arith: extended euclid exceeded iteration bound")
	ErrNegativeOperand     = errors.New("arith: operand must not be negative")
	ErrNotInvertible       = errors.New("arith: value has no modular inverse")
)

// ExtendedGCD returns (g, s, t) with a*s + b*t = g = gcd(a, b).
//
// The coefficients may be negative. A trip of MaxEuclidIterations is reported
// as ErrArithmeticExhausted and must be treated as an internal defect, not as
// something to retry.
func ExtendedGCD(a, b *big.Int) (gcd, s, t *big.Int, err error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return nil, nil, nil, ErrNegativeOperand
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0), nil
	}

	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)

	// (lastS, lastT) express x and (s, t) express y as combinations of a and b.
	lastS, s := big.NewInt(1), big.NewInt(0)
	lastT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	r := new(big.Int)
	for i := 0; i < MaxEuclidIterations; i++ {
		q.QuoRem(x, y, r)
		if r.Sign() == 0 {
			return y, s, t, nil
		}

		nextS := new(big.Int).Sub(lastS, new(big.Int).Mul(q, s))
		nextT := new(big.Int).Sub(lastT, new(big.Int).Mul(q, t))
		lastS, s = s, nextS
		lastT, t = t, nextT

		x, y = y, new(big.Int).Set(r)
	}
	return nil, nil, nil, fmt.Errorf("%w: %d iterations", ErrArithmeticExhausted, MaxEuclidIterations)
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) < 0 {
		return nil, ErrInvalidModulus
	}
	g, s, _, err := ExtendedGCD(a, m)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd is %s", ErrNotInvertible, g)
	}
	return s.Mod(s, m), nil
}
