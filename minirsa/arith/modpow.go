package arith

import (
	"errors"
	"math/big"
)

var (
	ErrInvalidModulus   = errors.New("arith: modulus must be at least 1")
	ErrNegativeExponent = errors.New("arith: exponent must not be negative")
	ErrZeroOperand      = errors.New("arith: operand must not be zero")
)

var one = big.NewInt(1)

// ModPow computes base^exponent mod modulus.
//
// The exponent is consumed from its least significant bit: when the low bit
// is set the accumulator is multiplied by the running base, then the base is
// squared and the exponent shifted right until it reaches zero.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Cmp(one) < 0 {
		return nil, ErrInvalidModulus
	}
	if exponent.Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	result := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() != 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result, nil
}

// SplitPowerOfTwo returns (k, m) such that n = 2^k * m and m is odd.
func SplitPowerOfTwo(n *big.Int) (int, *big.Int, error) {
	if n.Sign() == 0 {
		return 0, nil, ErrZeroOperand
	}
	m := new(big.Int).Set(n)
	k := 0
	for m.Bit(0) == 0 {
		m.Rsh(m, 1)
		k++
	}
	return k, m, nil
}
