package prime

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/TheusHen/MiniRSA/minirsa/arith"
	"github.com/TheusHen/MiniRSA/minirsa/random"
)

// DefaultRounds gives a false-positive bound of 4^-64.
const DefaultRounds = 64

var ErrInvalidRounds = errors.New("prime: miller-rabin needs at least one round")

// SmallPrimes lists every prime below 100, the trial divisors of
// SmallFactorCheck.
var SmallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

var (
	one     = big.NewInt(1)
	two     = big.NewInt(2)
	sixteen = big.NewInt(16)
	hundred = big.NewInt(100)

	smallDivisors = func() []*big.Int {
		out := make([]*big.Int, len(SmallPrimes))
		for i, p := range SmallPrimes {
			out[i] = big.NewInt(p)
		}
		return out
	}()
)

// SmallFactorCheck returns false if n is divisible by any prime below 100.
// A small prime is divisible by itself, so SmallFactorCheck(7) is false; use
// IsProbablePrime for an exact answer on small inputs.
func SmallFactorCheck(n *big.Int) bool {
	r := new(big.Int)
	for _, p := range smallDivisors {
		if r.Mod(n, p).Sign() == 0 {
			return false
		}
	}
	return true
}

func isSmallPrime(n *big.Int) bool {
	if !n.IsInt64() {
		return false
	}
	v := n.Int64()
	for _, p := range SmallPrimes {
		if v == p {
			return true
		}
	}
	return false
}

// MillerRabin reports whether n is a probable prime after rounds witnesses.
//
// n-1 is written as 2^k * m. Each round draws a = RandomBits(testBits) + 1,
// where testBits is four less than n's width in hex digits, and computes
// b = a^m mod n. The round passes when b is 1 or n-1, or when squaring b at
// most k-1 times reaches n-1. The first failing round declares n composite.
func MillerRabin(n *big.Int, rounds int, src random.Source) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return n.Cmp(two) == 0, nil
	}
	// Single hex digit: the witness range below is empty.
	if n.Cmp(sixteen) < 0 {
		return isSmallPrime(n), nil
	}

	nMinusOne := new(big.Int).Sub(n, one)
	k, m, err := arith.SplitPowerOfTwo(nMinusOne)
	if err != nil {
		return false, err
	}
	testBits := len(n.Text(16))*4 - 4

	for i := 0; i < rounds; i++ {
		a, err := src.RandomBits(testBits)
		if err != nil {
			return false, err
		}
		a.Add(a, one)

		b, err := arith.ModPow(a, m, n)
		if err != nil {
			return false, err
		}
		if b.Cmp(one) == 0 || b.Cmp(nMinusOne) == 0 {
			continue
		}
		if !squaresToMinusOne(b, k, n, nMinusOne) {
			return false, nil
		}
	}
	return true, nil
}

// squaresToMinusOne squares b modulo n up to k-1 times looking for n-1.
func squaresToMinusOne(b *big.Int, k int, n, nMinusOne *big.Int) bool {
	x := new(big.Int).Set(b)
	for r := 1; r < k; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}

// IsProbablePrime is the combined predicate SmallFactorCheck(n) &&
// MillerRabin(n, DefaultRounds). Inputs up to 100 are answered exactly.
func IsProbablePrime(n *big.Int, src random.Source) (bool, error) {
	return probablePrime(n, DefaultRounds, src)
}

func probablePrime(n *big.Int, rounds int, src random.Source) (bool, error) {
	if n.Cmp(hundred) <= 0 {
		return isSmallPrime(n), nil
	}
	if !SmallFactorCheck(n) {
		return false, nil
	}
	return MillerRabin(n, rounds, src)
}
