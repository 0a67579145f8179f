package prime

import (
	"errors"
	"math/big"
	"testing"

	"github.com/TheusHen/MiniRSA/minirsa/random"
)

func sieve(limit int) []bool {
	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for i := 2; i*i <= limit; i++ {
		if !composite[i] {
			for j := i * i; j <= limit; j += i {
				composite[j] = true
			}
		}
	}
	isPrime := make([]bool, limit+1)
	for i := range composite {
		isPrime[i] = !composite[i]
	}
	return isPrime
}

func TestSmallFactorCheck(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{1, true},
		{101, true},
		{103 * 107, true},
		{7, false},
		{97, false},
		{2 * 101, false},
		{89 * 1009, false},
		{9409, false}, // 97^2
	}
	for _, tc := range cases {
		if got := SmallFactorCheck(big.NewInt(tc.n)); got != tc.want {
			t.Fatalf("SmallFactorCheck(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestIsProbablePrimeMatchesSieve(t *testing.T) {
	const limit = 5000
	isPrime := sieve(limit)
	src := random.NewHexSource(11, 13)
	for i := 0; i <= limit; i++ {
		got, err := IsProbablePrime(big.NewInt(int64(i)), src)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", i, err)
		}
		if got != isPrime[i] {
			t.Fatalf("IsProbablePrime(%d) = %v, want %v", i, got, isPrime[i])
		}
	}
}

func TestMillerRabinKnownValues(t *testing.T) {
	mersenne := func(p uint) *big.Int {
		return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), p), big.NewInt(1))
	}
	semiprime := new(big.Int).Mul(mersenne(61), mersenne(89))

	cases := []struct {
		name string
		n    *big.Int
		want bool
	}{
		{"mersenne 61", mersenne(61), true},
		{"mersenne 89", mersenne(89), true},
		{"mersenne 127", mersenne(127), true},
		{"fermat F4", big.NewInt(65537), true},
		{"carmichael 561", big.NewInt(561), false},
		{"carmichael 41041", big.NewInt(41041), false},
		{"carmichael 825265", big.NewInt(825265), false},
		{"mersenne 67 composite", mersenne(67), false},
		{"semiprime", semiprime, false},
		{"even", big.NewInt(1 << 40), false},
		{"two", big.NewInt(2), true},
		{"one", big.NewInt(1), false},
		{"thirteen", big.NewInt(13), true},
		{"fifteen", big.NewInt(15), false},
	}
	src := random.NewHexSource(5, 8)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MillerRabin(tc.n, DefaultRounds, src)
			if err != nil {
				t.Fatalf("MillerRabin: %v", err)
			}
			if got != tc.want {
				t.Fatalf("MillerRabin(%s) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestMillerRabinRejectsZeroRounds(t *testing.T) {
	_, err := MillerRabin(big.NewInt(101), 0, random.NewHexSource(1, 1))
	if !errors.Is(err, ErrInvalidRounds) {
		t.Fatalf("expected ErrInvalidRounds, got %v", err)
	}
}

type failingSource struct{ err error }

func (f failingSource) RandomBits(int) (*big.Int, error) { return nil, f.err }

func TestMillerRabinPropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := MillerRabin(big.NewInt(1000003), 4, failingSource{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}
