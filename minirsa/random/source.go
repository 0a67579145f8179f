package random

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
)

var (
	ErrInvalidBitWidth = errors.New("random: bit width must be a positive multiple of 4")
	ErrSourceStalled   = errors.New("random: source keeps producing a zero leading digit")
)

// Source produces random integers of an exact bit width.
//
// RandomBits must return a value in [2^(bits-4), 2^bits): the leading hex
// digit is never zero, so the result always occupies the full width.
type Source interface {
	RandomBits(bits int) (*big.Int, error)
}

// CheckBitWidth reports whether bits is a width Source implementations accept.
func CheckBitWidth(bits int) error {
	if bits <= 0 || bits%4 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBitWidth, bits)
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// HexSource draws hex digits from a math/rand/v2 generator.
//
// It is fast and reproducible but NOT cryptographically secure. It is not
// safe for concurrent use.
type HexSource struct {
	rng *rand.Rand
}

// NewHexSource returns a HexSource seeded deterministically.
func NewHexSource(seed1, seed2 uint64) *HexSource {
	return &HexSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Default returns a HexSource seeded from the runtime's random state.
func Default() *HexSource {
	return NewHexSource(rand.Uint64(), rand.Uint64())
}

func (s *HexSource) RandomBits(bits int) (*big.Int, error) {
	if err := CheckBitWidth(bits); err != nil {
		return nil, err
	}
	digits := make([]byte, bits/4)
	digits[0] = hexDigits[1+s.rng.IntN(len(hexDigits)-1)]
	for i := 1; i < len(digits); i++ {
		digits[i] = hexDigits[s.rng.IntN(len(hexDigits))]
	}
	n, ok := new(big.Int).SetString(string(digits), 16)
	if !ok {
		return nil, fmt.Errorf("random: cannot parse %q", digits)
	}
	return n, nil
}
