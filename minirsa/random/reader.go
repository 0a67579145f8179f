package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// maxLeadingRedraws caps rejection sampling of the leading digit. An honest
// reader needs more than a handful of redraws with probability 16^-n.
const maxLeadingRedraws = 64

// ReaderSource turns an io.Reader of uniform bytes into a Source.
type ReaderSource struct {
	r io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// RandomBits reads ceil(bits/8) bytes, masks them to bits and redraws while
// the leading hex digit is zero, which keeps the draw uniform over
// [2^(bits-4), 2^bits).
func (s *ReaderSource) RandomBits(bits int) (*big.Int, error) {
	if err := CheckBitWidth(bits); err != nil {
		return nil, err
	}
	buf := make([]byte, (bits+7)/8)
	lead := new(big.Int)
	for i := 0; i < maxLeadingRedraws; i++ {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return nil, fmt.Errorf("random: read: %w", err)
		}
		if bits%8 != 0 {
			buf[0] &= 0x0f
		}
		n := new(big.Int).SetBytes(buf)
		if lead.Rsh(n, uint(bits-4)).Sign() != 0 {
			return n, nil
		}
	}
	return nil, ErrSourceStalled
}
