package padding

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MinBits is the smallest width with room for a one-digit payload.
	MinBits = 32

	marker       = "f"
	headerDigits = 4
	maxUnit      = 0xFFFF
)

var (
	ErrInvalidBitWidth  = errors.New("padding: bit width must be a multiple of 4 and at least 32")
	ErrPayloadTooLarge  = errors.New("padding: payload exceeds carrier capacity")
	ErrNegativePayload  = errors.New("padding: payload must not be negative")
	ErrMalformedCarrier = errors.New("padding: malformed carrier")
)

// Width returns the number of hex digits in a carrier for bits.
func Width(bits int) int { return bits/4 - 2 }

// Capacity returns the largest payload, in hex digits, that Pad accepts for
// bits. The unit (marker plus payload) must fit in the W-4 digits kept
// before the header.
func Capacity(bits int) int {
	c := Width(bits) - headerDigits - len(marker)
	if c > maxUnit-len(marker) {
		c = maxUnit - len(marker)
	}
	return c
}

func checkBits(bits int) error {
	if bits < MinBits || bits%4 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBitWidth, bits)
	}
	return nil
}

// Pad encodes data into a carrier of Width(bits) hex digits. Payloads longer
// than Capacity(bits) hex digits are rejected rather than truncated.
func Pad(data *big.Int, bits int) (*big.Int, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}
	if data.Sign() < 0 {
		return nil, ErrNegativePayload
	}

	unit := marker + data.Text(16)
	if len(unit)-len(marker) > Capacity(bits) {
		return nil, fmt.Errorf("%w: %d hex digits, capacity %d", ErrPayloadTooLarge, len(unit)-len(marker), Capacity(bits))
	}

	// The leading zero nibble keeps the parse unambiguous; Text(16) drops it
	// again on the way back.
	body := Width(bits) - headerDigits
	var sb strings.Builder
	sb.Grow(1 + Width(bits))
	sb.WriteByte('0')
	sb.WriteString(repeatTo(unit, body))
	fmt.Fprintf(&sb, "%0*x", headerDigits, len(unit))

	carrier, ok := new(big.Int).SetString(sb.String(), 16)
	if !ok {
		return nil, fmt.Errorf("padding: cannot parse carrier %q", sb.String())
	}
	return carrier, nil
}

// repeatTo returns the first n digits of unit repeated indefinitely.
func repeatTo(unit string, n int) string {
	s := unit
	for len(s) < n {
		s += s
	}
	return s[:n]
}

// Unpad recovers the payload from a carrier produced by Pad. Carriers whose
// marker, header or repeated body do not match the layout are rejected with
// ErrMalformedCarrier.
func Unpad(carrier *big.Int) (*big.Int, error) {
	if carrier.Sign() <= 0 {
		return nil, fmt.Errorf("%w: not positive", ErrMalformedCarrier)
	}
	s := carrier.Text(16)
	if len(s) < len(marker)+1+headerDigits {
		return nil, fmt.Errorf("%w: %d hex digits", ErrMalformedCarrier, len(s))
	}
	if !strings.HasPrefix(s, marker) {
		return nil, fmt.Errorf("%w: missing marker", ErrMalformedCarrier)
	}

	body, header := s[:len(s)-headerDigits], s[len(s)-headerDigits:]
	n, err := strconv.ParseUint(header, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedCarrier, header)
	}
	unitLen := int(n)
	if unitLen < len(marker)+1 || unitLen > len(body) {
		return nil, fmt.Errorf("%w: unit length %d out of range", ErrMalformedCarrier, unitLen)
	}

	unit := body[:unitLen]
	for i := unitLen; i < len(body); i++ {
		if body[i] != unit[i%unitLen] {
			return nil, fmt.Errorf("%w: body is not a repetition of the unit", ErrMalformedCarrier)
		}
	}

	data, ok := new(big.Int).SetString(unit[len(marker):], 16)
	if !ok {
		return nil, fmt.Errorf("%w: payload %q", ErrMalformedCarrier, unit[len(marker):])
	}
	return data, nil
}
