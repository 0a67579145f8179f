package message

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/TheusHen/MiniRSA/minirsa/padding"
)

// Kind identifies how a frame body is encoded.
type Kind byte

const (
	KindRaw Kind = 0x01
	KindLZ4 Kind = 0x02
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "RAW"
	case KindLZ4:
		return "LZ4"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrMessageTooLarge = errors.New("message: message does not fit one carrier")
	ErrMalformedFrame  = errors.New("message: malformed frame")
)

// Frame builds the frame for data, compressing it when that is shorter.
func Frame(data []byte) []byte {
	if compressed, err := Compress(data, CompressionBest); err == nil && len(compressed) < len(data) {
		return append([]byte{byte(KindLZ4)}, compressed...)
	}
	return append([]byte{byte(KindRaw)}, data...)
}

// Encode turns data into a payload integer that padding.Pad accepts for bits.
func Encode(data []byte, bits int) (*big.Int, error) {
	payload := new(big.Int).SetBytes(Frame(data))
	digits := len(payload.Text(16))
	if capacity := padding.Capacity(bits); digits > capacity {
		return nil, fmt.Errorf("%w: %d hex digits, capacity %d: %w", ErrMessageTooLarge, digits, capacity, padding.ErrPayloadTooLarge)
	}
	return payload, nil
}

// Decode reverses Encode.
func Decode(payload *big.Int) ([]byte, error) {
	if payload.Sign() <= 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedFrame)
	}
	frame := payload.Bytes()
	body := frame[1:]
	switch Kind(frame[0]) {
	case KindRaw:
		return body, nil
	case KindLZ4:
		return Decompress(body)
	default:
		return nil, fmt.Errorf("%w: kind 0x%02x", ErrMalformedFrame, frame[0])
	}
}
