package message

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/TheusHen/MiniRSA/minirsa/padding"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":         {},
		"text":          []byte("hello minirsa"),
		"leading zeros": {0x00, 0x00, 0x01, 0x02},
		"all zeros":     make([]byte, 16),
		"binary":        {0xff, 0x00, 0x10, 0x80, 0x7f},
		"repetitive":    bytes.Repeat([]byte("abc"), 200),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			payload, err := Encode(data, 2048)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(payload)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("round trip mismatch: got %x, want %x", got, data)
			}
		})
	}
}

func TestFrameUsesCompressionWhenShorter(t *testing.T) {
	repetitive := []byte(strings.Repeat("minirsa ", 100))
	if kind := Kind(Frame(repetitive)[0]); kind != KindLZ4 {
		t.Fatalf("expected %s frame for repetitive data, got %s", KindLZ4, kind)
	}

	short := []byte("hi")
	if kind := Kind(Frame(short)[0]); kind != KindRaw {
		t.Fatalf("expected %s frame for short data, got %s", KindRaw, kind)
	}
}

func TestEncodeRejectsOversizedMessage(t *testing.T) {
	// Incompressible bytes one past what a 256-bit carrier can hold.
	data := make([]byte, padding.Capacity(256)/2+1)
	for i := range data {
		data[i] = byte(i*97 + 13)
	}
	_, err := Encode(data, 256)
	if !errors.Is(err, ErrMessageTooLarge) || !errors.Is(err, padding.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge wrapping padding.ErrPayloadTooLarge, got %v", err)
	}
}

func TestEncodedPayloadPads(t *testing.T) {
	payload, err := Encode([]byte("padding fit"), 256)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	carrier, err := padding.Pad(payload, 256)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	back, err := padding.Unpad(carrier)
	if err != nil {
		t.Fatalf("Unpad: %v", err)
	}
	got, err := Decode(back)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != "padding fit" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeRejectsMalformedFrames(t *testing.T) {
	if _, err := Decode(big.NewInt(0)); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame for zero, got %v", err)
	}
	if _, err := Decode(new(big.Int).SetBytes([]byte{0x07, 0x01})); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame for unknown kind, got %v", err)
	}
	if _, err := Decode(new(big.Int).SetBytes([]byte{byte(KindLZ4), 0xde, 0xad, 0xbe, 0xef})); !errors.Is(err, ErrDecompressionFailed) {
		t.Fatalf("expected ErrDecompressionFailed, got %v", err)
	}
}

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("lz4 round trip "), 50)
	for _, level := range []CompressionLevel{CompressionFast, CompressionDefault, CompressionBest} {
		compressed, err := Compress(data, level)
		if err != nil {
			t.Fatalf("Compress(%d): %v", level, err)
		}
		got, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("Decompress(%d): %v", level, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("level %d: round trip mismatch", level)
		}
	}
}
