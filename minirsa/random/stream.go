package random

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

var ErrEmptySeed = errors.New("random: stream seed must not be empty")

// DeriveKey derives a key of the specified length using HKDF-SHA256.
// salt can be nil (uses zero salt), info provides context binding.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// NewStreamSource returns a deterministic Source keyed by seed.
//
// The seed and info are expanded with HKDF into a ChaCha20 key and nonce; the
// keystream then feeds a ReaderSource. Equal (seed, info) pairs yield equal
// sequences, and without the seed the output is unpredictable.
func NewStreamSource(seed []byte, info string) (*ReaderSource, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	material, err := DeriveKey(seed, nil, []byte("minirsa-random-stream:"+info), chacha20.KeySize+chacha20.NonceSize)
	if err != nil {
		return nil, err
	}
	c, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}
	return NewReaderSource(&keystream{c: c}), nil
}

type keystream struct {
	c *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}
