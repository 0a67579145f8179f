package minirsa

import (
	"context"
	"errors"
	"math/big"

	"github.com/TheusHen/MiniRSA/minirsa/cipher"
	"github.com/TheusHen/MiniRSA/minirsa/keys"
	"github.com/TheusHen/MiniRSA/minirsa/message"
	"github.com/TheusHen/MiniRSA/minirsa/padding"
	"github.com/TheusHen/MiniRSA/minirsa/random"
)

var ErrModulusTooSmall = errors.New("minirsa: modulus too small for a padded message")

// GenerateKeys creates a key pair from two primes of bits bits each using the
// default key generator settings. A nil src selects random.Default(), which is
// NOT cryptographically secure; pass random.NewCryptoSource() for real keys.
func GenerateKeys(ctx context.Context, bits int, src random.Source) (keys.KeyPair, error) {
	gen, err := keys.NewGenerator(src, keys.Config{})
	if err != nil {
		return keys.KeyPair{}, err
	}
	return gen.Generate(ctx, bits)
}

// Encrypt returns data^e mod n.
func Encrypt(data, publicExponent, modulus *big.Int) (*big.Int, error) {
	return cipher.Encrypt(data, publicExponent, modulus)
}

// Decrypt returns ciphertext^d mod n.
func Decrypt(ciphertext, privateExponent, modulus *big.Int) (*big.Int, error) {
	return cipher.Decrypt(ciphertext, privateExponent, modulus)
}

// Pad packs data into a carrier for a modulus width of bits.
func Pad(data *big.Int, bits int) (*big.Int, error) {
	return padding.Pad(data, bits)
}

// Unpad recovers the data packed by Pad.
func Unpad(carrier *big.Int) (*big.Int, error) {
	return padding.Unpad(carrier)
}

// PaddingBits returns the carrier width used by Seal for a modulus: its bit
// length rounded down to a multiple of 4. The resulting carrier is always
// smaller than the modulus.
func PaddingBits(modulus *big.Int) int {
	return modulus.BitLen() / 4 * 4
}

// Seal encodes plaintext into a single carrier and encrypts it under kp.
func Seal(kp keys.KeyPair, plaintext []byte) (*big.Int, error) {
	n := kp.Modulus()
	bits := PaddingBits(n)
	if bits < padding.MinBits {
		return nil, ErrModulusTooSmall
	}
	payload, err := message.Encode(plaintext, bits)
	if err != nil {
		return nil, err
	}
	carrier, err := padding.Pad(payload, bits)
	if err != nil {
		return nil, err
	}
	return cipher.Encrypt(carrier, kp.PublicExponent(), n)
}

// Open decrypts a ciphertext produced by Seal. A ciphertext sealed under a
// different key fails with padding.ErrMalformedCarrier.
func Open(kp keys.KeyPair, ciphertext *big.Int) ([]byte, error) {
	carrier, err := cipher.Decrypt(ciphertext, kp.PrivateExponent(), kp.Modulus())
	if err != nil {
		return nil, err
	}
	payload, err := padding.Unpad(carrier)
	if err != nil {
		return nil, err
	}
	return message.Decode(payload)
}
