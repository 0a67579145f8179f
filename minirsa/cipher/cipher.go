// Package cipher implements textbook RSA encryption and decryption as
// modular exponentiation. No padding is applied here; see package padding.
package cipher

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/TheusHen/MiniRSA/minirsa/arith"
)

var (
	ErrPayloadTooLarge = errors.New("cipher: payload must be smaller than the modulus")
	ErrNegativePayload = errors.New("cipher: payload must not be negative")
)

// Encrypt returns message^e mod n. The message must lie in [0, n).
func Encrypt(message, publicExponent, modulus *big.Int) (*big.Int, error) {
	if err := checkRange(message, modulus); err != nil {
		return nil, err
	}
	return arith.ModPow(message, publicExponent, modulus)
}

// Decrypt returns ciphertext^d mod n. The ciphertext must lie in [0, n).
func Decrypt(ciphertext, privateExponent, modulus *big.Int) (*big.Int, error) {
	if err := checkRange(ciphertext, modulus); err != nil {
		return nil, err
	}
	return arith.ModPow(ciphertext, privateExponent, modulus)
}

func checkRange(x, modulus *big.Int) error {
	if x.Sign() < 0 {
		return ErrNegativePayload
	}
	if modulus.Sign() <= 0 {
		return arith.ErrInvalidModulus
	}
	if x.Cmp(modulus) >= 0 {
		return fmt.Errorf("%w: %d bits against a %d-bit modulus", ErrPayloadTooLarge, x.BitLen(), modulus.BitLen())
	}
	return nil
}
