package keys

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/TheusHen/MiniRSA/minirsa/arith"
)

var ErrInvalidKeyPair = errors.New("keys: key pair invariants do not hold")

// KeyPair holds a public exponent, private exponent and modulus, plus the two
// primes the modulus was built from. A KeyPair is immutable: accessors return
// copies.
type KeyPair struct {
	e, d, n *big.Int
	p, q    *big.Int
}

// PublicExponent returns e.
func (kp KeyPair) PublicExponent() *big.Int { return copyInt(kp.e) }

// PrivateExponent returns d.
func (kp KeyPair) PrivateExponent() *big.Int { return copyInt(kp.d) }

// Modulus returns n = p*q.
func (kp KeyPair) Modulus() *big.Int { return copyInt(kp.n) }

// Factors returns the primes p and q. Anyone holding them can rebuild d.
func (kp KeyPair) Factors() (p, q *big.Int) { return copyInt(kp.p), copyInt(kp.q) }

// Bits returns the bit length of the modulus.
func (kp KeyPair) Bits() int {
	if kp.n == nil {
		return 0
	}
	return kp.n.BitLen()
}

// Validate re-checks n = p*q, gcd(e, totient) = 1, e*d = 1 (mod totient) and
// 0 <= d < totient.
func (kp KeyPair) Validate() error {
	if kp.e == nil || kp.d == nil || kp.n == nil || kp.p == nil || kp.q == nil {
		return fmt.Errorf("%w: missing component", ErrInvalidKeyPair)
	}
	if new(big.Int).Mul(kp.p, kp.q).Cmp(kp.n) != 0 {
		return fmt.Errorf("%w: modulus is not p*q", ErrInvalidKeyPair)
	}
	phi := totient(kp.p, kp.q)
	g, _, _, err := arith.ExtendedGCD(kp.e, phi)
	if err != nil {
		return err
	}
	if g.Cmp(one) != 0 {
		return fmt.Errorf("%w: public exponent shares a factor with the totient", ErrInvalidKeyPair)
	}
	if kp.d.Sign() < 0 || kp.d.Cmp(phi) >= 0 {
		return fmt.Errorf("%w: private exponent out of range", ErrInvalidKeyPair)
	}
	ed := new(big.Int).Mul(kp.e, kp.d)
	if ed.Mod(ed, phi).Cmp(one) != 0 {
		return fmt.Errorf("%w: e*d is not 1 modulo the totient", ErrInvalidKeyPair)
	}
	return nil
}

func totient(p, q *big.Int) *big.Int {
	pm := new(big.Int).Sub(p, one)
	qm := new(big.Int).Sub(q, one)
	return pm.Mul(pm, qm)
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}
