package keys

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/TheusHen/MiniRSA/minirsa/arith"
	"github.com/TheusHen/MiniRSA/minirsa/prime"
	"github.com/TheusHen/MiniRSA/minirsa/random"
)

const (
	DefaultPublicExponent = 65537
	DefaultMaxAttempts    = 5
	// MinBits is the smallest prime width Generate accepts.
	MinBits = 16
)

var (
	ErrInvalidBitWidth     = errors.New("keys: bit width must be a multiple of 4 and at least 16")
	ErrInvalidExponent     = errors.New("keys: public exponent must be greater than 1")
	ErrRetryable           = errors.New("keys: public exponent not coprime to totient")
	ErrKeyGenerationFailed = errors.New("keys: key generation failed")
)

var one = big.NewInt(1)

// Config configures a Generator. Zero values select the defaults.
type Config struct {
	PublicExponent int64          // default: DefaultPublicExponent
	MaxAttempts    int            // full attempts before failing (default: DefaultMaxAttempts)
	Prime          prime.Config   // prime search settings; Logger inherits from Logger
	Logger         *logrus.Logger // default: logrus.StandardLogger()
}

// Generator produces key pairs.
type Generator struct {
	primes *prime.Generator
	e      *big.Int
	config Config
}

// NewGenerator creates a key generator drawing from src. A nil src selects
// random.Default(), which is NOT cryptographically secure.
func NewGenerator(src random.Source, config Config) (*Generator, error) {
	if config.PublicExponent == 0 {
		config.PublicExponent = DefaultPublicExponent
	}
	if config.PublicExponent < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExponent, config.PublicExponent)
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	if config.Prime.Logger == nil {
		config.Prime.Logger = config.Logger
	}
	return &Generator{
		primes: prime.NewGenerator(src, config.Prime),
		e:      big.NewInt(config.PublicExponent),
		config: config,
	}, nil
}

// Generate builds a key pair from two fresh primes of bits bits each, so the
// modulus is roughly 2*bits wide.
func (g *Generator) Generate(ctx context.Context, bits int) (KeyPair, error) {
	if bits < MinBits || bits%4 != 0 {
		return KeyPair{}, fmt.Errorf("%w: %d", ErrInvalidBitWidth, bits)
	}
	log := g.config.Logger.WithFields(logrus.Fields{
		"function": "Generate",
		"package":  "keys",
		"bits":     bits,
	})

	var lastErr error
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return KeyPair{}, err
		}
		kp, err := g.attempt(ctx, bits)
		if err == nil {
			log.WithFields(logrus.Fields{
				"attempt":      attempt,
				"modulus_bits": kp.Bits(),
			}).Debug("key pair generated")
			return kp, nil
		}
		if !errors.Is(err, ErrRetryable) {
			return KeyPair{}, err
		}
		log.WithField("attempt", attempt).WithError(err).Warn("pseudoprimes are composite, trying again")
		lastErr = err
	}
	return KeyPair{}, fmt.Errorf("%w after %d attempts: %w", ErrKeyGenerationFailed, g.config.MaxAttempts, lastErr)
}

func (g *Generator) attempt(ctx context.Context, bits int) (KeyPair, error) {
	p, err := g.primes.Generate(ctx, bits)
	if err != nil {
		return KeyPair{}, err
	}
	q, err := g.primes.Generate(ctx, bits)
	if err != nil {
		return KeyPair{}, err
	}
	if p.Cmp(q) == 0 {
		return KeyPair{}, fmt.Errorf("%w: p equals q", ErrRetryable)
	}

	n := new(big.Int).Mul(p, q)
	phi := totient(p, q)

	gcd, s, _, err := arith.ExtendedGCD(g.e, phi)
	if err != nil {
		g.config.Logger.WithError(err).Error("extended euclid invariant violated")
		return KeyPair{}, err
	}
	if gcd.Cmp(one) != 0 {
		return KeyPair{}, fmt.Errorf("%w: gcd is %s", ErrRetryable, gcd)
	}

	return KeyPair{
		e: new(big.Int).Set(g.e),
		d: s.Mod(s, phi),
		n: n,
		p: p,
		q: q,
	}, nil
}
