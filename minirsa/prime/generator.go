package prime

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/TheusHen/MiniRSA/minirsa/random"
)

// DefaultMaxCandidates bounds a single prime search. Around a 2048-bit start
// point the expected number of odd candidates is in the hundreds.
const DefaultMaxCandidates = 1 << 16

var ErrPrimeSearchExhausted = errors.New("prime: candidate search exhausted")

// Config configures a Generator. Zero values select the defaults.
type Config struct {
	Rounds        int            // Miller-Rabin rounds (default: DefaultRounds)
	MaxCandidates int            // candidates tested before giving up (default: DefaultMaxCandidates)
	Logger        *logrus.Logger // default: logrus.StandardLogger()
}

// Generator samples probable primes from a random.Source.
type Generator struct {
	src    random.Source
	config Config
}

// NewGenerator creates a prime generator. A nil src selects random.Default().
func NewGenerator(src random.Source, config Config) *Generator {
	if src == nil {
		src = random.Default()
	}
	if config.Rounds <= 0 {
		config.Rounds = DefaultRounds
	}
	if config.MaxCandidates <= 0 {
		config.MaxCandidates = DefaultMaxCandidates
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return &Generator{src: src, config: config}
}

// Generate draws a random integer of bits bits, makes it odd and steps by two
// until the combined primality predicate accepts. Stepping may carry the
// result one bit past bits when the start point lies just below 2^bits.
func (g *Generator) Generate(ctx context.Context, bits int) (*big.Int, error) {
	if err := random.CheckBitWidth(bits); err != nil {
		return nil, err
	}
	log := g.config.Logger.WithFields(logrus.Fields{
		"function": "Generate",
		"package":  "prime",
		"bits":     bits,
	})

	n, err := g.src.RandomBits(bits)
	if err != nil {
		return nil, fmt.Errorf("prime: draw start point: %w", err)
	}
	if n.Bit(0) == 0 {
		n.Add(n, one)
	}

	for candidates := 1; candidates <= g.config.MaxCandidates; candidates++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := probablePrime(n, g.config.Rounds, g.src)
		if err != nil {
			return nil, err
		}
		if ok {
			log.WithField("candidates", candidates).Debug("probable prime found")
			return n, nil
		}
		n.Add(n, two)
	}

	log.WithField("candidates", g.config.MaxCandidates).Warn("prime search exhausted")
	return nil, fmt.Errorf("%w: %d candidates at %d bits", ErrPrimeSearchExhausted, g.config.MaxCandidates, bits)
}
