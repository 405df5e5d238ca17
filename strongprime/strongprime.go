// Package strongprime tests numbers for primality and generates strong primes, i.e. primes
// p = 2*i*x + 1 where x is itself a large prime, so that p-1 has a large prime factor.
package strongprime

import (
	"fmt"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
)

const (
	// CofactorBits is the width difference between a generated prime and its large
	// factor x. It leaves room for about 2^CofactorBits multipliers i per x.
	CofactorBits = 16

	// MinBits is the smallest prime width Generate accepts.
	MinBits = CofactorBits + 8

	// DefaultRounds is the number of Miller-Rabin rounds used when none are configured.
	DefaultRounds = 10
)

// Config tunes the prime search.
type Config struct {
	// Rounds is passed to ProbablyPrime for every candidate.
	Rounds int
	// MaxCandidates caps the number of candidates a single Generate call may test;
	// zero means unbounded.
	MaxCandidates int
}

// DefaultConfig tests with DefaultRounds and searches without a cap.
var DefaultConfig = Config{Rounds: DefaultRounds}

func (cfg Config) validate() error {
	if cfg.Rounds < 0 {
		return common.DomainError("strongprime: negative number of rounds")
	}
	if cfg.MaxCandidates < 0 {
		return common.DomainError("strongprime: negative candidate limit")
	}
	return nil
}

// Generate returns a strong prime of exactly bits bits.
//
// It first draws random odd numbers x of bits-CofactorBits bits (top bit set) until one
// passes ProbablyPrime. It then returns the first 2*i*x + 1 that is probably prime, trying
// i in increasing order from the smallest value for which the result has exactly bits bits.
// If no such i exists a fresh x is drawn.
//
// In order to cancel the search, send a struct{} on stop or close it (passing a context's
// Done channel works). Passing nil is allowed; then the search cannot be cancelled.
func Generate(src random.Source, bits int, cfg Config, stop <-chan struct{}) (*big.Int, error) {
	if bits < MinBits {
		return nil, common.DomainError("strongprime: prime size too small")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	Follower.StepStart("Generating strong prime", 0)
	defer Follower.StepDone()

	s := &search{src: src, cfg: cfg, stop: stop}
	for {
		x, err := s.basePrime(bits - CofactorBits)
		if err != nil {
			return nil, err
		}
		p, err := s.lift(x, bits)
		if err != nil {
			return nil, err
		}
		if p != nil {
			Logger.Debugf("strongprime: found %d-bit prime after %d candidates", bits, s.tested)
			return p, nil
		}
		Logger.Trace("strongprime: multiplier window exhausted, drawing new base prime")
	}
}

// search holds the state of a single Generate call.
type search struct {
	src    random.Source
	cfg    Config
	stop   <-chan struct{}
	tested int
}

// next accounts for one more candidate and reports whether the search may go on.
func (s *search) next() error {
	s.tested++
	Follower.Tick()
	if s.stop != nil {
		select {
		case <-s.stop:
			return errors.WrapPrefix(common.ErrStopped, "strongprime: search cancelled", 0)
		default:
		}
	}
	if s.cfg.MaxCandidates > 0 && s.tested > s.cfg.MaxCandidates {
		return errors.WrapPrefix(common.ErrResourceExhausted,
			fmt.Sprintf("strongprime: no prime among %d candidates", s.cfg.MaxCandidates), 0)
	}
	return nil
}

func (s *search) test(c *big.Int) (bool, error) {
	if common.HasSmallFactor(c) {
		return false, nil
	}
	return ProbablyPrime(s.src, c, s.cfg.Rounds)
}

// basePrime draws random odd numbers of exactly width bits until one is probably prime.
func (s *search) basePrime(width int) (*big.Int, error) {
	for {
		if err := s.next(); err != nil {
			return nil, err
		}
		x, err := s.src.Bits(width)
		if err != nil {
			return nil, err
		}
		x.SetBit(x, 0, 1)

		ok, err := s.test(x)
		if err != nil {
			return nil, err
		}
		if ok {
			return x, nil
		}
	}
}

// lift walks 2*i*x + 1 through [2^(bits-1), 2^bits) in increasing order of i and returns the
// first probable prime, or nil if the window holds none.
func (s *search) lift(x *big.Int, bits int) (*big.Int, error) {
	lower := new(big.Int).Lsh(bigONE, uint(bits-1))
	upper := new(big.Int).Lsh(bigONE, uint(bits))
	twoX := new(big.Int).Lsh(x, 1)

	// smallest i with 2*i*x + 1 >= lower, i.e. i = ceil((lower-1) / 2x)
	i := new(big.Int).Sub(lower, bigONE)
	i.Add(i, twoX).Sub(i, bigONE).Quo(i, twoX)
	if i.Sign() == 0 {
		i.SetInt64(1)
	}

	c := new(big.Int).Mul(i, twoX)
	c.Add(c, bigONE)
	for ; c.Cmp(upper) < 0; c.Add(c, twoX) {
		if err := s.next(); err != nil {
			return nil, err
		}
		ok, err := s.test(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return new(big.Int).Set(c), nil
		}
	}
	return nil, nil
}
