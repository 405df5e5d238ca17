// Package random supplies the randomness consumed by primality testing and prime generation.
//
// All randomness-consuming operations of this module take a Source explicitly instead of
// reaching for global state. Default draws from crypto/rand; NewSeeded returns a
// reproducible generator for tests.
package random

import (
	"crypto/rand"
	"io"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
)

// Source produces uniformly distributed integers. Implementations handed to concurrent
// generators must be safe for concurrent use.
type Source interface {
	// Bits returns a uniformly random integer with exactly n significant bits,
	// i.e. in [2^(n-1), 2^n).
	Bits(n int) (*big.Int, error)
	// InRange returns a uniformly random integer in [lo, hi], both ends inclusive.
	InRange(lo, hi *big.Int) (*big.Int, error)
}

// Default draws from crypto/rand.Reader and is safe for concurrent use.
var Default Source = NewSource(rand.Reader)

type readerSource struct {
	r io.Reader
}

// NewSource returns a Source drawing bytes from r. The Source is safe for concurrent use
// exactly when r is.
func NewSource(r io.Reader) Source {
	return &readerSource{r: r}
}

// NewSeeded returns a deterministic Source backed by a CPRNG keyed with seed. It is safe for
// concurrent use, although concurrent consumers interleave its output nondeterministically.
func NewSeeded(seed *[32]byte) (Source, error) {
	c, err := NewCPRNG(seed)
	if err != nil {
		return nil, err
	}
	return NewSource(c), nil
}

func (s *readerSource) Bits(n int) (*big.Int, error) {
	if n < 1 {
		return nil, common.DomainError("random: bit length must be positive")
	}
	// Draw the low n-1 bits uniformly and force the top one.
	x, err := big.RandInt(s.r, new(big.Int).Lsh(big.NewInt(1), uint(n-1)))
	if err != nil {
		return nil, errors.WrapPrefix(err, "random: failed to read bits", 0)
	}
	return x.SetBit(x, n-1, 1), nil
}

func (s *readerSource) InRange(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || lo.Cmp(hi) > 0 {
		return nil, common.DomainError("random: empty range")
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	x, err := big.RandInt(s.r, width)
	if err != nil {
		return nil, errors.WrapPrefix(err, "random: failed to read range", 0)
	}
	return x.Add(x, lo), nil
}
