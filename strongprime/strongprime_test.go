package strongprime

import (
	"sync/atomic"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/require"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
)

// largeFactor looks for a prime x of width bits with p = 2*i*x + 1 and i below
// 2^(CofactorBits+1), and returns nil if there is none.
func largeFactor(p *big.Int, width int) *big.Int {
	pMinusOne := new(big.Int).Sub(p, bigONE)
	twoI, x, rem := new(big.Int), new(big.Int), new(big.Int)
	for i := int64(1); i < 1<<(CofactorBits+1); i++ {
		twoI.SetInt64(2 * i)
		x.QuoRem(pMinusOne, twoI, rem)
		if rem.Sign() == 0 && x.BitLen() == width && x.ProbablyPrime(40) {
			return x
		}
	}
	return nil
}

func TestGenerate(t *testing.T) {
	for _, bits := range []int{MinBits, 64, 128, 256} {
		p, err := Generate(random.Default, bits, DefaultConfig, nil)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.Equal(t, bits, p.BitLen())
		require.True(t, p.Odd())
		require.True(t, p.ProbablyPrime(100), "Generated number was not prime")

		require.NotNil(t, largeFactor(p, bits-CofactorBits), "p-1 has no large prime factor")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1, err := Generate(seededSource(t, 7), 128, DefaultConfig, nil)
	require.NoError(t, err)
	p2, err := Generate(seededSource(t, 7), 128, DefaultConfig, nil)
	require.NoError(t, err)
	require.Zero(t, p1.Cmp(p2))

	p3, err := Generate(seededSource(t, 8), 128, DefaultConfig, nil)
	require.NoError(t, err)
	require.NotZero(t, p1.Cmp(p3))
}

func TestGenerateTooSmall(t *testing.T) {
	_, err := Generate(random.Default, MinBits-1, DefaultConfig, nil)
	require.True(t, errors.Is(err, common.ErrDomain))
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate(random.Default, 64, Config{Rounds: -1}, nil)
	require.True(t, errors.Is(err, common.ErrDomain))
	_, err = Generate(random.Default, 64, Config{Rounds: 1, MaxCandidates: -1}, nil)
	require.True(t, errors.Is(err, common.ErrDomain))
}

func TestGenerateCandidateLimit(t *testing.T) {
	// A single candidate can at best yield the base prime, never the strong prime.
	_, err := Generate(random.Default, 256, Config{Rounds: DefaultRounds, MaxCandidates: 1}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrResourceExhausted))
}

func TestGenerateStopped(t *testing.T) {
	stop := make(chan struct{})
	close(stop)
	_, err := Generate(random.Default, 512, DefaultConfig, stop)
	require.True(t, errors.Is(err, common.ErrStopped))
}

func TestGenerateReportsProgress(t *testing.T) {
	follower := Follower.(*TestFollower)
	follower.reset()

	_, err := Generate(seededSource(t, 9), 128, DefaultConfig, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), atomic.LoadInt64(&follower.steps))
	require.GreaterOrEqual(t, atomic.LoadInt64(&follower.count), int64(2))
}

func TestGenerateConcurrent(t *testing.T) {
	stop := make(chan struct{})
	ints, errs := GenerateConcurrent(random.Default, 128, DefaultConfig, stop)

	seen := map[string]bool{}
	for len(seen) < 3 {
		select {
		case p := <-ints:
			require.Equal(t, 128, p.BitLen())
			require.True(t, p.ProbablyPrime(40))
			seen[p.String()] = true
		case err := <-errs:
			t.Fatal(err)
		}
	}
	close(stop)
}

func TestGenerateConcurrentPropagatesErrors(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	_, errs := GenerateConcurrent(random.Default, 256, Config{Rounds: 1, MaxCandidates: 1}, stop)

	err := <-errs
	require.True(t, errors.Is(err, common.ErrResourceExhausted))
}
