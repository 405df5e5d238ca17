package strongprime

import (
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/require"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
)

func seededSource(t testing.TB, b byte) random.Source {
	var seed [32]byte
	seed[0] = b
	src, err := random.NewSeeded(&seed)
	require.NoError(t, err)
	return src
}

func mustInt(t *testing.T, s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return x
}

func TestProbablyPrimeKnownPrimes(t *testing.T) {
	src := seededSource(t, 1)
	for _, s := range []string{
		"5", "7", "65537", "2147483647",
		"170141183460469231731687303715884105727", // 2^127 - 1
		"618970019642690137449562111",             // 2^89 - 1
	} {
		ok, err := ProbablyPrime(src, mustInt(t, s), DefaultRounds)
		require.NoError(t, err)
		require.True(t, ok, s)
	}
}

func TestProbablyPrimeCarmichael(t *testing.T) {
	src := seededSource(t, 2)
	for _, s := range []string{
		"561", "1105", "1729", "2465", "41041", "825265",
		"340282366920938463463374607431768211457", // 2^128 + 1, composite Fermat number
	} {
		ok, err := ProbablyPrime(src, mustInt(t, s), DefaultRounds)
		require.NoError(t, err)
		require.False(t, ok, s)
	}
}

func TestProbablyPrimeSmallValues(t *testing.T) {
	src := seededSource(t, 3)
	// 2 and 3 are rejected along with everything else <= 3.
	for _, v := range []int64{-7, 0, 1, 2, 3, 4, 6, 100} {
		ok, err := ProbablyPrime(src, big.NewInt(v), DefaultRounds)
		require.NoError(t, err)
		require.False(t, ok, "%d", v)
	}
}

func TestProbablyPrimeAgreesWithMathBig(t *testing.T) {
	src := seededSource(t, 4)
	for v := int64(5); v < 5000; v += 2 {
		x := big.NewInt(v)
		ok, err := ProbablyPrime(src, x, DefaultRounds)
		require.NoError(t, err)
		require.Equal(t, x.ProbablyPrime(20), ok, "%d", v)
	}
}

func TestProbablyPrimeProductOfLargePrimes(t *testing.T) {
	src := seededSource(t, 5)
	p := mustInt(t, "170141183460469231731687303715884105727")
	q := mustInt(t, "618970019642690137449562111")
	ok, err := ProbablyPrime(src, new(big.Int).Mul(p, q), DefaultRounds)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProbablyPrimeNegativeRounds(t *testing.T) {
	_, err := ProbablyPrime(random.Default, big.NewInt(7), -1)
	require.True(t, errors.Is(err, common.ErrDomain))
}

func TestProbablyPrimeZeroRoundsStillTests(t *testing.T) {
	src := seededSource(t, 6)
	ok, err := ProbablyPrime(src, big.NewInt(65537), 0)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = ProbablyPrime(src, big.NewInt(65535), 0)
	require.NoError(t, err)
	require.False(t, ok)
}
