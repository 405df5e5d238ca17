// Package big contains an API-compatible "math/big".Int used as the arithmetic substrate
// of this module. Keeping our own named type lets the rest of the module attach
// number-theoretic helpers without leaking "math/big" into every signature.
package big

import (
	"fmt"
	"io"
	"math/big"
	"math/rand"
)

// Int is an API-compatible "math/big".Int.
type Int big.Int

// RandInt returns a uniform random value in [0, max), drawing bytes from rnd by rejection
// sampling. The result is a pure function of the bytes read, so a deterministic reader yields
// deterministic values. It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	if max.Sign() <= 0 {
		panic("big: argument to RandInt is <= 0")
	}
	bound := new(big.Int).Sub(max.Go(), big.NewInt(1))
	bitLen := bound.BitLen()
	if bitLen == 0 {
		return NewInt(0), nil
	}

	buf := make([]byte, (bitLen+7)/8)
	// Mask off excess bits in the leading byte so that each draw lands below 2^bitLen.
	topBits := uint(bitLen % 8)
	if topBits == 0 {
		topBits = 8
	}

	n := new(big.Int)
	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		buf[0] &= uint8(int(1<<topBits) - 1)
		n.SetBytes(buf)
		if n.Cmp(max.Go()) < 0 {
			return Convert(n), nil
		}
	}
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Convert to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// Odd reports whether i is odd.
func (i *Int) Odd() bool { return i.Bit(0) == 1 }

// "math/big".Int API
// The conversions are free; the compiler inlines them.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune)  { i.Go().Format(s, ch) }
func (i *Int) Bit(j int) uint               { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte                { return i.Go().Bytes() }
func (i *Int) BitLen() int                  { return i.Go().BitLen() }
func (i *Int) TrailingZeroBits() uint       { return i.Go().TrailingZeroBits() }
func (i *Int) Int64() int64                 { return i.Go().Int64() }
func (i *Int) Uint64() uint64               { return i.Go().Uint64() }
func (i *Int) IsInt64() bool                { return i.Go().IsInt64() }
func (i *Int) Sign() int                    { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int               { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool     { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string               { return i.Go().String() }
func (i *Int) Text(base int) string         { return i.Go().Text(base) }
func (i *Int) SetInt64(x int64) *Int        { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int      { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int              { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Neg(x *Int) *Int              { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Add(x, y *Int) *Int           { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int           { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int           { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Quo(x, y *Int) *Int           { return Convert(i.Go().Quo(x.Go(), y.Go())) }
func (i *Int) Rem(x, y *Int) *Int           { return Convert(i.Go().Rem(x.Go(), y.Go())) }
func (i *Int) Div(x, y *Int) *Int           { return Convert(i.Go().Div(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int           { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int     { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int      { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int      { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Or(x, y *Int) *Int            { return Convert(i.Go().Or(x.Go(), y.Go())) }
func (i *Int) Xor(x, y *Int) *Int           { return Convert(i.Go().Xor(x.Go(), y.Go())) }
func (i *Int) Exp(x, y, m *Int) *Int        { return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go())) }
func (i *Int) SetBit(x *Int, j int, b uint) *Int {
	return Convert(i.Go().SetBit(x.Go(), j, b))
}
func (i *Int) GCD(x, y, a, b *Int) *Int {
	// GCD accepts nil for x and y; converting a nil *Int yields a nil *big.Int.
	return Convert(i.Go().GCD(x.Go(), y.Go(), a.Go(), b.Go()))
}
func (i *Int) Rand(rnd *rand.Rand, n *Int) *Int {
	return Convert(i.Go().Rand(rnd, n.Go()))
}
func (i *Int) ModInverse(g, n *Int) *Int {
	return Convert(i.Go().ModInverse(g.Go(), n.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
func (i *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	z, w := i.Go().QuoRem(x.Go(), y.Go(), r.Go())
	return Convert(z), Convert(w)
}
func (i *Int) DivMod(x, y, m *Int) (*Int, *Int) {
	z, w := i.Go().DivMod(x.Go(), y.Go(), m.Go())
	return Convert(z), Convert(w)
}
