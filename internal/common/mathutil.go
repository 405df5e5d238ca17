// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"github.com/privacybydesign/rsakex/big"
)

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var bigONE = big.NewInt(1)

// ModInverse returns the unique x in [1, m) with a*x = 1 (mod m).
//
// It runs the extended Euclidean algorithm as a loop, carrying only the last two
// remainders and their Bezout coefficients for a. Fails with ErrDomain unless a > 0 and
// m > 1, and with ErrArithmetic when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, DomainError("modInverse: nil operand")
	}
	if a.Sign() <= 0 {
		return nil, DomainError("modInverse: a must be positive")
	}
	if m.Cmp(bigONE) <= 0 {
		return nil, DomainError("modInverse: modulus must exceed 1")
	}

	// Invariant: oldR = oldS*a (mod m) and r = s*a (mod m).
	oldR := new(big.Int).Mod(a, m)
	r := new(big.Int).Set(m)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	quo := new(big.Int)
	rem := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quo.QuoRem(oldR, r, rem)
		oldR, r = r, oldR.Set(rem)

		tmp.Mul(quo, s)
		oldS, s = s, oldS.Sub(oldS, tmp)
	}

	// oldR now holds gcd(a, m)
	if oldR.Cmp(bigONE) != 0 {
		return nil, ArithmeticError("modInverse: operands are not coprime")
	}

	// oldS may be negative; Mod brings it into [0, m), and it cannot be 0 since a*0 != 1.
	return oldS.Mod(oldS, m), nil
}

// ModExp computes x^y mod m for a positive modulus and a non-negative exponent. In contrast
// to Go's Exp it refuses a zero modulus instead of silently returning x^y.
func ModExp(x, y, m *big.Int) (*big.Int, error) {
	if x == nil || y == nil || m == nil {
		return nil, DomainError("modExp: nil operand")
	}
	if m.Sign() <= 0 {
		return nil, DomainError("modExp: modulus must be positive")
	}
	if y.Sign() < 0 {
		return nil, DomainError("modExp: exponent must be non-negative")
	}
	return new(big.Int).Exp(x, y, m), nil
}

// GCD returns the greatest common divisor of a and b, both of which must be positive.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// InRange reports whether 0 <= x < n.
func InRange(x, n *big.Int) bool {
	return x != nil && n != nil && x.Sign() >= 0 && x.Cmp(n) < 0
}
