// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsakex

import (
	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
)

// PublicExponent is the fixed public exponent e = 2^16 + 1.
const PublicExponent = 1<<16 + 1

var (
	bigONE   = big.NewInt(1)
	bigTHREE = big.NewInt(3)
	bigE     = big.NewInt(PublicExponent)
)

type (
	// PublicKey is the shareable half of a Keypair.
	PublicKey struct {
		N *big.Int // Modulus n = p*q
		E *big.Int // Public exponent e
	}

	// Keypair is an RSA key. D must never leave its owner; hand out Public() instead.
	// A Keypair is not modified after construction.
	Keypair struct {
		PublicKey
		D *big.Int // Private exponent d, the inverse of e modulo (p-1)(q-1)
	}
)

// GenerateKeypair derives the keypair with modulus p*q and public exponent PublicExponent.
// p and q must be distinct odd primes greater than 3, and e must be coprime to (p-1)(q-1);
// primality itself is not checked here.
func GenerateKeypair(p, q *big.Int) (*Keypair, error) {
	for _, x := range []*big.Int{p, q} {
		if x == nil || x.Cmp(bigTHREE) <= 0 || !x.Odd() {
			return nil, common.DomainError("keypair: primes must be odd and greater than 3")
		}
	}
	if p.Cmp(q) == 0 {
		return nil, common.DomainError("keypair: primes must be distinct")
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, bigONE), new(big.Int).Sub(q, bigONE))
	e := new(big.Int).Set(bigE)

	if e.Cmp(phi) >= 0 {
		return nil, common.DomainError("keypair: totient does not exceed the public exponent")
	}
	if common.GCD(e, phi).Cmp(bigONE) != 0 {
		return nil, common.DomainError("keypair: public exponent not coprime to totient")
	}

	d, err := common.ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	Logger.Debugf("keypair: derived %d-bit modulus", n.BitLen())
	return &Keypair{PublicKey: PublicKey{N: n, E: e}, D: d}, nil
}

// Public returns the public key of kp.
func (kp *Keypair) Public() *PublicKey {
	return &PublicKey{N: kp.N, E: kp.E}
}

// check verifies the shape of the public key: modulus > 3, 1 < e < n.
func (pk *PublicKey) check() error {
	if pk == nil || pk.N == nil || pk.E == nil {
		return common.DomainError("incomplete public key")
	}
	if pk.N.Cmp(bigTHREE) <= 0 {
		return common.DomainError("modulus too small")
	}
	if pk.E.Cmp(bigONE) <= 0 || pk.E.Cmp(pk.N) >= 0 {
		return common.DomainError("public exponent outside (1, n)")
	}
	return nil
}

func (kp *Keypair) check() error {
	if kp == nil {
		return common.DomainError("missing keypair")
	}
	if err := kp.PublicKey.check(); err != nil {
		return err
	}
	if kp.D == nil || kp.D.Cmp(bigONE) <= 0 || kp.D.Cmp(kp.N) >= 0 {
		return common.DomainError("private exponent outside (1, n)")
	}
	return nil
}

// Validate checks the shape of the key and that exponentiation by e and d are mutually
// inverse on a few fixed elements.
func (kp *Keypair) Validate() error {
	if err := kp.check(); err != nil {
		return err
	}
	for _, m := range []int64{2, 3, 5} {
		x := big.NewInt(m)
		if x.Cmp(kp.N) >= 0 {
			break
		}
		y := new(big.Int).Exp(x, kp.E, kp.N)
		y.Exp(y, kp.D, kp.N)
		if y.Cmp(x) != 0 {
			return common.ArithmeticError("keypair: private exponent does not invert public exponent")
		}
	}
	return nil
}
