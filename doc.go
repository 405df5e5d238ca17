// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rsakex implements textbook RSA on arbitrary-precision integers: key derivation from
// strong primes, encryption, signing, and a two-party exchange in which a sender transmits a
// secret integer to a recipient together with an encrypted signature proving its origin.
//
// There is no padding and no hashing: messages are integers in [0, n) and signatures are raw
// modular exponentiations. In particular signatures are multiplicative,
// Sign(a)*Sign(b) = Sign(a*b) (mod n), so anyone holding two signatures can forge a third.
// The package is meant for studying the arithmetic, not for protecting data.
//
// For now, see rsakex_test.go on how to use the library.
package rsakex
