// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsakex

import (
	"sort"

	"github.com/caarlos0/env/v8"
	"github.com/go-errors/errors"

	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/strongprime"
)

// Parameters controls key generation.
type Parameters struct {
	// PrimeBits is the exact width of each prime; moduli have 2*PrimeBits-1 or 2*PrimeBits bits.
	PrimeBits int `env:"PRIME_BITS" envDefault:"256"`
	// Rounds is the number of Miller-Rabin rounds; each test uses Rounds+1 witnesses.
	Rounds int `env:"ROUNDS" envDefault:"10"`
	// MaxCandidates caps the candidates tested per prime; 0 searches without bound.
	MaxCandidates int `env:"MAX_CANDIDATES" envDefault:"0"`
}

// EnvPrefix prefixes the environment variables read by ParametersFromEnv.
const EnvPrefix = "RSAKEX_"

// DefaultParameters holds per prime size the parameters in use at the moment.
var DefaultParameters = map[int]*Parameters{
	256:  {PrimeBits: 256, Rounds: 10},
	512:  {PrimeBits: 512, Rounds: 20},
	1024: {PrimeBits: 1024, Rounds: 32},
}

// getAvailablePrimeSizes returns the prime sizes of the provided map of parameters.
func getAvailablePrimeSizes(paramsMap map[int]*Parameters) []int {
	sizes := make([]int, 0, len(paramsMap))
	for k := range paramsMap {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)
	return sizes
}

// DefaultPrimeSizes is a slice of integers holding the prime sizes for which default
// parameters are available.
var DefaultPrimeSizes = getAvailablePrimeSizes(DefaultParameters)

// ParametersFromEnv reads Parameters from RSAKEX_PRIME_BITS, RSAKEX_ROUNDS and
// RSAKEX_MAX_CANDIDATES, falling back to the defaults for 256-bit primes.
func ParametersFromEnv() (*Parameters, error) {
	params := &Parameters{}
	if err := env.ParseWithOptions(params, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapPrefix(err, "failed to read parameters from environment", 0)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func (params *Parameters) Validate() error {
	if params == nil {
		return common.DomainError("missing parameters")
	}
	if params.PrimeBits < strongprime.MinBits {
		return common.DomainError("prime size too small")
	}
	if params.Rounds < 0 {
		return common.DomainError("negative number of Miller-Rabin rounds")
	}
	if params.MaxCandidates < 0 {
		return common.DomainError("negative candidate limit")
	}
	return nil
}

func (params *Parameters) primeConfig() strongprime.Config {
	return strongprime.Config{Rounds: params.Rounds, MaxCandidates: params.MaxCandidates}
}
