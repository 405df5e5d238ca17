package strongprime

import (
	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
)

var (
	bigONE   = big.NewInt(1)
	bigTWO   = big.NewInt(2)
	bigTHREE = big.NewInt(3)
)

// ProbablyPrime runs the Miller-Rabin test on p with rounds+1 witnesses drawn uniformly
// from [2, p-1] using src. Every witness must attest primality, so a composite p passes
// with probability at most 4^-(rounds+1).
//
// Candidates p <= 3 and even p are reported as not prime; this includes the primes 2 and
// 3, which never occur as candidates of the sizes generated here.
func ProbablyPrime(src random.Source, p *big.Int, rounds int) (bool, error) {
	if rounds < 0 {
		return false, common.DomainError("strongprime: negative number of rounds")
	}
	if p == nil || p.Cmp(bigTHREE) <= 0 || !p.Odd() {
		return false, nil
	}

	// p-1 = d * 2^s with d odd
	pMinusOne := new(big.Int).Sub(p, bigONE)
	s := pMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(pMinusOne, s)

	y := new(big.Int)
	for i := 0; i <= rounds; i++ {
		x, err := src.InRange(bigTWO, pMinusOne)
		if err != nil {
			return false, err
		}
		if common.GCD(p, x).Cmp(bigONE) != 0 {
			return false, nil
		}

		y.Exp(x, d, p)
		if y.Cmp(bigONE) == 0 || y.Cmp(pMinusOne) == 0 {
			continue
		}

		witnessed := true
		for r := uint(1); r < s; r++ {
			y.Mul(y, y).Mod(y, p)
			if y.Cmp(pMinusOne) == 0 {
				witnessed = false
				break
			}
			if y.Cmp(bigONE) == 0 {
				// nontrivial square root of 1
				return false, nil
			}
		}
		if witnessed {
			return false, nil
		}
	}
	return true, nil
}
