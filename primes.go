package rsakex

import (
	"context"

	"github.com/go-errors/errors"
	"golang.org/x/sync/errgroup"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
	"github.com/privacybydesign/rsakex/strongprime"
)

// GeneratePrimePair generates two distinct strong primes of params.PrimeBits bits.
// See strongprime.Generate for the meaning of stop.
func GeneratePrimePair(src random.Source, params *Parameters, stop <-chan struct{}) (p, q *big.Int, err error) {
	if err = params.Validate(); err != nil {
		return nil, nil, err
	}
	if p, err = strongprime.Generate(src, params.PrimeBits, params.primeConfig(), stop); err != nil {
		return nil, nil, err
	}
	for q == nil || q.Cmp(p) == 0 {
		if q, err = strongprime.Generate(src, params.PrimeBits, params.primeConfig(), stop); err != nil {
			return nil, nil, err
		}
	}
	return p, q, nil
}

// GenerateOrderedPrimePair generates two prime pairs (p, q) and (p1, q1) concurrently and
// orders them as pairs, so that p*q <= p1*q1.
func GenerateOrderedPrimePair(src random.Source, params *Parameters, stop <-chan struct{}) (p, q, p1, q1 *big.Int, err error) {
	if err = params.Validate(); err != nil {
		return
	}

	// quit ends the workers both when the caller stops us and when we return.
	quit := make(chan struct{})
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-stop:
		case <-finished:
		}
		close(quit)
	}()

	ints, errs := strongprime.GenerateConcurrent(src, params.PrimeBits, params.primeConfig(), quit)
	primes := make([]*big.Int, 0, 4)
	for len(primes) < 4 {
		select {
		case x := <-ints:
			if !containsInt(primes, x) {
				primes = append(primes, x)
			}
		case err = <-errs:
			return
		case <-stop:
			err = errors.WrapPrefix(common.ErrStopped, "prime pair generation cancelled", 0)
			return
		}
	}

	p, q, p1, q1 = primes[0], primes[1], primes[2], primes[3]
	if new(big.Int).Mul(p, q).Cmp(new(big.Int).Mul(p1, q1)) > 0 {
		p, p1 = p1, p
		q, q1 = q1, q
	}
	return
}

func containsInt(xs []*big.Int, y *big.Int) bool {
	for _, x := range xs {
		if x.Cmp(y) == 0 {
			return true
		}
	}
	return false
}

// GenerateKey derives a keypair from a fresh pair of strong primes.
func GenerateKey(src random.Source, params *Parameters, stop <-chan struct{}) (*Keypair, error) {
	for {
		p, q, err := GeneratePrimePair(src, params, stop)
		if err != nil {
			return nil, err
		}
		kp, err := GenerateKeypair(p, q)
		if errors.Is(err, common.ErrDomain) {
			// e divides p-1 or q-1; vanishingly rare for strong primes, so simply retry
			Logger.Debug("keypair: public exponent not coprime to totient, retrying")
			continue
		}
		return kp, err
	}
}

// GenerateKeys generates count independent keypairs in parallel. Cancelling ctx, or a failure
// of any of the generations, stops all of them.
func GenerateKeys(ctx context.Context, src random.Source, params *Parameters, count int) ([]*Keypair, error) {
	if count < 0 {
		return nil, common.DomainError("negative number of keys")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	keys := make([]*Keypair, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := range keys {
		i := i
		g.Go(func() error {
			kp, err := GenerateKey(src, params, gctx.Done())
			if err != nil {
				return err
			}
			keys[i] = kp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}
