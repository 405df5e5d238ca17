package strongprime

import (
	"runtime"
	"sync"

	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/random"
)

// GenerateConcurrent concurrently and continuously generates strong primes on all CPU cores,
// until the stop channel receives a struct or is closed. If an error is encountered, generation
// is stopped in all goroutines, and the error is sent on the second return parameter.
//
// src is shared by all goroutines and must be safe for concurrent use.
func GenerateConcurrent(src random.Source, bits int, cfg Config, stop <-chan struct{}) (<-chan *big.Int, <-chan error) {
	count := runtime.GOMAXPROCS(0)
	ints := make(chan *big.Int, count)
	errs := make(chan error, count)

	// stopped is closed on the first stop request or the first error, ending all workers.
	stopped := make(chan struct{})
	var once sync.Once
	shutdown := func() { once.Do(func() { close(stopped) }) }
	go func() {
		select {
		case <-stop:
			shutdown()
		case <-stopped:
		}
	}()

	for i := 0; i < count; i++ {
		go func() {
			for {
				x, err := Generate(src, bits, cfg, stopped)
				if err != nil {
					select {
					case <-stopped:
						// cancellation, not a failure
					default:
						errs <- err
						shutdown()
					}
					return
				}

				select {
				case <-stopped:
					return
				case ints <- x:
				}
			}
		}()
	}

	return ints, errs
}
