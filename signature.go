package rsakex

import (
	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
)

// Sign returns the signature m^d mod n on m, which must lie in [0, n). This is the same
// operation as decrypting m; the message is not hashed.
func Sign(kp *Keypair, m *big.Int) (*big.Int, error) {
	if err := kp.check(); err != nil {
		return nil, err
	}
	if !common.InRange(m, kp.N) {
		return nil, common.DomainError("sign: message outside [0, n)")
	}
	return common.ModExp(m, kp.D, kp.N)
}

// Verify reports whether s is a signature on m under pk, i.e. whether m = s^e mod n.
// Malformed keys and values outside [0, n) are never valid.
func Verify(pk *PublicKey, m, s *big.Int) bool {
	if pk.check() != nil || !common.InRange(m, pk.N) || !common.InRange(s, pk.N) {
		return false
	}
	return new(big.Int).Exp(s, pk.E, pk.N).Cmp(m) == 0
}
