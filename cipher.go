package rsakex

import (
	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
)

// Encrypt returns m^e mod n. The message must lie in [0, n).
func Encrypt(pk *PublicKey, m *big.Int) (*big.Int, error) {
	if err := pk.check(); err != nil {
		return nil, err
	}
	if !common.InRange(m, pk.N) {
		return nil, common.DomainError("encrypt: message outside [0, n)")
	}
	return common.ModExp(m, pk.E, pk.N)
}

// Decrypt returns c^d mod n. The ciphertext must lie in [0, n).
func Decrypt(kp *Keypair, c *big.Int) (*big.Int, error) {
	if err := kp.check(); err != nil {
		return nil, err
	}
	if !common.InRange(c, kp.N) {
		return nil, common.DomainError("decrypt: ciphertext outside [0, n)")
	}
	return common.ModExp(c, kp.D, kp.N)
}
