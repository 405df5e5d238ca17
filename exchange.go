package rsakex

import (
	"github.com/privacybydesign/rsakex/big"
	"github.com/privacybydesign/rsakex/internal/common"
	"github.com/privacybydesign/rsakex/random"
)

// Message carries a secret from sender to recipient: the secret and the sender's signature
// on it, both encrypted under the recipient's public key.
type Message struct {
	K1 *big.Int // Encrypted secret
	S1 *big.Int // Encrypted signature
}

// SendSecret signs k with the sender's key and encrypts both k and the signature for the
// recipient. The signature lives modulo the sender's modulus, so that modulus may not exceed
// the recipient's; GenerateExchangeKeys produces keys in this order.
func SendSecret(k *big.Int, recipient *PublicKey, sender *Keypair) (*Message, error) {
	if err := sender.check(); err != nil {
		return nil, err
	}
	if err := recipient.check(); err != nil {
		return nil, err
	}
	if sender.N.Cmp(recipient.N) > 0 {
		return nil, common.DomainError("send: sender modulus exceeds recipient modulus")
	}

	s, err := Sign(sender, k)
	if err != nil {
		return nil, err
	}
	k1, err := Encrypt(recipient, k)
	if err != nil {
		return nil, err
	}
	s1, err := Encrypt(recipient, s)
	if err != nil {
		return nil, err
	}
	return &Message{K1: k1, S1: s1}, nil
}

// ReceiveSecret decrypts msg with the recipient's key and checks the signature against the
// sender's public key. It returns the recovered secret and whether the signature was
// accepted; a rejected secret must not be trusted.
func ReceiveSecret(recipient *Keypair, msg *Message, sender *PublicKey) (*big.Int, bool, error) {
	if msg == nil {
		return nil, false, common.DomainError("receive: missing message")
	}
	if err := sender.check(); err != nil {
		return nil, false, err
	}

	k, err := Decrypt(recipient, msg.K1)
	if err != nil {
		return nil, false, err
	}
	s, err := Decrypt(recipient, msg.S1)
	if err != nil {
		return nil, false, err
	}

	accepted := Verify(sender, k, s)
	if accepted {
		Logger.Debug("receive: signature accepted")
	} else {
		Logger.Warn("receive: signature rejected")
	}
	return k, accepted, nil
}

// GenerateExchangeKeys generates the keypairs of a sender and a recipient from an ordered
// prime pair, so that the sender's modulus does not exceed the recipient's.
func GenerateExchangeKeys(src random.Source, params *Parameters, stop <-chan struct{}) (sender, recipient *Keypair, err error) {
	for {
		p, q, p1, q1, err := GenerateOrderedPrimePair(src, params, stop)
		if err != nil {
			return nil, nil, err
		}
		if sender, err = GenerateKeypair(p, q); err != nil {
			Logger.Debug("exchange: sender primes unusable, retrying: ", err)
			continue
		}
		if recipient, err = GenerateKeypair(p1, q1); err != nil {
			Logger.Debug("exchange: recipient primes unusable, retrying: ", err)
			continue
		}
		return sender, recipient, nil
	}
}
