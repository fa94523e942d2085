// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mta

import (
	"errors"
	"math/big"

	"github.com/mpc-tss/zkrange/crypto"
	"github.com/mpc-tss/zkrange/crypto/paillier"
)

// KeyAnnouncement introduces a party's Paillier public key ahead of its first share-conversion
// round. The modulus travels with a correctness proof bound to the announcing party's ECDSA
// public share, so the counterparty never encrypts against a modulus with small factors and the
// proof cannot be replayed against a different party's key.
type KeyAnnouncement struct {
	N     *big.Int                     `json:"n"`
	Proof paillier.KeyCorrectnessProof `json:"proof"`
}

// AnnounceKey builds the announcement for sk's public half. k is the announcing party's session
// randomness and ecdsaPub its ECDSA public share; the counterparty must be given the same pair
// to verify against.
func AnnounceKey(sk *paillier.PrivateKey, k *big.Int, ecdsaPub *crypto.ECPoint) *KeyAnnouncement {
	return &KeyAnnouncement{N: sk.N, Proof: sk.Proof(k, ecdsaPub)}
}

// Verify checks the announced modulus against its correctness proof and returns the public key
// to run the MtA rounds against. A key whose proof does not verify yields an error and no key;
// callers must not fall back to using the raw modulus.
func (ann *KeyAnnouncement) Verify(k *big.Int, ecdsaPub *crypto.ECPoint) (*paillier.PublicKey, error) {
	ok, err := ann.Proof.Verify(ann.N, k, ecdsaPub)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("mta: paillier key correctness proof failed to verify")
	}
	return &paillier.PublicKey{N: ann.N}, nil
}
