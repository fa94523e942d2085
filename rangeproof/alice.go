// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package rangeproof implements the zero-knowledge range proofs exchanged during the two-party
// MtA and MtAwc share-conversion sub-protocols: Alice proves her Paillier-encrypted share is
// small, and Bob proves the same about his share together with the ciphertext he returns.
package rangeproof

import (
	"math/big"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto/paillier"
	"github.com/mpc-tss/zkrange/zkpsetup"
)

// AliceProof convinces a verifier holding a ZkpSetup (or its published projection) that a
// Paillier ciphertext opens to a value in [-q^3, q^3], without revealing the value.
type AliceProof struct {
	Z  *big.Int              `json:"z"`
	U  *big.Int              `json:"u"`
	W  *big.Int              `json:"w"`
	E  *common.HashWithNonce `json:"e"`
	S  *big.Int              `json:"s"`
	S1 *big.Int              `json:"s1"`
	S2 *big.Int              `json:"s2"`
}

// GenerateAliceProof proves that cipher = Enc(a; r) under alicePK opens to a value in
// [-q^3, q^3], against the commitment parameters in verifierSetup.
func GenerateAliceProof(a, r, cipher *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) *AliceProof {
	nTilde, h1, h2 := verifierSetup.FOParams()
	N, NN, Gen := alicePK.N, alicePK.NSquare(), alicePK.Gamma()
	modNTilde, modNN, modN := common.NewModRing(nTilde), common.NewModRing(NN), common.NewModRing(N)

	q3 := new(big.Int).Exp(q, big.NewInt(3), nil)
	alpha := common.GetRandomPositiveInt(q3)
	beta := common.GetRandomPositiveRelativelyPrimeInt(N)
	gamma := common.GetRandomPositiveInt(new(big.Int).Mul(q3, nTilde))
	ro := common.GetRandomPositiveInt(new(big.Int).Mul(q, nTilde))

	z := modNTilde.Mul(modNTilde.Exp(h1, a), modNTilde.Exp(h2, ro))
	u := modNN.Mul(modNN.Exp(Gen, alpha), modNN.Exp(beta, N))
	w := modNTilde.Mul(modNTilde.Exp(h1, alpha), modNTilde.Exp(h2, gamma))

	hwn := common.CreateHashBoundedByQ(q, N, Gen, cipher, z, u, w)
	e := hwn.Challenge

	s := modN.Mul(modN.Exp(r, e), beta)
	s1 := new(big.Int).Add(new(big.Int).Mul(e, a), alpha)
	s2 := new(big.Int).Add(new(big.Int).Mul(e, ro), gamma)

	common.Scrub(alpha, beta, gamma, ro)
	return &AliceProof{Z: z, U: u, W: w, E: hwn, S: s, S1: s1, S2: s2}
}

// Verify checks the proof against cipher, the Paillier public key it was encrypted under, and the
// verifier's own commitment parameters.
func (proof *AliceProof) Verify(cipher *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	nTilde, h1, h2 := verifierSetup.FOParams()
	N, NN, Gen := alicePK.N, alicePK.NSquare(), alicePK.Gamma()

	e := common.CreateHashWithNonce(proof.E.Nonce, N, Gen, cipher, proof.Z, proof.U, proof.W)
	if e.Cmp(proof.E.Challenge) != 0 {
		common.Logger.Debug("alice proof: hash does not match")
		return false
	}

	q3 := new(big.Int).Exp(q, big.NewInt(3), nil)
	if proof.S1.Cmp(q3) > 0 {
		common.Logger.Debug("alice proof: s1 is larger than q^3")
		return false
	}

	modNTilde := common.NewModRing(nTilde)
	zE := modNTilde.Exp(proof.Z, e)
	zEInv := new(big.Int).ModInverse(zE, nTilde)
	if zEInv == nil {
		common.Logger.Debug("alice proof: no multiplicative inverse for z^e")
		return false
	}
	wPrim := modNTilde.Mul(modNTilde.Mul(modNTilde.Exp(h1, proof.S1), modNTilde.Exp(h2, proof.S2)), zEInv)
	if wPrim.Cmp(proof.W) != 0 {
		common.Logger.Debug("alice proof: w does not hold the right value")
		return false
	}

	modNN := common.NewModRing(NN)
	cE := modNN.Exp(cipher, e)
	cEInv := new(big.Int).ModInverse(cE, NN)
	if cEInv == nil {
		common.Logger.Debug("alice proof: no multiplicative inverse for c^e")
		return false
	}
	uPrim := modNN.Mul(modNN.Mul(modNN.Exp(Gen, proof.S1), modNN.Exp(proof.S, N)), cEInv)
	if uPrim.Cmp(proof.U) != 0 {
		common.Logger.Debug("alice proof: u does not hold the right value")
		return false
	}
	return true
}
