// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rangeproof

import (
	"math/big"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto/paillier"
	"github.com/mpc-tss/zkrange/zkpsetup"
)

// BobProof convinces Alice that Bob knows x, y and randomness r with c2 = c1^x * Gamma^y * r^N
// mod N^2 and x in [-q^3, q^3], where c1 is Alice's ciphertext and c2 is the MtA output Bob
// returns to her.
type BobProof struct {
	T     *big.Int              `json:"t"`
	V     *big.Int              `json:"v"`
	W     *big.Int              `json:"w"`
	Z     *big.Int              `json:"z"`
	ZPrim *big.Int              `json:"z_prim"`
	E     *common.HashWithNonce `json:"e"`
	S     *big.Int              `json:"s"`
	S1    *big.Int              `json:"s1"`
	S2    *big.Int              `json:"s2"`
	T1    *big.Int              `json:"t1"`
	T2    *big.Int              `json:"t2"`
}

// GenerateBobProof proves knowledge of (x, y, r) underlying c2 = aEnc^x * Gamma^y * r^N mod N^2,
// where aEnc is Alice's ciphertext, c2 is the MtA output, and y is the beta_prim Bob added
// homomorphically. alicePK is Alice's Paillier public key; verifierSetup is the commitment
// parameters Alice will verify against.
func GenerateBobProof(x, y, r, aEnc, c2 *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) *BobProof {
	nTilde, h1, h2 := verifierSetup.FOParams()
	N, NN, Gen := alicePK.N, alicePK.NSquare(), alicePK.Gamma()
	modNTilde, modNN, modN := common.NewModRing(nTilde), common.NewModRing(NN), common.NewModRing(N)

	q3 := new(big.Int).Exp(q, big.NewInt(3), nil)
	alpha := common.GetRandomPositiveInt(q3)
	beta := common.GetRandomPositiveRelativelyPrimeInt(N)
	gamma := common.GetRandomPositiveRelativelyPrimeInt(N)
	ro := common.GetRandomPositiveInt(new(big.Int).Mul(q, nTilde))
	roPrim := common.GetRandomPositiveInt(new(big.Int).Mul(q3, nTilde))
	sigma := common.GetRandomPositiveInt(new(big.Int).Mul(q, nTilde))
	tau := common.GetRandomPositiveInt(new(big.Int).Mul(q, nTilde))

	z := modNTilde.Mul(modNTilde.Exp(h1, x), modNTilde.Exp(h2, ro))
	zPrim := modNTilde.Mul(modNTilde.Exp(h1, alpha), modNTilde.Exp(h2, roPrim))
	t := modNTilde.Mul(modNTilde.Exp(h1, y), modNTilde.Exp(h2, sigma))
	w := modNTilde.Mul(modNTilde.Exp(h1, gamma), modNTilde.Exp(h2, tau))
	v := modNN.Mul(modNN.Mul(modNN.Exp(aEnc, alpha), modNN.Exp(Gen, gamma)), modNN.Exp(beta, N))

	hwn := common.CreateHashBoundedByQ(q, N, Gen, aEnc, c2, z, zPrim, t, v, w)
	e := hwn.Challenge

	s := modN.Mul(modN.Exp(r, e), beta)
	s1 := new(big.Int).Add(new(big.Int).Mul(e, x), alpha)
	s2 := new(big.Int).Add(new(big.Int).Mul(e, ro), roPrim)
	t1 := new(big.Int).Add(new(big.Int).Mul(e, y), gamma)
	t2 := new(big.Int).Add(new(big.Int).Mul(e, sigma), tau)

	common.Scrub(alpha, beta, gamma, ro, roPrim, sigma, tau)
	return &BobProof{T: t, V: v, W: w, Z: z, ZPrim: zPrim, E: hwn, S: s, S1: s1, S2: s2, T1: t1, T2: t2}
}

// Verify checks the proof against Alice's ciphertext aEnc, the MtA output c2, Alice's Paillier
// public key, and the verifier's own commitment parameters.
func (proof *BobProof) Verify(aEnc, c2 *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	e := common.CreateHashWithNonce(proof.E.Nonce, alicePK.N, alicePK.Gamma(), aEnc, c2, proof.Z, proof.ZPrim, proof.T, proof.V, proof.W)
	return proof.verifyWithChallenge(e, aEnc, c2, alicePK, verifierSetup, q)
}

func (proof *BobProof) verifyWithChallenge(e, aEnc, c2 *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	if e.Cmp(proof.E.Challenge) != 0 {
		common.Logger.Debug("bob proof: hash does not match")
		return false
	}
	q3 := new(big.Int).Exp(q, big.NewInt(3), nil)
	if proof.S1.Cmp(q3) > 0 {
		common.Logger.Debug("bob proof: s1 is larger than q^3")
		return false
	}

	nTilde, h1, h2 := verifierSetup.FOParams()
	modNTilde := common.NewModRing(nTilde)
	lz := modNTilde.Mul(modNTilde.Exp(h1, proof.S1), modNTilde.Exp(h2, proof.S2))
	rz := modNTilde.Mul(modNTilde.Exp(proof.Z, e), proof.ZPrim)
	if lz.Cmp(rz) != 0 {
		common.Logger.Debug("bob proof: z equation does not hold")
		return false
	}

	N, NN, Gen := alicePK.N, alicePK.NSquare(), alicePK.Gamma()
	modNN := common.NewModRing(NN)
	lc1 := modNN.Mul(modNN.Mul(modNN.Exp(aEnc, proof.S1), modNN.Exp(proof.S, N)), modNN.Exp(Gen, proof.T1))
	lc2 := modNN.Mul(modNN.Exp(c2, e), proof.V)
	if lc1.Cmp(lc2) != 0 {
		common.Logger.Debug("bob proof: ciphertext equation does not hold")
		return false
	}

	lw := modNTilde.Mul(modNTilde.Exp(h1, proof.T1), modNTilde.Exp(h2, proof.T2))
	rw := modNTilde.Mul(modNTilde.Exp(proof.T, e), proof.W)
	if lw.Cmp(rw) != 0 {
		common.Logger.Debug("bob proof: t equation does not hold")
		return false
	}
	return true
}
