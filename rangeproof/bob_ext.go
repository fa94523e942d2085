// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rangeproof

import (
	"errors"
	"math/big"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto"
	"github.com/mpc-tss/zkrange/crypto/paillier"
	"github.com/mpc-tss/zkrange/zkpsetup"
)

// BobProofExt wraps a BobProof with an additional binding to an elliptic-curve point X = g^x,
// used by the MtAwc variant where Alice must also be convinced Bob's share matches a point she
// will later check against. U = g^alpha is the commitment to the same alpha used inside the
// wrapped BobProof, so the single challenge e ties both the Paillier-side and curve-side claims
// to the same witness.
type BobProofExt struct {
	Proof *BobProof       `json:"proof"`
	U     *crypto.ECPoint `json:"u"`
	X     *crypto.ECPoint `json:"X"`
}

// GenerateBobProofExt behaves like GenerateBobProof but additionally proves that X = g^x for the
// same x used in the wrapped proof.
func GenerateBobProofExt(x, y, r, aEnc, c2 *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) (*BobProofExt, error) {
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

	ec := crypto.EC()
	X := crypto.ScalarBaseMult(ec, x)
	U := crypto.ScalarBaseMult(ec, alpha)
	if X == nil || U == nil {
		common.Scrub(alpha, beta, gamma, ro, roPrim, sigma, tau)
		return nil, errors.New("rangeproof: witness maps to the point at infinity")
	}

	z := modNTilde.Mul(modNTilde.Exp(h1, x), modNTilde.Exp(h2, ro))
	zPrim := modNTilde.Mul(modNTilde.Exp(h1, alpha), modNTilde.Exp(h2, roPrim))
	t := modNTilde.Mul(modNTilde.Exp(h1, y), modNTilde.Exp(h2, sigma))
	w := modNTilde.Mul(modNTilde.Exp(h1, gamma), modNTilde.Exp(h2, tau))
	v := modNN.Mul(modNN.Mul(modNN.Exp(aEnc, alpha), modNN.Exp(Gen, gamma)), modNN.Exp(beta, N))

	hwn := common.CreateHashBoundedByQ(q, N, Gen, X.X(), X.Y(), aEnc, c2, U.X(), U.Y(), z, zPrim, t, v, w)
	e := hwn.Challenge

	s := modN.Mul(modN.Exp(r, e), beta)
	s1 := new(big.Int).Add(new(big.Int).Mul(e, x), alpha)
	s2 := new(big.Int).Add(new(big.Int).Mul(e, ro), roPrim)
	t1 := new(big.Int).Add(new(big.Int).Mul(e, y), gamma)
	t2 := new(big.Int).Add(new(big.Int).Mul(e, sigma), tau)

	common.Scrub(alpha, beta, gamma, ro, roPrim, sigma, tau)
	return &BobProofExt{
		Proof: &BobProof{T: t, V: v, W: w, Z: z, ZPrim: zPrim, E: hwn, S: s, S1: s1, S2: s2, T1: t1, T2: t2},
		U:     U,
		X:     X,
	}, nil
}

// Verify checks the wrapped BobProof and then the additional curve-side equation
// g^s1 == X^e + U.
func (proof *BobProofExt) Verify(aEnc, c2 *big.Int, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	if !proof.U.ValidateBasic() || !proof.X.ValidateBasic() {
		common.Logger.Debug("bob proof ext: U or X is not a valid curve point")
		return false
	}
	e := common.CreateHashWithNonce(proof.Proof.E.Nonce,
		alicePK.N, alicePK.Gamma(), proof.X.X(), proof.X.Y(), aEnc, c2, proof.U.X(), proof.U.Y(),
		proof.Proof.Z, proof.Proof.ZPrim, proof.Proof.T, proof.Proof.V, proof.Proof.W)

	if !proof.Proof.verifyWithChallenge(e, aEnc, c2, alicePK, verifierSetup, q) {
		return false
	}

	lhs := crypto.ScalarBaseMult(crypto.EC(), proof.Proof.S1)
	rhs, err := proof.X.ScalarMult(e).Add(proof.U)
	if err != nil {
		common.Logger.Debug("bob proof ext: X^e + U is not a curve point")
		return false
	}
	if !lhs.Equals(rhs) {
		common.Logger.Debug("bob proof ext: curve binding does not hold")
		return false
	}
	return true
}
