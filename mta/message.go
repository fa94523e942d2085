// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mta

import (
	"math/big"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto/paillier"
	"github.com/mpc-tss/zkrange/rangeproof"
	"github.com/mpc-tss/zkrange/zkpsetup"
)

// MTAMode selects which proof MessageB attaches alongside its homomorphic output: MtA is the
// plain multiplicative-to-additive conversion, MtAwc additionally binds the result to an
// elliptic-curve point the counterparty will check at the end of the enclosing signing protocol.
// The mode is never transmitted on the wire; a verifier recovers it implicitly from which variant
// of BobProofVariant is populated.
type MTAMode int

const (
	MtA MTAMode = iota
	MtAwc
)

// DLogProofs is the degraded proof MessageB attaches when no counterparty ZkpPublicSetup was
// supplied: a plain discrete-log proof for each of Bob's two secret scalars, with no bound on
// their size. A deployment that always supplies a setup never produces this variant.
type DLogProofs struct {
	BProof       *DLogProof `json:"b_proof"`
	BetaTagProof *DLogProof `json:"beta_tag_proof"`
}

// BobProofVariant is a tagged union: exactly one field is non-nil, selected by whether a
// counterparty setup was supplied and which MTAMode was requested.
type BobProofVariant struct {
	RangeProof    *rangeproof.BobProof    `json:"RangeProof,omitempty"`
	RangeProofExt *rangeproof.BobProofExt `json:"RangeProofExt,omitempty"`
	DLogProofs    *DLogProofs             `json:"DLogProofs,omitempty"`
}

// MessageA is Alice's half of a share-conversion round: her Paillier-encrypted share, with an
// optional range proof bounding it, present whenever she was given the counterparty's published
// setup.
type MessageA struct {
	C          *big.Int               `json:"c"`
	RangeProof *rangeproof.AliceProof `json:"range_proof"`
}

// NewMessageA encrypts a under alicePK and, if bobSetup is non-nil, attaches a range proof
// bounding a to [-q^3, q^3] against bobSetup's commitment parameters.
func NewMessageA(a *big.Int, alicePK *paillier.PublicKey, bobSetup zkpsetup.FOParams, q *big.Int) (*MessageA, error) {
	cipher, r, err := alicePK.EncryptAndReturnRandomness(a)
	if err != nil {
		return nil, err
	}

	var proof *rangeproof.AliceProof
	if bobSetup != nil {
		proof = rangeproof.GenerateAliceProof(a, r, cipher, alicePK, bobSetup, q)
	}

	common.Scrub(r)
	return &MessageA{C: cipher, RangeProof: proof}, nil
}

// Verify checks msgA's range proof, if any, against alicePK and the verifier's own commitment
// parameters. A MessageA built without a counterparty setup carries no proof and always verifies.
func (msgA *MessageA) Verify(alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	if msgA.RangeProof == nil {
		return true
	}
	return msgA.RangeProof.Verify(msgA.C, alicePK, verifierSetup, q)
}

// MessageB is Bob's response to a MessageA: the homomorphically-derived ciphertext
// b*Enc(a) + Enc(beta_prim), together with a proof selected by mode and whether aliceSetup was
// supplied.
type MessageB struct {
	C     *big.Int        `json:"c"`
	Proof BobProofVariant `json:"proof"`
}

// NewMessageB computes Bob's share of the MtA/MtAwc output from his share b and Alice's message,
// attaching the proof variant mode/aliceSetup call for. It returns the MessageB to send back to
// Alice and beta, Bob's additive share of a*b (beta = -beta_prim mod q).
func NewMessageB(b, q *big.Int, alicePK *paillier.PublicKey, aliceSetup zkpsetup.FOParams, msgA *MessageA, mode MTAMode) (*MessageB, *big.Int, error) {
	bTimesEncA, err := alicePK.HomoMult(b, msgA.C)
	if err != nil {
		return nil, nil, err
	}

	betaPrim := common.GetRandomPositiveInt(alicePK.N)
	encBetaPrim, r, err := alicePK.EncryptAndReturnRandomness(betaPrim)
	if err != nil {
		return nil, nil, err
	}
	mtaOut, err := alicePK.HomoAdd(bTimesEncA, encBetaPrim)
	if err != nil {
		return nil, nil, err
	}

	beta := new(big.Int).Neg(betaPrim)
	beta.Mod(beta, q)

	var variant BobProofVariant
	switch {
	case aliceSetup == nil:
		variant.DLogProofs = &DLogProofs{
			BProof:       ProveDLog(b),
			BetaTagProof: ProveDLog(new(big.Int).Mod(betaPrim, q)),
		}
	case mode == MtAwc:
		ext, err := rangeproof.GenerateBobProofExt(b, betaPrim, r, msgA.C, mtaOut, alicePK, aliceSetup, q)
		if err != nil {
			common.Scrub(betaPrim, r)
			return nil, nil, err
		}
		variant.RangeProofExt = ext
	default:
		variant.RangeProof = rangeproof.GenerateBobProof(b, betaPrim, r, msgA.C, mtaOut, alicePK, aliceSetup, q)
	}

	common.Scrub(betaPrim, r)
	return &MessageB{C: mtaOut, Proof: variant}, beta, nil
}

// Verify checks whichever proof variant msgB carries against msgA's ciphertext, the shared
// Paillier public key, and the verifier's own commitment parameters. When msgB carries the
// degraded DLogProofs variant, verifierSetup and q are unused and may be passed as nil/nil.
func (msgB *MessageB) Verify(msgA *MessageA, alicePK *paillier.PublicKey, verifierSetup zkpsetup.FOParams, q *big.Int) bool {
	switch {
	case msgB.Proof.RangeProof != nil:
		return msgB.Proof.RangeProof.Verify(msgA.C, msgB.C, alicePK, verifierSetup, q)
	case msgB.Proof.RangeProofExt != nil:
		return msgB.Proof.RangeProofExt.Verify(msgA.C, msgB.C, alicePK, verifierSetup, q)
	case msgB.Proof.DLogProofs != nil:
		return msgB.Proof.DLogProofs.BProof.Verify() && msgB.Proof.DLogProofs.BetaTagProof.Verify()
	default:
		return false
	}
}
