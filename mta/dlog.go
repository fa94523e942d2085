// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package mta builds the MessageA/MessageB envelopes exchanged in a two-party share conversion:
// MessageA carries Alice's encrypted share, optionally with a range proof; MessageB carries Bob's
// homomorphically-derived response, with a proof variant chosen by whether a range-proof setup
// was supplied.
package mta

import (
	"math/big"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto"
)

// DLogProof is a plain Schnorr proof of knowledge of the discrete log of PK base the curve
// generator. It is the degraded fallback MessageB attaches in place of a range proof when no
// counterparty ZkpPublicSetup is available: it proves the prover knows the share it committed to,
// without bounding its size.
type DLogProof struct {
	PK         *crypto.ECPoint `json:"pk"`
	Commitment *crypto.ECPoint `json:"pk_t_rand_commitment"`
	Response   *big.Int        `json:"challenge_response"`
}

// ProveDLog proves knowledge of x, the discrete log of PK = g^x, against the curve's own order.
func ProveDLog(x *big.Int) *DLogProof {
	ec := crypto.EC()
	q := ec.Params().N

	pk := crypto.ScalarBaseMult(ec, x)

	k := common.GetRandomPositiveInt(q)
	R := crypto.ScalarBaseMult(ec, k)

	e := common.CreateHash(pk.X(), pk.Y(), R.X(), R.Y())
	e.Mod(e, q)

	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, q)

	common.Scrub(k)
	return &DLogProof{PK: pk, Commitment: R, Response: s}
}

// Verify checks that Response = Commitment's discrete log plus challenge*x, i.e. that
// g^Response == Commitment + PK^challenge.
func (proof *DLogProof) Verify() bool {
	if !proof.PK.ValidateBasic() || !proof.Commitment.ValidateBasic() {
		return false
	}

	ec := crypto.EC()
	q := ec.Params().N

	e := common.CreateHash(proof.PK.X(), proof.PK.Y(), proof.Commitment.X(), proof.Commitment.Y())
	e.Mod(e, q)

	lhs := crypto.ScalarBaseMult(ec, proof.Response)
	rhs, err := proof.Commitment.Add(proof.PK.ScalarMult(e))
	if err != nil {
		return false
	}
	return lhs.Equals(rhs)
}
