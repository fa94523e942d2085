// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package zkpsetup

import (
	"errors"
	"math/big"

	"github.com/mpc-tss/zkrange/common"
)

// Verification failures of a published setup, distinguishable so a counterparty can tell a
// transcript that was tampered in flight (challenge mismatch) from one whose responses do not
// satisfy the proof equation.
var (
	ErrChallengeMismatch     = errors.New("zkpsetup: challenge does not match the transcript")
	ErrProofMismatch         = errors.New("zkpsetup: proof equation does not hold")
	ErrIncompleteProof       = errors.New("zkpsetup: proof is missing one or more fields")
	ErrInvAlphaNonInvertible = errors.New("zkpsetup: alpha has no inverse mod order, setup is degenerate")
)

// SetupProof is a non-interactive Schnorr proof of knowledge of a discrete log base one generator
// of the quadratic-residue subgroup mod N_tilde, expressed in terms of the other. The same shape
// proves both "I know alpha such that h2 = h1^alpha" and "I know alpha^-1 such that
// h1 = h2^(alpha^-1)"; proveDlog/verifyDlog take base and val as parameters so both directions
// share one implementation.
type SetupProof struct {
	V         *big.Int `json:"V"`
	Challenge *big.Int `json:"challenge"`
	R         *big.Int `json:"r"`
}

// proveDlog proves knowledge of witness such that val = base^witness mod nTilde, with the
// underlying group having the given order. It samples v uniformly in [1, nTilde-1), commits to
// V = base^v mod nTilde, derives challenge = H(nTilde, V, base, val) over the full hash range
// (soundness here does not require a sub-order-sized challenge, only that it is unpredictable to
// the prover before V is fixed), and computes r = v - witness*challenge mod order. v is scrubbed
// before returning.
func proveDlog(nTilde, base, val, witness, order *big.Int) *SetupProof {
	v := common.GetRandomPositiveInt(new(big.Int).Sub(nTilde, big.NewInt(2)))
	v.Add(v, big.NewInt(1))

	V := common.NewModRing(nTilde).Exp(base, v)
	challenge := common.CreateHash(nTilde, V, base, val)

	r := new(big.Int).Mul(witness, challenge)
	r.Sub(v, r)
	r.Mod(r, order)

	common.Scrub(v)
	return &SetupProof{V: V, Challenge: challenge, R: r}
}

// verifyDlog checks a SetupProof produced by proveDlog for the claim val = base^witness mod
// nTilde: it recomputes the challenge from the transmitted V and checks
// base^R * val^Challenge == V (mod nTilde).
func verifyDlog(nTilde, base, val *big.Int, proof *SetupProof) error {
	if proof == nil || proof.V == nil || proof.Challenge == nil || proof.R == nil {
		return ErrIncompleteProof
	}
	challenge := common.CreateHash(nTilde, proof.V, base, val)
	if challenge.Cmp(proof.Challenge) != 0 {
		return ErrChallengeMismatch
	}
	modNTilde := common.NewModRing(nTilde)
	lhs := modNTilde.Mul(modNTilde.Exp(base, proof.R), modNTilde.Exp(val, proof.Challenge))
	if lhs.Cmp(proof.V) != 0 {
		return ErrProofMismatch
	}
	return nil
}
