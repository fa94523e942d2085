// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package zkpsetup

import (
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ZkpPublicSetup is the published projection of a ZkpSetup: the commitment parameters plus two
// Schnorr proofs binding them together, so a counterparty can be convinced the setup is
// well-formed without learning its trapdoor. DlogProof proves knowledge of alpha with
// H2 = H1^alpha; InvDlogProof proves knowledge of alpha's inverse mod Order with
// H1 = H2^(alpha^-1). Requiring both rules out a degenerate setup such as H2 = 1, which would
// trivially satisfy a DlogProof alone.
type ZkpPublicSetup struct {
	NTilde       *big.Int    `json:"N_tilda"`
	H1           *big.Int    `json:"h1"`
	H2           *big.Int    `json:"h2"`
	DlogProof    *SetupProof `json:"dlog_proof"`
	InvDlogProof *SetupProof `json:"inv_dlog_proof"`
}

// FromPrivate derives the published setup and its two membership proofs from a private ZkpSetup.
func FromPrivate(setup *ZkpSetup) (*ZkpPublicSetup, error) {
	invAlpha := new(big.Int).ModInverse(setup.alpha, setup.order)
	if invAlpha == nil {
		return nil, ErrInvAlphaNonInvertible
	}

	dlogProof := proveDlog(setup.NTilde, setup.H1, setup.H2, setup.alpha, setup.order)
	invDlogProof := proveDlog(setup.NTilde, setup.H2, setup.H1, invAlpha, setup.order)

	return &ZkpPublicSetup{
		NTilde:       setup.NTilde,
		H1:           setup.H1,
		H2:           setup.H2,
		DlogProof:    dlogProof,
		InvDlogProof: invDlogProof,
	}, nil
}

// Verify checks both membership proofs, reporting every failure rather than stopping at the
// first: a caller rejecting a published setup benefits from knowing whether only one direction is
// broken (a likely implementation bug) or both (more likely a malicious setup). Returned errors
// wrap ErrChallengeMismatch/ErrProofMismatch so callers can dispatch on errors.Is.
func (pub *ZkpPublicSetup) Verify() error {
	var result *multierror.Error
	if err := verifyDlog(pub.NTilde, pub.H1, pub.H2, pub.DlogProof); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "dlog_proof"))
	}
	if err := verifyDlog(pub.NTilde, pub.H2, pub.H1, pub.InvDlogProof); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "inv_dlog_proof"))
	}
	return result.ErrorOrNil()
}
