// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package zkpsetup

import "math/big"

// FOParams exposes the commitment parameters shared by ZkpSetup and ZkpPublicSetup, so range
// proof provers and verifiers can accept either a party's own private setup or a counterparty's
// published one without caring which.
type FOParams interface {
	FOParams() (nTilde, h1, h2 *big.Int)
}

// FOParams implements FOParams for a private setup: a prover/verifier holding its own ZkpSetup
// only ever needs the public commitment parameters out of it, never the trapdoor.
func (setup *ZkpSetup) FOParams() (nTilde, h1, h2 *big.Int) {
	return setup.NTilde, setup.H1, setup.H2
}

// FOParams implements FOParams for a published setup.
func (pub *ZkpPublicSetup) FOParams() (nTilde, h1, h2 *big.Int) {
	return pub.NTilde, pub.H1, pub.H2
}
