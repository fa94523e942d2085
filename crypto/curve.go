// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/elliptic"

	"github.com/btcsuite/btcd/btcec"
)

// the package operates over a single curve; the range proofs and MtA
// messages are defined against the group in which the ECDSA public key
// itself lives, which for this implementation is always secp256k1.
var curve elliptic.Curve = btcec.S256()

// EC returns the elliptic curve group used for all EC-point operations
// in this package (the base point g and its scalar multiples).
func EC() elliptic.Curve {
	return curve
}
