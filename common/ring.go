// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModRing performs arithmetic modulo a fixed integer: the ciphertext ring Z/N²Z a Paillier
// encryption lives in, the plaintext/blinding ring Z/NZ, or the Fujisaki-Okamoto commitment ring
// Z/N_tildeZ. The range proofs reduce their Paillier and commitment arithmetic through one of
// these three rings, and name the ring by what it holds (modNTilde, modNN, modN) rather than by
// this type.
type ModRing big.Int

// NewModRing returns the ring Z/modZ.
func NewModRing(mod *big.Int) *ModRing {
	return (*ModRing)(mod)
}

// Mul returns x*y reduced into the ring.
func (r *ModRing) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int)
	i.Mul(x, y)
	return i.Mod(i, r.modulus())
}

// Exp returns x^y reduced into the ring.
func (r *ModRing) Exp(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, r.modulus())
}

func (r *ModRing) modulus() *big.Int {
	return (*big.Int)(r)
}
