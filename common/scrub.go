// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import "math/big"

// Scrub overwrites the Word backing array of each big.Int with zeros in place, then truncates
// it to length zero. big.Int has no destructor, so this is the closest Go gets to wiping a
// secret eagerly rather than waiting on the garbage collector; callers are expected to call it
// via defer immediately after allocating ephemeral secret values (Paillier/FO randomness,
// discrete-log witnesses) once they are no longer needed.
//
// Bits/SetBits are documented stdlib API: Bits returns the absolute value's Word slice, shared
// with the big.Int's internal storage, and SetBits reuses that same storage to avoid an
// allocation. Zeroing through Bits and handing the zeroed slice back via SetBits clears the
// underlying memory rather than just dropping the big.Int's reference to it.
func Scrub(values ...*big.Int) {
	for _, v := range values {
		if v == nil {
			continue
		}
		words := v.Bits()
		for i := range words {
			words[i] = 0
		}
		v.SetBits(words[:0])
	}
}
