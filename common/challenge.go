// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto"
	_ "crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"
)

const transcriptDelimiter = byte('$')

// digestBitLen is the output size of the truncated hash every challenge is drawn from.
const digestBitLen = 256

// transcriptHash folds a Fiat-Shamir transcript (a Schnorr commitment, a set of FO-commitment
// values, a Paillier ciphertext, ...) into a single SHA-512/256 challenge. Each element is
// followed by a delimiter and its own length before hashing so that no concatenation of two adjacent transcript
// values can be reinterpreted as a different split of the same bytes, and the element count is
// folded in first so the digest depends on the transcript's shape, not just its bytes.
func transcriptHash(in ...*big.Int) *big.Int {
	n := len(in)
	if n == 0 {
		return nil
	}
	state := crypto.SHA512_256.New()

	countPrefix := make([]byte, 8)
	binary.LittleEndian.PutUint64(countPrefix, uint64(n))

	elems := make([][]byte, n)
	size := 0
	for i, x := range in {
		elems[i] = x.Bytes()
		size += len(elems[i])
	}

	buf := make([]byte, 0, len(countPrefix)+size+n*9)
	buf = append(buf, countPrefix...)
	for _, e := range elems {
		buf = append(buf, e...)
		buf = append(buf, transcriptDelimiter)
		lenBz := make([]byte, 8)
		binary.LittleEndian.PutUint64(lenBz, uint64(len(e)))
		buf = append(buf, lenBz...)
	}

	if _, err := state.Write(buf); err != nil {
		Logger.Errorf("transcriptHash: Write failed: %v", err)
		return nil
	}
	return new(big.Int).SetBytes(state.Sum(nil))
}

// HashWithNonce pairs a Fiat-Shamir challenge with the nonce that produced it. The nonce travels
// alongside the proof so a verifier can recompute the same challenge deterministically without
// having to resample: it feeds the same inputs and the transmitted nonce back into the hash.
type HashWithNonce struct {
	Challenge *big.Int `json:"challenge"`
	Nonce     *big.Int `json:"nonce"`
}

// CanDeriveChallengeFor reports whether q is a usable bound for CreateHashBoundedByQ: the
// rejection loop only terminates quickly when q fills the hash's full output width, which holds
// for the scalar field order of any 256-bit curve.
func CanDeriveChallengeFor(q *big.Int) bool {
	return q != nil && q.BitLen() == digestBitLen
}

// CreateHashBoundedByQ samples the smallest prefix of nonces 0, 1, 2, ... such that
// transcriptHash(xs..., nonce) falls in [0, q), and returns that challenge together with the
// winning nonce. Because q is required to be as wide as the hash output, this terminates after
// one or two attempts with overwhelming probability; it never wraps the hash with an explicit
// Mod, which would bias the distribution of the least significant output bits.
func CreateHashBoundedByQ(q *big.Int, xs ...*big.Int) *HashWithNonce {
	if !CanDeriveChallengeFor(q) {
		panic(fmt.Errorf("CreateHashBoundedByQ: the bound must be %d bits wide, got %d", digestBitLen, q.BitLen()))
	}
	nonce := new(big.Int)
	inputs := make([]*big.Int, len(xs)+1)
	copy(inputs, xs)
	for {
		inputs[len(xs)] = nonce
		e := transcriptHash(inputs...)
		if e.Cmp(q) < 0 {
			return &HashWithNonce{Challenge: e, Nonce: new(big.Int).Set(nonce)}
		}
		nonce = new(big.Int).Add(nonce, one)
	}
}

// CreateHashWithNonce recomputes transcriptHash(xs..., nonce) for a nonce supplied by the prover.
// A verifier uses this to recheck a HashWithNonce's Challenge field without resampling: the
// proof is only accepted if the recomputed value matches the transmitted Challenge exactly.
func CreateHashWithNonce(nonce *big.Int, xs ...*big.Int) *big.Int {
	inputs := make([]*big.Int, len(xs)+1)
	copy(inputs, xs)
	inputs[len(xs)] = nonce
	return transcriptHash(inputs...)
}

// CreateHash computes a full-range (not rejection-sampled) Fiat-Shamir challenge, used where the
// verification equation works modulo the group order anyway and a biased top bit or two carries
// no soundness cost (the FO setup's Schnorr discrete-log proof, the MtA fallback's EC Schnorr
// proof).
func CreateHash(xs ...*big.Int) *big.Int {
	return transcriptHash(xs...)
}
