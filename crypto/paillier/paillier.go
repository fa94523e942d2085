// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Alice and Bob each hold their own Paillier keypair in the two-party share-conversion protocol:
// a party's secret share travels encrypted under its own public key, and the counterparty
// homomorphically combines it with its own contribution without ever seeing the plaintext share.
// The additive/scalar-multiplicative homomorphism this package exposes (HomoAdd, HomoMult) is
// exactly what the MtA combine step in package mta relies on.

package paillier

import (
	"context"
	"crypto"
	_ "crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"strconv"

	"github.com/otiai10/primes"

	"github.com/mpc-tss/zkrange/common"
	crypto2 "github.com/mpc-tss/zkrange/crypto"
)

const (
	// KeyCorrectnessIters is the number of Fiat-Shamir challenges a KeyCorrectnessProof answers.
	KeyCorrectnessIters = 13
	verifyPrimesUntil   = 1000 // Verify uses primes <1000
	pQBitLenDifference  = 3    // >1020-bit P-Q
)

type (
	PublicKey struct {
		N *big.Int
	}

	PrivateKey struct {
		PublicKey
		LambdaN, // lcm(p-1, q-1)
		PhiN *big.Int // (p-1) * (q-1)
	}

	// KeyCorrectnessProof binds a generated Paillier modulus N to the party's own ECDSA public
	// share so a counterparty can check that N has no prime factor below 1000 and that the prover
	// can extract N-th roots mod N, without that check being replayable against a different
	// party's N. It does not prove that N's factors are safe primes. Gennaro, Micciancio,
	// Rabin: "An efficient non-interactive statistical zero-knowledge proof system for quasi-safe
	// prime products", CCS '98.
	KeyCorrectnessProof [KeyCorrectnessIters]*big.Int
)

var (
	ErrMessageTooLong   = fmt.Errorf("the message is too large or < 0")
	ErrMessageMalFormed = fmt.Errorf("the message is mal-formed")

	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

func init() {
	// init primes cache
	_ = primes.Globally.Until(verifyPrimesUntil)
}

// GenerateKeyPair generates a fresh Paillier keypair with an modulusBitLen-bit N, the size every
// party's own key uses in the MtA exchange. modulusBitLen is the length of the modulus; each of
// the two safe primes that make it up is modulusBitLen/2 bits.
func GenerateKeyPair(ctx context.Context, modulusBitLen int, optionalConcurrency ...int) (privateKey *PrivateKey, publicKey *PublicKey, err error) {
	var concurrency int
	if 0 < len(optionalConcurrency) {
		if 1 < len(optionalConcurrency) {
			panic(errors.New("GenerateKeyPair: expected 0 or 1 item in `optionalConcurrency`"))
		}
		concurrency = optionalConcurrency[0]
	} else {
		concurrency = runtime.NumCPU()
	}

	// use two safe primes for P, Q, far enough apart to resist a square-root factoring attack
	var P, Q, N *big.Int
	{
		tmp := new(big.Int)
		for {
			sgps, err := common.SearchSafePrimes(ctx, modulusBitLen/2, 2, concurrency, "Paillier key")
			if err != nil {
				return nil, nil, err
			}
			P, Q = sgps[0].SafePrime(), sgps[1].SafePrime()
			if tmp.Sub(P, Q).BitLen() >= (modulusBitLen/2)-pQBitLenDifference {
				break
			}
		}
		N = tmp.Mul(P, Q)
	}

	// phiN = P-1 * Q-1
	PMinus1, QMinus1 := new(big.Int).Sub(P, one), new(big.Int).Sub(Q, one)
	phiN := new(big.Int).Mul(PMinus1, QMinus1)

	// lambdaN = lcm(P−1, Q−1)
	gcd := new(big.Int).GCD(nil, nil, PMinus1, QMinus1)
	lambdaN := new(big.Int).Div(phiN, gcd)

	publicKey = &PublicKey{N: N}
	privateKey = &PrivateKey{PublicKey: *publicKey, LambdaN: lambdaN, PhiN: phiN}
	return
}

// ----- //

func (publicKey *PublicKey) EncryptAndReturnRandomness(m *big.Int) (c *big.Int, x *big.Int, err error) {
	if m.Cmp(zero) == -1 || m.Cmp(publicKey.N) != -1 { // m < 0 || m >= N ?
		return nil, nil, ErrMessageTooLong
	}
	x = common.GetRandomPositiveRelativelyPrimeInt(publicKey.N)
	N2 := publicKey.NSquare()
	// 1. gamma^m mod N2
	Gm := new(big.Int).Exp(publicKey.Gamma(), m, N2)
	// 2. x^N mod N2
	xN := new(big.Int).Exp(x, publicKey.N, N2)
	// 3. (1) * (2) mod N2
	c = common.NewModRing(N2).Mul(Gm, xN)
	return
}

func (publicKey *PublicKey) Encrypt(m *big.Int) (c *big.Int, err error) {
	c, _, err = publicKey.EncryptAndReturnRandomness(m)
	return
}

func (publicKey *PublicKey) HomoMult(m, c1 *big.Int) (*big.Int, error) {
	if m.Cmp(zero) == -1 || m.Cmp(publicKey.N) != -1 { // m < 0 || m >= N ?
		return nil, ErrMessageTooLong
	}
	N2 := publicKey.NSquare()
	if c1.Cmp(zero) == -1 || c1.Cmp(N2) != -1 { // c1 < 0 || c1 >= N2 ?
		return nil, ErrMessageTooLong
	}
	// cipher^m mod N2
	return common.NewModRing(N2).Exp(c1, m), nil
}

func (publicKey *PublicKey) HomoAdd(c1, c2 *big.Int) (*big.Int, error) {
	N2 := publicKey.NSquare()
	if c1.Cmp(zero) == -1 || c1.Cmp(N2) != -1 { // c1 < 0 || c1 >= N2 ?
		return nil, ErrMessageTooLong
	}
	if c2.Cmp(zero) == -1 || c2.Cmp(N2) != -1 { // c2 < 0 || c2 >= N2 ?
		return nil, ErrMessageTooLong
	}
	// c1 * c2 mod N2
	return common.NewModRing(N2).Mul(c1, c2), nil
}

func (publicKey *PublicKey) NSquare() *big.Int {
	return new(big.Int).Mul(publicKey.N, publicKey.N)
}

// AsInts returns the PublicKey serialised to a slice of *big.Int for hashing
func (publicKey *PublicKey) AsInts() []*big.Int {
	return []*big.Int{publicKey.N, publicKey.Gamma()}
}

// Gamma returns N+1
func (publicKey *PublicKey) Gamma() *big.Int {
	return new(big.Int).Add(publicKey.N, one)
}

// ----- //

func (privateKey *PrivateKey) Decrypt(c *big.Int) (m *big.Int, err error) {
	N2 := privateKey.NSquare()
	if c.Cmp(zero) == -1 || c.Cmp(N2) != -1 { // c < 0 || c >= N2 ?
		return nil, ErrMessageTooLong
	}
	cg := new(big.Int).GCD(nil, nil, c, N2)
	if cg.Cmp(one) == 1 {
		return nil, ErrMessageMalFormed
	}
	// 1. L(u) = (c^LambdaN-1 mod N2) / N
	Lc := L(new(big.Int).Exp(c, privateKey.LambdaN, N2), privateKey.N)
	// 2. L(u) = (Gamma^LambdaN-1 mod N2) / N
	Lg := L(new(big.Int).Exp(privateKey.Gamma(), privateKey.LambdaN, N2), privateKey.N)
	// 3. (1) * modInv(2) mod N
	inv := new(big.Int).ModInverse(Lg, privateKey.N)
	m = common.NewModRing(privateKey.N).Mul(Lc, inv)
	return
}

// ----- //

// Proof computes a KeyCorrectnessProof binding privateKey.N to ecdsaPub, using k as the party's
// own source of randomness for the challenge derivation (see GenerateChallenges). Each response
// is the N-th root of its challenge mod N, which only a holder of phi(N) can extract.
func (privateKey *PrivateKey) Proof(k *big.Int, ecdsaPub *crypto2.ECPoint) KeyCorrectnessProof {
	var pi KeyCorrectnessProof
	rootExp := new(big.Int).ModInverse(privateKey.N, privateKey.PhiN)
	for i, x := range GenerateChallenges(KeyCorrectnessIters, k, privateKey.N, ecdsaPub) {
		pi[i] = new(big.Int).Exp(x, rootExp, privateKey.N)
	}
	return pi
}

// Verify checks a KeyCorrectnessProof against the claimed modulus pkN, the randomness k used to
// derive its challenges, and the ECDSA public share it is bound to. A modulus divisible by any
// prime under verifyPrimesUntil is rejected before the per-challenge root checks run. The error
// return is reserved for malformed input; an honest-but-failing proof yields (false, nil).
func (pf KeyCorrectnessProof) Verify(pkN, k *big.Int, ecdsaPub *crypto2.ECPoint) (bool, error) {
	if pkN == nil || pkN.Sign() != 1 {
		return false, fmt.Errorf("paillier key correctness proof: missing or non-positive modulus")
	}
	for _, prm := range primes.Until(verifyPrimesUntil).List() { // uses cache primed in init()
		if new(big.Int).Mod(pkN, big.NewInt(prm)).Sign() == 0 {
			return false, nil
		}
	}
	for i, xi := range GenerateChallenges(KeyCorrectnessIters, k, pkN, ecdsaPub) {
		if pf[i] == nil {
			return false, fmt.Errorf("paillier key correctness proof: response %d is missing", i)
		}
		xiModN := new(big.Int).Mod(xi, pkN)
		yiExpN := new(big.Int).Exp(pf[i], pkN, pkN)
		if xiModN.Cmp(yiExpN) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// ----- utils

// L implements the L(u) = (u-1)/N reduction used in Paillier decryption.
func L(u, N *big.Int) *big.Int {
	t := new(big.Int).Sub(u, one)
	return new(big.Int).Div(t, N)
}

// GenerateChallenges derives the m Fiat-Shamir challenges a KeyCorrectnessProof answers. A
// candidate is assembled from as many 256-bit hash blocks as it takes to cover N, each block
// hashing the challenge, block and retry indices together with k, ecdsaPub and N, and is kept
// only once it lands in N's multiplicative group. This is the only hashing this package does, so
// it owns the block hash directly rather than reaching for a generic helper.
func GenerateChallenges(m int, k, N *big.Int, ecdsaPub *crypto2.ECPoint) []*big.Int {
	kb, Nb := k.Bytes(), N.Bytes()
	sXb, sYb := ecdsaPub.X().Bytes(), ecdsaPub.Y().Bytes()
	blocks := (N.BitLen() + 255) / 256

	ret := make([]*big.Int, m)
	for i, retry := 0, 0; i < m; {
		ib, rb := []byte(strconv.Itoa(i)), []byte(strconv.Itoa(retry))
		xi := make([]byte, 0, blocks*32)
		for j := 0; j < blocks; j++ {
			xi = append(xi, challengeBlockHash(ib, []byte(strconv.Itoa(j)), rb, kb, sXb, sYb, Nb)...)
		}
		ret[i] = new(big.Int).SetBytes(xi)
		if common.IsNumberInMultiplicativeGroup(N, ret[i]) {
			i++
		} else {
			retry++
		}
	}
	return ret
}

// challengeBlockHash hashes one 256-bit block of a key-correctness challenge. Each byte slice is
// length-prefixed before concatenation so that, e.g., an empty block index and a one-byte retry
// index can never be confused with a one-byte block index and an empty retry index.
func challengeBlockHash(in ...[]byte) []byte {
	state := crypto.SHA512_256.New()
	lenBz := make([]byte, 8)
	for _, bz := range in {
		binary.LittleEndian.PutUint64(lenBz, uint64(len(bz)))
		// hash.Hash.Write never returns an error
		state.Write(lenBz)
		state.Write(bz)
	}
	return state.Sum(nil)
}
