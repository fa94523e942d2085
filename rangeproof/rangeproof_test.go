// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rangeproof_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpc-tss/zkrange/crypto"
	"github.com/mpc-tss/zkrange/crypto/paillier"
	. "github.com/mpc-tss/zkrange/rangeproof"
	"github.com/mpc-tss/zkrange/zkpsetup"
)

const (
	testSafePrimeBitLen   = 96
	testPaillierKeyLength = 256
)

var (
	testSetup *zkpsetup.ZkpSetup
	testSK    *paillier.PrivateKey
	testPK    *paillier.PublicKey
	testQ     = crypto.EC().Params().N
)

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	setup, err := zkpsetup.Random(ctx, testSafePrimeBitLen, 1)
	if err != nil {
		panic(err)
	}
	testSetup = setup

	sk, pk, err := paillier.GenerateKeyPair(ctx, testPaillierKeyLength)
	if err != nil {
		panic(err)
	}
	testSK = sk
	testPK = pk

	m.Run()
}

func TestAliceProofRoundTrip(t *testing.T) {
	a := big.NewInt(42)
	cipher, r, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	proof := GenerateAliceProof(a, r, cipher, testPK, testSetup, testQ)
	assert.True(t, proof.Verify(cipher, testPK, testSetup, testQ))
}

func TestAliceProofRejectsOutOfRangeS1(t *testing.T) {
	a := big.NewInt(42)
	cipher, r, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	proof := GenerateAliceProof(a, r, cipher, testPK, testSetup, testQ)
	q3 := new(big.Int).Exp(testQ, big.NewInt(3), nil)
	proof.S1 = new(big.Int).Add(q3, big.NewInt(1))
	assert.False(t, proof.Verify(cipher, testPK, testSetup, testQ))
}

func TestAliceProofRejectsTamperedTranscript(t *testing.T) {
	a := big.NewInt(42)
	cipher, r, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	proof := GenerateAliceProof(a, r, cipher, testPK, testSetup, testQ)
	proof.Z = new(big.Int).Add(proof.Z, big.NewInt(1))
	assert.False(t, proof.Verify(cipher, testPK, testSetup, testQ))
}

func TestBobProofRoundTrip(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	proof := GenerateBobProof(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	assert.True(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ))
}

func TestBobProofRejectsTamperedTranscript(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	proof := GenerateBobProof(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	proof.T1 = new(big.Int).Add(proof.T1, big.NewInt(1))
	assert.False(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ))
}

func TestBobProofRejectsAnySingleFieldMutation(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	mutations := map[string]func(p *BobProof){
		"t":      func(p *BobProof) { p.T.Add(p.T, big.NewInt(1)) },
		"v":      func(p *BobProof) { p.V.Add(p.V, big.NewInt(1)) },
		"w":      func(p *BobProof) { p.W.Add(p.W, big.NewInt(1)) },
		"z":      func(p *BobProof) { p.Z.Add(p.Z, big.NewInt(1)) },
		"z_prim": func(p *BobProof) { p.ZPrim.Add(p.ZPrim, big.NewInt(1)) },
		"e":      func(p *BobProof) { p.E.Challenge.Add(p.E.Challenge, big.NewInt(1)) },
		"nonce":  func(p *BobProof) { p.E.Nonce.Add(p.E.Nonce, big.NewInt(1)) },
		"s":      func(p *BobProof) { p.S.Add(p.S, big.NewInt(1)) },
		"s1":     func(p *BobProof) { p.S1.Add(p.S1, big.NewInt(1)) },
		"s2":     func(p *BobProof) { p.S2.Add(p.S2, big.NewInt(1)) },
		"t1":     func(p *BobProof) { p.T1.Add(p.T1, big.NewInt(1)) },
		"t2":     func(p *BobProof) { p.T2.Add(p.T2, big.NewInt(1)) },
	}
	for name, mutate := range mutations {
		proof := GenerateBobProof(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
		mutate(proof)
		assert.False(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ), "mutated field %s must reject", name)
	}
}

func TestBobMtAOutputDecryptsToExpectedPlaintext(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	proof := GenerateBobProof(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	require.True(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ))

	plain, err := testSK.Decrypt(c2)
	require.NoError(t, err)

	want := new(big.Int).Add(new(big.Int).Mul(a, b), betaPrim)
	want.Mod(want, testPK.N)
	assert.Equal(t, want, plain)
}

func TestBobProofExtRoundTrip(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	proof, err := GenerateBobProofExt(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	require.NoError(t, err)
	assert.True(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ))
}

func TestBobProofExtRejectsMismatchedX(t *testing.T) {
	a := big.NewInt(7)
	aEnc, _, err := testPK.EncryptAndReturnRandomness(a)
	require.NoError(t, err)

	b := big.NewInt(11)
	betaPrim := big.NewInt(23)
	bTimesA, err := testPK.HomoMult(b, aEnc)
	require.NoError(t, err)
	encBetaPrim, r, err := testPK.EncryptAndReturnRandomness(betaPrim)
	require.NoError(t, err)
	c2, err := testPK.HomoAdd(bTimesA, encBetaPrim)
	require.NoError(t, err)

	proof, err := GenerateBobProofExt(b, betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	require.NoError(t, err)

	otherProof, err := GenerateBobProofExt(big.NewInt(99), betaPrim, r, aEnc, c2, testPK, testSetup, testQ)
	require.NoError(t, err)
	proof.X = otherProof.X
	assert.False(t, proof.Verify(aEnc, c2, testPK, testSetup, testQ))
}
