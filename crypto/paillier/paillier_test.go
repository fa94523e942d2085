// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpc-tss/zkrange/common"
	"github.com/mpc-tss/zkrange/crypto"
	. "github.com/mpc-tss/zkrange/crypto/paillier"
)

// a much shorter modulus than production (2048 bits) keeps the concurrent safe-prime search
// fast enough for a unit test; the arithmetic being exercised does not depend on key size.
const testPaillierKeyLength = 256

func generateTestKeyPair(t *testing.T) (*PrivateKey, *PublicKey) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sk, pk, err := GenerateKeyPair(ctx, testPaillierKeyLength)
	require.NoError(t, err)
	return sk, pk
}

func TestGenerateKeyPair(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	assert.NotZero(t, pk)
	assert.NotZero(t, sk)
}

func TestEncryptDecrypt(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	exp := big.NewInt(100)
	cypher, err := pk.Encrypt(exp)
	require.NoError(t, err)
	ret, err := sk.Decrypt(cypher)
	require.NoError(t, err)
	assert.Equal(t, 0, exp.Cmp(ret))
}

func TestHomoMul(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	three, err := pk.Encrypt(big.NewInt(3))
	require.NoError(t, err)

	six := big.NewInt(6)
	cm, err := pk.HomoMult(six, three)
	require.NoError(t, err)
	multiple, err := sk.Decrypt(cm)
	require.NoError(t, err)
	assert.Equal(t, 0, multiple.Cmp(big.NewInt(18)))
}

func TestHomoAdd(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	num1, num2 := big.NewInt(10), big.NewInt(32)

	c1, err := pk.Encrypt(num1)
	require.NoError(t, err)
	c2, err := pk.Encrypt(num2)
	require.NoError(t, err)

	ciphered, err := pk.HomoAdd(c1, c2)
	require.NoError(t, err)
	plain, err := sk.Decrypt(ciphered)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Add(num1, num2), plain)
}

func TestProofRoundTrip(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	ki := common.MustGetRandomInt(256)
	ui := common.GetRandomPositiveInt(crypto.EC().Params().N)
	ecdsaPub := crypto.ScalarBaseMult(crypto.EC(), ui)

	proof := sk.Proof(ki, ecdsaPub)
	ok, err := proof.Verify(pk.N, ki, ecdsaPub)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProofVerifyTamperedFails(t *testing.T) {
	sk, pk := generateTestKeyPair(t)
	ki := common.MustGetRandomInt(256)
	ui := common.GetRandomPositiveInt(crypto.EC().Params().N)
	ecdsaPub := crypto.ScalarBaseMult(crypto.EC(), ui)

	proof := sk.Proof(ki, ecdsaPub)
	last := proof[len(proof)-1]
	last.Sub(last, big.NewInt(1))
	ok, err := proof.Verify(pk.N, ki, ecdsaPub)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputeL(t *testing.T) {
	u, n := big.NewInt(21), big.NewInt(3)
	assert.Equal(t, 0, big.NewInt(6).Cmp(L(u, n)))
}

func TestGenerateChallenges(t *testing.T) {
	k := common.MustGetRandomInt(256)
	sX := common.MustGetRandomInt(256)
	sY := common.MustGetRandomInt(256)
	N := common.GetRandomPrimeInt(512)

	xs := GenerateChallenges(13, k, N, crypto.NewECPointNoCurveCheck(crypto.EC(), sX, sY))
	require.Equal(t, 13, len(xs))
	for _, xi := range xs {
		assert.True(t, common.IsNumberInMultiplicativeGroup(N, xi))
	}
}
