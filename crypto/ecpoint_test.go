// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mpc-tss/zkrange/crypto"
)

func TestNewECPointRejectsOffCurvePoint(t *testing.T) {
	_, err := NewECPoint(EC(), big.NewInt(1), big.NewInt(1))
	assert.Error(t, err)
}

func TestScalarBaseMultAddsUp(t *testing.T) {
	g := ScalarBaseMult(EC(), big.NewInt(1))
	g2 := ScalarBaseMult(EC(), big.NewInt(2))

	sum, err := g.Add(g)
	require.NoError(t, err)
	assert.True(t, sum.Equals(g2))
	assert.False(t, sum.Equals(g))
}

func TestScalarMultMatchesBaseMult(t *testing.T) {
	g := ScalarBaseMult(EC(), big.NewInt(1))
	assert.True(t, g.ScalarMult(big.NewInt(7)).Equals(ScalarBaseMult(EC(), big.NewInt(7))))
}

func TestValidateBasic(t *testing.T) {
	assert.True(t, ScalarBaseMult(EC(), big.NewInt(3)).ValidateBasic())
	assert.False(t, NewECPointNoCurveCheck(EC(), big.NewInt(1), big.NewInt(1)).ValidateBasic())
	assert.False(t, NewECPointNoCurveCheck(EC(), nil, nil).ValidateBasic())
}

func TestECPointJSONRoundTrip(t *testing.T) {
	p := ScalarBaseMult(EC(), big.NewInt(42))
	bz, err := json.Marshal(p)
	require.NoError(t, err)

	var back ECPoint
	require.NoError(t, json.Unmarshal(bz, &back))
	assert.True(t, p.Equals(&back))
}

func TestECPointJSONRejectsOffCurvePoint(t *testing.T) {
	var back ECPoint
	err := json.Unmarshal([]byte(`{"Coords":[1,1]}`), &back)
	assert.Error(t, err)
}
