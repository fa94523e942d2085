// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpc-tss/zkrange/common"
)

func TestScrubZeroesValues(t *testing.T) {
	a := big.NewInt(12345)
	b := big.NewInt(67890)

	common.Scrub(a, b)

	assert.Zero(t, a.Sign())
	assert.Zero(t, b.Sign())
}

func TestScrubIgnoresNil(t *testing.T) {
	a := big.NewInt(1)
	assert.NotPanics(t, func() {
		common.Scrub(a, nil)
	})
	assert.Zero(t, a.Sign())
}
