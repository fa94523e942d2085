// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_getSafePrime(t *testing.T) {
	prime := new(big.Int).SetInt64(5)
	sPrime := getSafePrime(prime)
	assert.True(t, sPrime.ProbablyPrime(50))
}

func Test_getSafePrime_Bad(t *testing.T) {
	prime := new(big.Int).SetInt64(12)
	sPrime := getSafePrime(prime)
	assert.False(t, sPrime.ProbablyPrime(50))
}

func Test_Validate(t *testing.T) {
	prime := new(big.Int).SetInt64(5)
	sPrime := getSafePrime(prime)
	sgp := &GermainSafePrime{q: prime, p: sPrime}
	assert.True(t, sgp.Validate())
}

func Test_Validate_Bad(t *testing.T) {
	prime := new(big.Int).SetInt64(12)
	sPrime := getSafePrime(prime)
	sgp := &GermainSafePrime{q: prime, p: sPrime}
	assert.False(t, sgp.Validate())
}

func TestGetRandomSafePrimesConcurrent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	primes, err := GetRandomSafePrimesConcurrent(ctx, 64, 2, 2)
	assert.NoError(t, err)
	assert.Len(t, primes, 2)
	for _, sgp := range primes {
		assert.True(t, sgp.Validate())
		assert.Equal(t, 64, sgp.SafePrime().BitLen())
	}
}

func TestGetRandomSafePrimesConcurrentRejectsSmallBitLen(t *testing.T) {
	_, err := GetRandomSafePrimesConcurrent(context.Background(), 4, 1, 1)
	assert.Error(t, err)
}

func TestSearchSafePrimes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	primes, err := SearchSafePrimes(ctx, 64, 2, 2, "test")
	assert.NoError(t, err)
	assert.Len(t, primes, 2)
	for _, sgp := range primes {
		assert.True(t, sgp.Validate())
	}
}
