// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package zkpsetup builds the Fujisaki-Okamoto integer commitment setup that every range proof in
// this module is verified against: a strong-RSA modulus N_tilde with two generators h1, h2 of its
// quadratic-residue subgroup, related by a trapdoor alpha that only the setup's owner knows.
package zkpsetup

import (
	"context"
	"errors"
	"math/big"
	"runtime"

	"github.com/mpc-tss/zkrange/common"
)

const (
	// DefaultSafePrimeBitLen is the recommended bit length of each of the two safe primes that
	// make up N_tilde.
	DefaultSafePrimeBitLen = 1024
	// DefaultModulusBitLen is the resulting bit length of N_tilde.
	DefaultModulusBitLen = 2 * DefaultSafePrimeBitLen
)

// ZkpSetup is the private half of the Fujisaki-Okamoto commitment setup. p and q are the Sophie
// Germain primes whose safe-prime counterparts multiply to N_tilde; order is their product, the
// order of the quadratic-residue subgroup generated by H1; alpha is the discrete log of H2 base
// H1 in that subgroup. The four are secret, never leave the package, and must be scrubbed once
// the setup's owner is done with it; only the commitment parameters NTilde, H1, H2 are public.
type ZkpSetup struct {
	p, q, order, alpha *big.Int

	NTilde, H1, H2 *big.Int
}

// Random generates a fresh ZkpSetup by searching for two safe primes of safePrimeBitLen bits
// each. The search is concurrent; optionalConcurrency defaults to the number of available CPUs.
func Random(ctx context.Context, safePrimeBitLen int, optionalConcurrency ...int) (*ZkpSetup, error) {
	var concurrency int
	if 0 < len(optionalConcurrency) {
		if 1 < len(optionalConcurrency) {
			panic(errors.New("zkpsetup.Random: expected 0 or 1 item in `optionalConcurrency`"))
		}
		concurrency = optionalConcurrency[0]
	} else {
		concurrency = runtime.NumCPU()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	sgps, err := common.SearchSafePrimes(ctx, safePrimeBitLen, 2, concurrency, "FO commitment setup")
	if err != nil {
		return nil, err
	}
	if sgps[0] == nil || sgps[1] == nil {
		return nil, errors.New("zkpsetup.Random: safe prime search returned an incomplete result")
	}

	safeP, safeQ := sgps[0].SafePrime(), sgps[1].SafePrime()
	p, q := sgps[0].Prime(), sgps[1].Prime()

	nTilde := new(big.Int).Mul(safeP, safeQ)
	order := new(big.Int).Mul(p, q)
	modNTilde := common.NewModRing(nTilde)

	h1 := common.GetRandomGeneratorOfTheQuadraticResidue(nTilde)
	alpha := common.GetRandomPositiveRelativelyPrimeInt(order)
	h2 := modNTilde.Exp(h1, alpha)

	common.Scrub(safeP, safeQ)
	return &ZkpSetup{
		p:      p,
		q:      q,
		order:  order,
		alpha:  alpha,
		NTilde: nTilde,
		H1:     h1,
		H2:     h2,
	}, nil
}

// Destroy scrubs every secret scalar held by the setup. Callers that own a ZkpSetup should defer
// this immediately after construction.
func (setup *ZkpSetup) Destroy() {
	if setup == nil {
		return
	}
	common.Scrub(setup.p, setup.q, setup.order, setup.alpha)
}

// VerifySetup checks two structural invariants of a freshly generated ZkpSetup: that order is the
// product of p and q, and that H2 really is H1 raised to alpha. It does not check that N_tilde
// equals (2p+1)(2q+1).
func (setup *ZkpSetup) VerifySetup() bool {
	if new(big.Int).Mul(setup.p, setup.q).Cmp(setup.order) != 0 {
		return false
	}
	expectedH2 := common.NewModRing(setup.NTilde).Exp(setup.H1, setup.alpha)
	return expectedH2.Cmp(setup.H2) == 0
}
