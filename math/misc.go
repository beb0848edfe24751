// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides exponentiation and square root functions for
// bignum.Unsigned values.
package math

import (
	"fmt"

	"github.com/db47h/bignum"
)

// constants
var (
	one = bignum.New(1)
)

// Pow sets z to x**y and returns z. 0**0 is 1.
//
// The result is computed by square-and-multiply over the bits of y, least
// significant first.
func Pow(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	bits := y.MinimalBits()
	n := bits.Len()
	power := new(bignum.Unsigned).Set(one)
	mult := new(bignum.Unsigned).Set(x)
	for i, it := 0, bits.Iter(); it.Next(); i++ {
		if it.Bit() {
			power.Mul(power, mult)
		}
		// the last square is never used
		if i < n-1 {
			mult.Mul(mult, mult)
		}
	}
	return z.Set(power)
}

// PowUint64 sets z to x**n and returns z.
func PowUint64(z, x *bignum.Unsigned, n uint64) *bignum.Unsigned {
	return Pow(z, x, bignum.New(n))
}

// PowMod sets z to x**y mod m and returns z. Intermediate results are reduced
// modulo m after every multiplication, so that they never exceed m**2.
//
// If m == 0, PowMod returns a nil *bignum.Unsigned and an error matching
// bignum.ErrDivisionByZero; z is left unchanged. If m == 1, the result is 0.
func PowMod(z, x, y, m *bignum.Unsigned) (*bignum.Unsigned, error) {
	if m.IsZero() {
		return nil, fmt.Errorf("PowMod: %w", bignum.ErrDivisionByZero)
	}
	bits := y.MinimalBits()
	n := bits.Len()
	power := new(bignum.Unsigned).MustRem(one, m)
	mult := new(bignum.Unsigned).MustRem(x, m)
	for i, it := 0, bits.Iter(); it.Next(); i++ {
		if it.Bit() {
			power.Mul(power, mult).MustRem(power, m)
		}
		if i < n-1 {
			mult.Mul(mult, mult).MustRem(mult, m)
		}
	}
	return z.Set(power), nil
}
