// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error accumulating contexts for bignum.Unsigned
// operations.
//
// Operators that set a receiver z to a function of other arguments like:
//
//	func (c *Context) BinaryOp(z, x, y *bignum.Unsigned) *bignum.Unsigned
//
// set z to the result of z.Op(x, y) and return z.
//
// A Context catches errors: if an operation fails (for example, a subtraction
// that would go negative, or a division by zero), the operation silently
// returns its receiver z, unchanged. Further operations with the context will
// be no-ops (they simply return the receiver z) until (*Context).Err is called
// to check for errors. This allows long chains of computations to be written
// without checking errors after every single operation.
package context

import (
	"github.com/db47h/bignum"
	"github.com/db47h/bignum/math"
)

// A Context wraps operations on bignum.Unsigned values and keeps track of the
// first error encountered. The zero value is ready to use.
type Context struct {
	err error
}

// New returns a new Context.
func New() *Context {
	return new(Context)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records err, if any, and returns z.
func (c *Context) check(z *bignum.Unsigned, err error) *bignum.Unsigned {
	if err != nil {
		c.err = err
	}
	return z
}

// Parse returns a new bignum.Unsigned set to the value of the integer literal
// s. See bignum.Parse. If s is not a valid literal, the result is 0.
func (c *Context) Parse(s string) *bignum.Unsigned {
	z := new(bignum.Unsigned)
	if c.err != nil {
		return z
	}
	_, err := z.Parse(s, 0)
	return c.check(z, err)
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	_, err := z.Sub(x, y)
	return c.check(z, err)
}

// Dec decrements z by one and returns z.
func (c *Context) Dec(z *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	_, err := z.Dec()
	return c.check(z, err)
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return z.Mul(x, y)
}

// Quo sets z to the quotient x/y and returns z.
func (c *Context) Quo(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	_, err := z.Quo(x, y)
	return c.check(z, err)
}

// Rem sets z to the remainder x%y and returns z.
func (c *Context) Rem(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	_, err := z.Rem(x, y)
	return c.check(z, err)
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns the
// pair (z, r).
func (c *Context) QuoRem(z, x, y, r *bignum.Unsigned) (*bignum.Unsigned, *bignum.Unsigned) {
	if c.err != nil {
		return z, r
	}
	if _, _, err := z.QuoRem(x, y, r); err != nil {
		c.err = err
	}
	return z, r
}

// Lsh sets z = x << n and returns z.
func (c *Context) Lsh(z, x *bignum.Unsigned, n uint) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return z.Lsh(x, n)
}

// Rsh sets z = x >> n and returns z.
func (c *Context) Rsh(z, x *bignum.Unsigned, n uint) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return z.Rsh(x, n)
}

// Pow sets z to x**y and returns z.
func (c *Context) Pow(z, x, y *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return math.Pow(z, x, y)
}

// PowMod sets z to x**y mod m and returns z.
func (c *Context) PowMod(z, x, y, m *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	_, err := math.PowMod(z, x, y, m)
	return c.check(z, err)
}

// Sqrt sets z to ⌊√x⌋ and returns z.
func (c *Context) Sqrt(z, x *bignum.Unsigned) *bignum.Unsigned {
	if c.err != nil {
		return z
	}
	return math.Sqrt(z, x)
}
