// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

// div returns q, r such that q = u/v and r = u%v. v must not be zero.
//
// z and z2 are the storage for q and r respectively; they may alias u or v.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// divW returns q, r such that q = x/y and r = x%y, for a single Word y.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic(ErrDivisionByZero)
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// modW returns x % d. d must not be zero.
func (x nat) modW(d Word) (r Word) {
	for i := len(x) - 1; i >= 0; i-- {
		_, r = divWW(r, x[i], d)
	}
	return r
}

// divLarge returns q, r such that q = uIn/vIn and r = uIn%vIn, with
// len(vIn) >= 2 and uIn >= vIn.
//
// This is Knuth's Algorithm D, The Art of Computer Programming, Vol. 2,
// Section 4.3.1.
func (z nat) divLarge(u, uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// determine if z can be reused
	if alias(z, u) || alias(z, uIn) || alias(z, vIn) {
		z = nil // z is an alias for u or uIn or vIn - cannot reuse
	}
	q = z.make(m + 1)

	if alias(u, uIn) || alias(u, vIn) {
		u = nil // u is an alias for uIn or vIn - cannot reuse
	}

	// D1: normalize so that the top digit of v has its high bit set.
	shift := nlz(vIn[n-1])
	vp := getNat(n)
	v := *vp
	shlVU(v, vIn, shift)

	// u gets an extra top digit.
	u = u.make(len(uIn) + 1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	qhatvp := getNat(n + 1)
	qhatv := *qhatvp

	// D2: loop over the digits of the quotient, most significant first.
	vn1, vn2 := v[n-1], v[n-2]
	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit.
		qhat := trialDigit(u[j+n], u[j+n-1], u[j+n-2], vn1, vn2)

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+n+1], u[j:], qhatv)

		// D5, D6: the estimate was one too large; add back.
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c // the final carry cancels the borrow
			qhat--
		}

		q[j] = qhat
	}

	putNat(vp)
	putNat(qhatvp)

	// D8: denormalize the remainder.
	q = q.norm()
	shrVU(u, u, shift)
	r = u.norm()

	return q, r
}

// trialDigit returns the estimate q̂ of the quotient digit of the window
// u2:u1:u0 by v1:v0, where v1 has its most significant bit set and
// u2:u1 <= v1:v0. The returned estimate is either exact or one too large.
func trialDigit(u2, u1, u0, v1, v0 Word) Word {
	qhat := Word(_M)
	var rhat Word
	if u2 != v1 {
		qhat, rhat = divWW(u2, u1, v1)
	} else {
		// u2:u1/v1 >= _B; q̂ starts at _M with r̂ = u2:u1 - _M*v1 = u1 + v1.
		r, c := bits.Add(uint(u1), uint(v1), 0)
		if c != 0 {
			// r̂ >= _B: the test below cannot succeed.
			return qhat
		}
		rhat = Word(r)
	}

	// The test runs at most twice: once, then again only if r̂ did not
	// overflow a digit.
	for i := 0; i < 2; i++ {
		x1, x0 := mulWW(qhat, v0)
		if !greaterThan(x1, x0, rhat, u0) {
			break
		}
		qhat--
		prev := rhat
		rhat += v1
		if rhat < prev {
			break
		}
	}
	return qhat
}
