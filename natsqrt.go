// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// sqrt sets z = ⌊√x⌋.
//
// The root is found with Newton's method on f(t) = t² - x, starting from a
// power of two that is known to be at least √x. The iteration
//
//	t' = ⌊(t + ⌊x/t⌋)/2⌋
//
// decreases strictly until it reaches ⌊√x⌋, after which it stops
// decreasing.
func (z nat) sqrt(x nat) nat {
	if x.cmp(nat{1}) <= 0 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}

	var t, u nat
	t = z
	t = t.setWord(1)
	t = t.shl(t, uint(x.bitLen()+1)/2) // t >= √x
	r := getNat(0)
	for n := 0; ; n++ {
		u, *r = u.div(*r, x, t)
		u = u.add(u, t)
		u = u.shr(u, 1)
		if u.cmp(t) >= 0 {
			putNat(r)
			// t started out in z's storage; it is back there after an even
			// number of swaps.
			if n&1 == 0 {
				return t
			}
			return z.set(t)
		}
		t, u = u, t
	}
}
