// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *Unsigned {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustSub is like Sub but panics if y > x.
func (z *Unsigned) MustSub(x, y *Unsigned) *Unsigned {
	if _, err := z.Sub(x, y); err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustQuo is like Quo but panics if y == 0.
func (z *Unsigned) MustQuo(x, y *Unsigned) *Unsigned {
	if _, err := z.Quo(x, y); err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustRem is like Rem but panics if y == 0.
func (z *Unsigned) MustRem(x, y *Unsigned) *Unsigned {
	if _, err := z.Rem(x, y); err != nil {
		panic(fmt.Sprintf("MustRem(%v, %v) failed: %v", x, y, err))
	}
	return z
}
