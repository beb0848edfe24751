// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "strings"

// A BitRange is a read-only view of the bits of an Unsigned, least
// significant bit first.
//
// A BitRange shares the digit storage of the Unsigned it was taken from. It
// must not be used after that Unsigned has been modified.
type BitRange struct {
	x nat
	n int
}

// FullBits returns a BitRange covering every bit of the digits of x,
// including the leading zero bits of the most significant digit.
func (x *Unsigned) FullBits() BitRange {
	return BitRange{x.abs, len(x.abs) * _W}
}

// MinimalBits returns a BitRange covering the bits of x up to and including
// its most significant set bit. Its length is x.BitLen().
func (x *Unsigned) MinimalBits() BitRange {
	return BitRange{x.abs, x.abs.bitLen()}
}

// Len returns the number of bits in r.
func (r BitRange) Len() int { return r.n }

// At returns bit i of r. It panics if i is out of range.
func (r BitRange) At(i int) bool {
	if i < 0 || i >= r.n {
		panic("bignum: bit index out of range")
	}
	return r.x.bit(uint(i)) != 0
}

// Iter returns an iterator over the bits of r.
func (r BitRange) Iter() *BitIterator {
	return &BitIterator{x: r.x, left: r.n}
}

// String returns the bits of r as a string of '0' and '1' characters, least
// significant bit first.
func (r BitRange) String() string {
	var sb strings.Builder
	sb.Grow(r.n)
	for it := r.Iter(); it.Next(); {
		if it.Bit() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// A BitIterator walks the bits of a BitRange. The iterator starts before the
// first bit; call Next to advance to it:
//
//	for it := x.MinimalBits().Iter(); it.Next(); {
//		if it.Bit() {
//			...
//		}
//	}
type BitIterator struct {
	x    nat
	i    int  // index of the current digit
	mask Word // current bit within x[i]; 0 before the first call to Next
	left int  // bits remaining
}

// Next advances the iterator to the next bit and reports whether there is
// one.
func (it *BitIterator) Next() bool {
	if it.left == 0 {
		return false
	}
	it.left--
	switch it.mask {
	case 0:
		it.mask = 1
	case 1 << (_W - 1):
		it.i++
		it.mask = 1
	default:
		it.mask <<= 1
	}
	return true
}

// Bit returns the value of the current bit.
func (it *BitIterator) Bit() bool {
	return it.x[it.i]&it.mask != 0
}
