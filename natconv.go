// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"io"
	"math"
	"math/bits"
)

// scan errors
var (
	errNoDigits = &Error{InvalidCharacter, "number has no digits"}
)

// scan scans the number corresponding to the longest possible prefix from r
// representing an unsigned number in a given conversion base. It returns the
// corresponding natural number res, the actual base b, a digit count, and a
// read error err, if any.
//
// The base argument must be 0, 2, 8, 10 or 16. For base 0, the number prefix
// determines the actual base: A prefix of "0x" or "0X" selects base 16, and a
// "0" prefix selects base 8. Otherwise the selected base is 10 and no prefix is
// accepted. For explicit bases no prefix is accepted. The absence of any
// digit, after a "0x" prefix or in an empty input, yields 0 with a count of 0.
//
// Hexadecimal digits may be lower or upper case.
func (z nat) scan(r io.ByteScanner, base int) (res nat, b, count int, err error) {
	switch base {
	case 0, 2, 8, 10, 16:
	default:
		panic(fmt.Sprintf("invalid number base %d", base))
	}

	// one char look-ahead
	ch, err := r.ReadByte()

	// determine actual base
	b = base
	if base == 0 {
		// actual base is 10 unless there's a base prefix
		b = 10
		if err == nil && ch == '0' {
			count = 1
			ch, err = r.ReadByte()
			if err == nil {
				switch ch {
				case 'x', 'X':
					b = 16
					count = 0 // prefix is not counted
					ch, err = r.ReadByte()
				default:
					// the leading 0 also counts as a digit
					b = 8
				}
			}
		}
	}

	// convert string
	// Algorithm: Collect digits in groups of at most n digits in di and then
	// fold every such group into the result, either by shifting for
	// power-of-two bases, or with mulAddWW.
	z = z[:0]
	b1 := Word(b)
	var shift uint // log2(b1) for power-of-two bases
	if b1&(b1-1) == 0 {
		shift = uint(bits.TrailingZeros(uint(b1)))
	}
	_, n := maxPow(b1) // at most n digits in base b1 fit into a Word
	di := Word(0)      // 0 <= di < b1**i < bn
	i := 0             // 0 <= i < n
	for err == nil {
		d1 := digitVal(ch)
		if d1 >= b1 {
			err = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		count++

		// collect d1 in di
		di = di*b1 + d1
		i++

		// if di is "full", add it to the result
		if i == n {
			z = z.fold(di, b1, i, shift)
			di = 0
			i = 0
		}

		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}

	// add remaining digits to result
	if i > 0 {
		z = z.fold(di, b1, i, shift)
	}
	res = z.norm()

	return
}

// fold sets z to z*b**i + di. If shift is not zero, b == 1<<shift.
func (z nat) fold(di, b Word, i int, shift uint) nat {
	if shift != 0 {
		z = z.shl(z, uint(i)*shift)
		return z.addWord(z, di)
	}
	return z.mulAddWW(z, pow(b, i), di)
}

// digitVal returns the value of the hexadecimal digit ch, or 16 if ch is not
// a digit in any supported base.
func digitVal(ch byte) Word {
	switch {
	case '0' <= ch && ch <= '9':
		return Word(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return Word(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'F':
		return Word(ch - 'A' + 10)
	}
	return 16
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}

// utoa converts x to an ASCII representation in the given base, using lower
// case digits. base must be 2, 8, 10 or 16.
func (x nat) utoa(base int) []byte {
	return x.itoa(lowerDigits[:base])
}

// itoa converts x to an ASCII representation using the digits in cs. The
// conversion base is len(cs).
func (x nat) itoa(cs string) []byte {
	base := len(cs)
	switch base {
	case 2, 8, 10, 16:
	default:
		panic("invalid base")
	}

	// x == 0
	if len(x) == 0 {
		return []byte(cs[:1])
	}
	// len(x) > 0

	// allocate buffer for conversion
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 1 // off by 1 at most
	s := make([]byte, i)

	b := Word(base)
	if b&(b-1) == 0 {
		// power-of-two base: read shift bits at a time, crossing word
		// boundaries as needed
		shift := uint(bits.TrailingZeros(uint(b)))
		mask := b - 1
		w := x[0]         // current word
		nbits := uint(_W) // number of unprocessed bits in w

		// convert less-significant words (include leading zeros)
		for k := 1; k < len(x); k++ {
			// convert full digits
			for nbits >= shift {
				i--
				s[i] = cs[w&mask]
				w >>= shift
				nbits -= shift
			}

			// convert any partial leading digit and advance to next word
			if nbits == 0 {
				// no partial digit remaining, just advance
				w = x[k]
				nbits = _W
			} else {
				// partial digit in current word w (== x[k-1]) and next word x[k]
				w |= x[k] << nbits
				i--
				s[i] = cs[w&mask]

				// advance
				w = x[k] >> (shift - nbits)
				nbits = _W - (shift - nbits)
			}
		}

		// convert digits of most-significant word w (omit leading zeros)
		for w != 0 {
			i--
			s[i] = cs[w&mask]
			w >>= shift
		}
		return s[i:]
	}

	bb, ndigits := maxPow(b)

	// preserve x, create local copy for use by convertWords
	q := nat(nil).set(x)

	// convert q to string s in base b
	q.convertWords(s, cs, ndigits, bb)

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i = 0
	for s[i] == '0' {
		i++
	}
	return s[i:]
}

// convertWords repeatedly divides q by bb, the largest power of the base that
// fits a Word, and converts each remainder into ndigits digits, filling s from
// the end. q is destroyed.
func (q nat) convertWords(s []byte, cs string, ndigits int, bb Word) {
	b := Word(len(cs))
	i := len(s)
	var r Word
	for len(q) > 0 {
		// extract least significant, base bb "digit"
		q, r = q.divW(q, bb)
		for j := 0; j < ndigits && i > 0; j++ {
			i--
			// avoid % computation since r%b == r - int(r/b)*b
			t := r / b
			s[i] = cs[r-t*b]
			r = t
		}
	}

	// prepend high-order zeros
	for i > 0 { // while need more leading zeros
		i--
		s[i] = '0'
	}
}
