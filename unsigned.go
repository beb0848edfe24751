// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// An Unsigned represents a non-negative integer of arbitrary size.
// The zero value for an Unsigned represents the value 0.
//
// Operations always take pointer arguments (*Unsigned) rather
// than Unsigned values, and each unique Unsigned value requires
// its own unique *Unsigned pointer. To "copy" an Unsigned value,
// an existing (or newly allocated) Unsigned must be set to
// a new value using the Unsigned.Set method; shallow copies
// of Unsigneds are not supported and may lead to errors.
type Unsigned struct {
	abs nat // digits, little-endian, normalized
}

// New allocates and returns a new Unsigned set to x.
func New(x uint64) *Unsigned {
	return new(Unsigned).SetUint64(x)
}

// SetUint64 sets z to x and returns z.
func (z *Unsigned) SetUint64(x uint64) *Unsigned {
	z.abs = z.abs.setUint64(x)
	return z
}

// SetWord sets z to the single digit x and returns z.
func (z *Unsigned) SetWord(x Word) *Unsigned {
	z.abs = z.abs.setWord(x)
	return z
}

// Set sets z to x and returns z. z never shares digit storage with x.
func (z *Unsigned) Set(x *Unsigned) *Unsigned {
	if z != x {
		z.abs = z.abs.set(x.abs)
	}
	return z
}

// Clone returns a new Unsigned set to x.
func (x *Unsigned) Clone() *Unsigned {
	return new(Unsigned).Set(x)
}

// Uint64 returns the uint64 representation of x.
// If x cannot be represented in a uint64, the result is undefined.
func (x *Unsigned) Uint64() uint64 {
	return x.abs.uint64()
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Unsigned) IsUint64() bool {
	return x.abs.bitLen() <= 64
}

// SetBytes interprets buf as the bytes of a big-endian unsigned integer,
// sets z to that value, and returns z.
func (z *Unsigned) SetBytes(buf []byte) *Unsigned {
	z.abs = z.abs.setBytes(buf)
	return z
}

// Bytes returns the value of x as a big-endian byte slice, without leading
// zero bytes. The result for 0 is an empty slice.
func (x *Unsigned) Bytes() []byte {
	buf := make([]byte, len(x.abs)*_S)
	return buf[x.abs.bytes(buf):]
}

// Add sets z to the sum x+y and returns z.
func (z *Unsigned) Add(x, y *Unsigned) *Unsigned {
	z.abs = z.abs.add(x.abs, y.abs)
	if debugBignum {
		z.validate()
	}
	return z
}

// AddWord sets z to the sum x+y and returns z.
func (z *Unsigned) AddWord(x *Unsigned, y Word) *Unsigned {
	z.abs = z.abs.addWord(x.abs, y)
	if debugBignum {
		z.validate()
	}
	return z
}

// Inc increments z by one and returns z.
func (z *Unsigned) Inc() *Unsigned {
	return z.AddWord(z, 1)
}

// Plus returns a new Unsigned set to x+y.
func (x *Unsigned) Plus(y *Unsigned) *Unsigned {
	return new(Unsigned).Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
//
// If y > x, Sub returns a nil *Unsigned and an error matching ErrUnderflow;
// z is left unchanged.
func (z *Unsigned) Sub(x, y *Unsigned) (*Unsigned, error) {
	t := getNat(0)
	d, neg := t.subNeg(x.abs, y.abs)
	*t = d
	if neg {
		putNat(t)
		return nil, errorf(Underflow, "Sub: result is negative")
	}
	z.abs = z.abs.set(d)
	putNat(t)
	if debugBignum {
		z.validate()
	}
	return z, nil
}

// SubWord sets z to the difference x-y and returns z.
//
// If y > x, SubWord returns a nil *Unsigned and an error matching
// ErrUnderflow; z is left unchanged.
func (z *Unsigned) SubWord(x *Unsigned, y Word) (*Unsigned, error) {
	t := getNat(0)
	d, neg := t.subWord(x.abs, y)
	*t = d
	if neg {
		putNat(t)
		return nil, errorf(Underflow, "SubWord: result is negative")
	}
	z.abs = z.abs.set(d)
	putNat(t)
	if debugBignum {
		z.validate()
	}
	return z, nil
}

// Dec decrements z by one and returns z. If z is zero, Dec returns a nil
// *Unsigned and an error matching ErrUnderflow; z is left unchanged.
func (z *Unsigned) Dec() (*Unsigned, error) {
	if len(z.abs) == 0 {
		return nil, errorf(Underflow, "Dec: cannot decrement zero")
	}
	return z.SubWord(z, 1)
}

// Minus returns a new Unsigned set to x-y. If y > x, it returns nil and an
// error matching ErrUnderflow.
func (x *Unsigned) Minus(y *Unsigned) (*Unsigned, error) {
	return new(Unsigned).Sub(x, y)
}

// Mul sets z to the product x*y and returns z.
func (z *Unsigned) Mul(x, y *Unsigned) *Unsigned {
	z.abs = z.abs.mul(x.abs, y.abs)
	if debugBignum {
		z.validate()
	}
	return z
}

// MulWord sets z to the product x*y and returns z.
func (z *Unsigned) MulWord(x *Unsigned, y Word) *Unsigned {
	z.abs = z.abs.mulWord(x.abs, y)
	if debugBignum {
		z.validate()
	}
	return z
}

// Times returns a new Unsigned set to x*y.
func (x *Unsigned) Times(y *Unsigned) *Unsigned {
	return new(Unsigned).Mul(x, y)
}

func errDivByZero(op string) error {
	return errorf(DivisionByZero, "%s: division by zero", op)
}

// Quo sets z to the quotient x/y and returns z.
//
// If y == 0, Quo returns a nil *Unsigned and an error matching
// ErrDivisionByZero; z is left unchanged.
func (z *Unsigned) Quo(x, y *Unsigned) (*Unsigned, error) {
	if len(y.abs) == 0 {
		return nil, errDivByZero("Quo")
	}
	r := getNat(0)
	z.abs, *r = z.abs.div(*r, x.abs, y.abs)
	putNat(r)
	if debugBignum {
		z.validate()
	}
	return z, nil
}

// Rem sets z to the remainder x%y and returns z.
//
// If y == 0, Rem returns a nil *Unsigned and an error matching
// ErrDivisionByZero; z is left unchanged.
func (z *Unsigned) Rem(x, y *Unsigned) (*Unsigned, error) {
	if len(y.abs) == 0 {
		return nil, errDivByZero("Rem")
	}
	if len(y.abs) == 1 {
		z.abs = z.abs.setWord(x.abs.modW(y.abs[0]))
		return z, nil
	}
	q := getNat(0)
	*q, z.abs = (*q).div(z.abs, x.abs, y.abs)
	putNat(q)
	if debugBignum {
		z.validate()
	}
	return z, nil
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns
// the pair (z, r), such that x == z*y + r and r < y. z and r must be
// distinct.
//
// If y == 0, QuoRem returns nil results and an error matching
// ErrDivisionByZero; z and r are left unchanged.
func (z *Unsigned) QuoRem(x, y, r *Unsigned) (*Unsigned, *Unsigned, error) {
	if z == r {
		panic("bignum: QuoRem with identical quotient and remainder")
	}
	if len(y.abs) == 0 {
		return nil, nil, errDivByZero("QuoRem")
	}
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	if debugBignum {
		z.validate()
		r.validate()
	}
	return z, r, nil
}

// A DivisionResult holds the quotient and remainder of a division.
type DivisionResult struct {
	Quotient  *Unsigned
	Remainder *Unsigned
}

// DividedBy returns the quotient and remainder of x/y as new Unsigned values.
// If y == 0, it returns an error matching ErrDivisionByZero.
func (x *Unsigned) DividedBy(y *Unsigned) (DivisionResult, error) {
	q, r, err := new(Unsigned).QuoRem(x, y, new(Unsigned))
	if err != nil {
		return DivisionResult{}, err
	}
	return DivisionResult{Quotient: q, Remainder: r}, nil
}

// Lsh sets z = x << n and returns z.
func (z *Unsigned) Lsh(x *Unsigned, n uint) *Unsigned {
	z.abs = z.abs.shl(x.abs, n)
	if debugBignum {
		z.validate()
	}
	return z
}

// Rsh sets z = x >> n and returns z. Bits shifted out are discarded.
func (z *Unsigned) Rsh(x *Unsigned, n uint) *Unsigned {
	z.abs = z.abs.shr(x.abs, n)
	if debugBignum {
		z.validate()
	}
	return z
}

// ShiftedLeft returns a new Unsigned set to x << n.
func (x *Unsigned) ShiftedLeft(n uint) *Unsigned {
	return new(Unsigned).Lsh(x, n)
}

// ShiftedRight returns a new Unsigned set to x >> n.
func (x *Unsigned) ShiftedRight(n uint) *Unsigned {
	return new(Unsigned).Rsh(x, n)
}

// Sqrt sets z to ⌊√x⌋, the largest integer such that z² <= x, and returns
// z.
func (z *Unsigned) Sqrt(x *Unsigned) *Unsigned {
	z.abs = z.abs.sqrt(x.abs)
	if debugBignum {
		z.validate()
	}
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Unsigned) Cmp(y *Unsigned) int {
	return x.abs.cmp(y.abs)
}

// Equal reports whether x == y.
func (x *Unsigned) Equal(y *Unsigned) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *Unsigned) Less(y *Unsigned) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x *Unsigned) LessOrEqual(y *Unsigned) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x *Unsigned) Greater(y *Unsigned) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x *Unsigned) GreaterOrEqual(y *Unsigned) bool { return x.Cmp(y) >= 0 }

// IsZero reports whether x == 0.
func (x *Unsigned) IsZero() bool { return len(x.abs) == 0 }

// BitLen returns the length of x in bits, that is the 1-based position of
// its most significant set bit. The bit length of 0 is 0.
func (x *Unsigned) BitLen() int {
	return x.abs.bitLen()
}

// Bit returns the value of the i'th bit of x, with the least significant bit
// at position 0. The result is 0 for i >= x.BitLen().
func (x *Unsigned) Bit(i int) uint {
	if i < 0 {
		panic("negative bit index")
	}
	return x.abs.bit(uint(i))
}

func (x *Unsigned) validate() {
	if !debugBignum {
		// avoid performance bugs
		panic("validate called but debugBignum is not set")
	}
	if n := len(x.abs); n > 0 && x.abs[n-1] == 0 {
		panic(fmt.Sprintf("last word of %#v is zero", x.abs))
	}
}
