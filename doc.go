// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision unsigned integer arithmetic.

The API mirrors that of *big.Int, restricted to non-negative values. An Unsigned
is stored as a little-endian slice of machine Words, always normalized: the most
significant Word is never zero and the value 0 is the empty slice.

The zero value for an Unsigned corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Unsigned)  // x is an *Unsigned of value 0

Alternatively, new Unsigned values can be allocated and initialized with the
function:

	func New(x uint64) *Unsigned

or parsed from a C style integer literal ("0x" prefix for hexadecimal, "0"
prefix for octal, decimal otherwise):

	y, err := Parse("0xfeedbabe")

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Unsigned) SetV(v V) *Unsigned                 // z = v
	func (z *Unsigned) Binary(x, y *Unsigned) *Unsigned    // z = x binary y
	func (x *Unsigned) Pred() P                            // p = pred(x)

For binary operations, the result is the receiver (usually named z in that
case); if it is one of the operands x or y it may be safely overwritten (and its
memory reused).

Arithmetic expressions are typically written as a sequence of individual method
calls, with each call corresponding to an operation. The receiver denotes the
result and the method arguments are the operation's operands. For instance,
given three *Unsigned values a, b and c, the invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever value
was held in c before. Unless specified otherwise, operations permit aliasing of
parameters, so it is perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

Operations that can fail, because the result would be negative (Sub, Dec) or
because of a division by zero (Quo, Rem, QuoRem), return an error as second
result. In that case the receiver is left unchanged. Errors are of type *Error
and can be tested with errors.Is against ErrUnderflow, ErrDivisionByZero and
ErrInvalidCharacter. See package bignum/context for a way to chain such
operations and check for errors once.

For convenience, methods like Plus, Minus, Times or DividedBy return their
result in a newly allocated Unsigned:

	d, err := a.Times(b).Minus(c)

Finally, *Unsigned satisfies the fmt package's Scanner interface for scanning
and the Formatter interface for formatted printing, as well as the
encoding.TextMarshaler and encoding.TextUnmarshaler interfaces.
*/
package bignum
