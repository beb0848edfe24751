// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Unsigned-to-string conversion functions.

package bignum

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var unsignedZero Unsigned

// Parse parses s as an unsigned integer literal in the given conversion base
// and sets z to its value. The entire string (not just a prefix) must be
// consumed for success.
//
// The base argument must be 0, 2, 8, 10 or 16. Providing an invalid base
// argument will lead to a run-time panic.
//
// For base 0, the number prefix determines the actual base, as for C integer
// literals: A prefix of "0x" or "0X" selects base 16, and a "0" prefix selects
// base 8. Otherwise, the actual base is 10. For an explicit base no prefix is
// accepted, and the empty string denotes 0. Hexadecimal digits may be upper
// or lower case.
//
// If s contains a character that is not a valid digit, Parse returns a nil
// *Unsigned and an error matching ErrInvalidCharacter; z is left unchanged.
func (z *Unsigned) Parse(s string, base int) (*Unsigned, error) {
	r := strings.NewReader(s)
	abs, _, _, err := nat(nil).scan(r, base)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, errorf(e.Kind, "Parse: %q: %s", s, e.Msg)
		}
		return nil, err
	}

	// entire string must have been consumed
	if ch, err := r.ReadByte(); err == nil {
		return nil, errorf(InvalidCharacter, "Parse: invalid character %q at offset %d in %q", ch, len(s)-r.Len()-1, s)
	} else if err != io.EOF {
		return nil, err
	}

	z.abs = abs
	if debugBignum {
		z.validate()
	}
	return z, nil
}

// SetString sets z to the value of s, interpreted in the given base, and
// returns z and a boolean indicating success. See Parse for the accepted
// syntax. If SetString fails, the value of z is unchanged but the returned
// value is nil.
func (z *Unsigned) SetString(s string, base int) (*Unsigned, bool) {
	if u, err := z.Parse(s, base); err == nil {
		return u, true
	}
	return nil, false
}

// Parse returns a new Unsigned set to the value of the integer literal s. A
// "0x" or "0X" prefix selects hexadecimal, a leading "0" selects octal, and
// anything else is read as decimal.
func Parse(s string) (*Unsigned, error) {
	return new(Unsigned).Parse(s, 0)
}

// ParseDecimal returns a new Unsigned set to the value of the decimal digits
// in s.
func ParseDecimal(s string) (*Unsigned, error) {
	return new(Unsigned).Parse(s, 10)
}

// ParseHexadecimal returns a new Unsigned set to the value of the hexadecimal
// digits in s. s must not have a "0x" prefix.
func ParseHexadecimal(s string) (*Unsigned, error) {
	return new(Unsigned).Parse(s, 16)
}

// ParseOctal returns a new Unsigned set to the value of the octal digits in
// s.
func ParseOctal(s string) (*Unsigned, error) {
	return new(Unsigned).Parse(s, 8)
}

// String returns the decimal representation of x.
func (x *Unsigned) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.utoa(10))
}

// Text returns the string representation of x in the given base, without a
// base prefix. Base must be 2, 8, 10 or 16. Hexadecimal digits are lower
// case. A nil pointer renders as "<nil>".
func (x *Unsigned) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.utoa(base))
}

// Append appends the string representation of x, as generated by
// x.Text(base), to buf and returns the extended buffer.
func (x *Unsigned) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.utoa(base)...)
}

// DecimalString returns the decimal representation of x.
func (x *Unsigned) DecimalString() string { return x.Text(10) }

// HexadecimalString returns the hexadecimal representation of x, without a
// prefix, with upper or lower case digits.
func (x *Unsigned) HexadecimalString(upper bool) string {
	if x == nil {
		return "<nil>"
	}
	if upper {
		return string(x.abs.itoa(upperDigits))
	}
	return x.Text(16)
}

// OctalString returns the octal representation of x, without a prefix.
func (x *Unsigned) OctalString() string { return x.Text(8) }

func charset(ch rune) string {
	switch ch {
	case 'b':
		return lowerDigits[0:2]
	case 'o', 'O':
		return lowerDigits[0:8]
	case 'd', 's', 'v':
		return lowerDigits[0:10]
	case 'x':
		return lowerDigits[0:16]
	case 'X':
		return upperDigits[0:16]
	}
	return "" // unknown format
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = &unsignedZero // *Unsigned must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the formats 'b' (binary), 'o'
// (octal), 'O' (octal with 0o prefix), 'd', 's', 'v' (decimal), 'x' (lowercase
// hexadecimal), and 'X' (uppercase hexadecimal). Also supported are the flag
// '#' for a leading zero in octal and a leading "0x" or "0X" for "%#x" and
// "%#X" respectively, specification of minimum digits precision, output field
// width, space or zero padding, and left or right justification. The sign
// flags '+' and ' ' are ignored.
func (x *Unsigned) Format(s fmt.State, ch rune) {
	cs := charset(ch)

	// special cases
	switch {
	case cs == "":
		// unknown format
		fmt.Fprintf(s, "%%!%c(bignum.Unsigned=%s)", ch, x.String())
		return
	case x == nil:
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine prefix characters for indicating output base
	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'o': // octal
			prefix = "0"
		case 'x': // hexadecimal
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digits := string(x.abs.itoa(cs))

	// number of characters for the three classes of number padding
	var left int   // space characters to left of digits for right justification ("%8d")
	var zeroes int // zero characters (actually cs[0]) as left-most digits ("%.8d")
	var right int  // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeroes = precision - len(digits) // count of zero padding
		case digits == "0" && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field pad from width: the least number of characters to output
	length := len(prefix) + zeroes + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeroes unless precision also specified
			zeroes = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][prefix][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

var _ fmt.Scanner = &unsignedZero // *Unsigned must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the formats 'b' (binary), 'o', 'O' (octal), 'd'
// (decimal), 'x', 'X' (hexadecimal), 's' and 'v' (base determined by the
// literal's prefix, see Parse). Scanning stops at the first character that
// is not a digit.
func (z *Unsigned) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace() // skip leading space characters
	base := 0
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd':
		base = 10
	case 'x', 'X':
		base = 16
	case 's', 'v':
		// let scan determine the base
	default:
		return errors.New("Unsigned.Scan: invalid verb")
	}
	abs, _, count, err := nat(nil).scan(byteReader{s}, base)
	if err != nil {
		return err
	}
	if count == 0 {
		return errNoDigits
	}
	z.abs = abs
	return nil
}
