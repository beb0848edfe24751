// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

var (
	// required implemented interfaces
	_ fmt.Stringer             = &unsignedZero
	_ fmt.Scanner              = &unsignedZero
	_ fmt.Formatter            = &unsignedZero
	_ encoding.TextMarshaler   = &unsignedZero
	_ encoding.TextUnmarshaler = &unsignedZero
	_ gob.GobEncoder           = &unsignedZero
	_ gob.GobDecoder           = &unsignedZero
)

func lowerHex(x *Unsigned) string { return x.HexadecimalString(false) }
func upperHex(x *Unsigned) string { return x.HexadecimalString(true) }

func TestUnsignedConvert(t *testing.T) {
	for i, test := range []struct {
		parse  func(string) (*Unsigned, error)
		render func(*Unsigned) string
		in     string
		out    string
	}{
		{ParseDecimal, (*Unsigned).DecimalString, "0", "0"},
		{ParseDecimal, (*Unsigned).DecimalString, "1234567890123456789012345678901234567890", "1234567890123456789012345678901234567890"},
		{ParseDecimal, (*Unsigned).DecimalString, "0001", "1"},
		{ParseDecimal, (*Unsigned).DecimalString, "", "0"},
		{ParseHexadecimal, lowerHex, "feedbabefeedbabefeedbabefeedbabe", "feedbabefeedbabefeedbabefeedbabe"},
		{ParseHexadecimal, upperHex, "FeedBabeFeedBabeFeedBabeFeedBabe", "FEEDBABEFEEDBABEFEEDBABEFEEDBABE"},
		{ParseHexadecimal, lowerHex, "0", "0"},
		{ParseHexadecimal, upperHex, "0", "0"},
		{ParseOctal, (*Unsigned).OctalString, "0", "0"},
		{ParseOctal, (*Unsigned).OctalString, "12345670123456701234567012345670", "12345670123456701234567012345670"},
		{ParseOctal, lowerHex, "777", "1ff"},
		{Parse, (*Unsigned).OctalString, "012345670123456701234567012345670", "12345670123456701234567012345670"},
		{Parse, lowerHex, "0xfeedbabefeedbabefeedbabefeedbabe", "feedbabefeedbabefeedbabefeedbabe"},
		{Parse, (*Unsigned).DecimalString, "0X1F", "31"},
		{Parse, (*Unsigned).DecimalString, "0", "0"},
		{Parse, (*Unsigned).DecimalString, "0x", "0"},
		{Parse, (*Unsigned).DecimalString, "0X", "0"},
		{Parse, (*Unsigned).DecimalString, "", "0"},
		{Parse, (*Unsigned).DecimalString, "18446744073709551616", "18446744073709551616"},
		{Parse, (*Unsigned).String, "0x1234567890abcdef", "1311768467294899695"},
	} {
		x, err := test.parse(test.in)
		if err != nil {
			t.Errorf("#%d: %q: unexpected error %v", i, test.in, err)
			continue
		}
		if got := test.render(x); got != test.out {
			t.Errorf("#%d: %q: got %s; want %s", i, test.in, got, test.out)
		}
	}
}

func TestUnsignedParseErrors(t *testing.T) {
	for i, test := range []struct {
		s    string
		base int
		msg  string
	}{
		{"0xg", 0, `bignum: Parse: invalid character 'g' at offset 2 in "0xg"`},
		{"0x12z", 0, `bignum: Parse: invalid character 'z' at offset 4 in "0x12z"`},
		{"019", 0, `bignum: Parse: invalid character '9' at offset 2 in "019"`},
		{"12a45", 0, `bignum: Parse: invalid character 'a' at offset 2 in "12a45"`},
		{"12a45", 10, `bignum: Parse: invalid character 'a' at offset 2 in "12a45"`},
		{"0xff", 16, `bignum: Parse: invalid character 'x' at offset 1 in "0xff"`},
		{"128", 8, `bignum: Parse: invalid character '8' at offset 2 in "128"`},
		{"-1", 10, `bignum: Parse: invalid character '-' at offset 0 in "-1"`},
		{" 1", 10, `bignum: Parse: invalid character ' ' at offset 0 in " 1"`},
		{"1 ", 10, `bignum: Parse: invalid character ' ' at offset 1 in "1 "`},
		{"1012", 2, `bignum: Parse: invalid character '2' at offset 3 in "1012"`},
	} {
		z := New(42)
		x, err := z.Parse(test.s, test.base)
		if x != nil {
			t.Errorf("#%d: got result %v; want nil", i, x)
		}
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("#%d: got error %v; want %v", i, err, ErrInvalidCharacter)
			continue
		}
		if err.Error() != test.msg {
			t.Errorf("#%d: got message %q; want %q", i, err.Error(), test.msg)
		}
		if z.Uint64() != 42 {
			t.Errorf("#%d: failed Parse modified its receiver: %v", i, z)
		}
		if _, ok := z.SetString(test.s, test.base); ok {
			t.Errorf("#%d: SetString succeeded", i)
		}
	}
	if z, ok := new(Unsigned).SetString("ff", 16); !ok || z.Uint64() != 255 {
		t.Errorf("SetString(ff, 16) = %v, %v", z, ok)
	}
}

func TestUnsignedParseInvalidBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Parse with base 36 did not panic")
		}
	}()
	new(Unsigned).Parse("12", 36)
}

func TestUnsignedText(t *testing.T) {
	x := MustParse("0xfeedbabe")
	for i, test := range []struct {
		base int
		want string
	}{
		{2, "11111110111011011011101010111110"},
		{8, "37673335276"},
		{10, "4276992702"},
		{16, "feedbabe"},
	} {
		if got := x.Text(test.base); got != test.want {
			t.Errorf("#%d: Text(%d) = %s; want %s", i, test.base, got, test.want)
		}
		if got := string(x.Append([]byte("x="), test.base)); got != "x="+test.want {
			t.Errorf("#%d: Append(%d) = %s", i, test.base, got)
		}
		if got := new(Unsigned).Text(test.base); got != "0" {
			t.Errorf("#%d: zero Text(%d) = %s; want 0", i, test.base, got)
		}
	}

	var n *Unsigned
	if s := n.String(); s != "<nil>" {
		t.Errorf("nil String() = %s", s)
	}
	if s := n.Text(16); s != "<nil>" {
		t.Errorf("nil Text() = %s", s)
	}
	for i, s := range []string{n.DecimalString(), lowerHex(n), upperHex(n), n.OctalString(), string(n.Append(nil, 10))} {
		if s != "<nil>" {
			t.Errorf("#%d: nil renders as %s", i, s)
		}
	}
}

// TestUnsignedRoundTrip renders random values in every base, with and
// without prefix, and parses them back.
func TestUnsignedRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := &Unsigned{rndNat(rnd.Intn(10))}
		for _, base := range []int{2, 8, 10, 16} {
			s := x.Text(base)
			y, err := new(Unsigned).Parse(s, base)
			if err != nil || !y.Equal(x) {
				t.Fatalf("Parse(%s, %d) = %v, %v; want %v", s, base, y, err, x)
			}
		}
		for _, s := range []string{
			x.DecimalString(),
			"0x" + x.HexadecimalString(false),
			"0X" + x.HexadecimalString(true),
			"0" + x.OctalString(),
		} {
			y, err := Parse(s)
			if err != nil || !y.Equal(x) {
				t.Fatalf("Parse(%s) = %v, %v; want %v", s, y, err, x)
			}
		}
	}
}

var formatTests = []struct {
	input  string
	format string
	output string
}{
	{"<nil>", "%x", "<nil>"},
	{"<nil>", "%#x", "<nil>"},
	{"<nil>", "%#y", "%!y(bignum.Unsigned=<nil>)"},

	{"10", "%b", "1010"},
	{"10", "%o", "12"},
	{"10", "%d", "10"},
	{"10", "%v", "10"},
	{"10", "%s", "10"},
	{"10", "%x", "a"},
	{"10", "%X", "A"},
	{"10", "%y", "%!y(bignum.Unsigned=10)"},

	{"10", "%+b", "1010"},
	{"10", "%+d", "10"},
	{"10", "% d", "10"},
	{"10", "%#b", "1010"},
	{"10", "%#o", "012"},
	{"10", "%O", "0o12"},
	{"10", "%#d", "10"},
	{"10", "%#v", "10"},
	{"10", "%#x", "0xa"},
	{"10", "%#X", "0XA"},

	{"1234", "%d", "1234"},
	{"1234", "%3d", "1234"},
	{"1234", "%4d", "1234"},
	{"1234", "%.4d", "1234"},
	{"1234", "%5d", " 1234"},
	{"1234", "%-5d", "1234 "},
	{"1234", "%05d", "01234"},
	{"1234", "%.5d", "01234"},
	{"1234", "%8.5d", "   01234"},
	{"1234", "%-8.5d", "01234   "},
	{"1234", "%+8.5d", "   01234"},
	{"1234", "%#8.5x", " 0x004d2"},
	{"1234", "%#-8.5x", "0x004d2 "},
	{"1234", "%#08x", "0x0004d2"},

	{"0", "%d", "0"},
	{"0", "%x", "0"},
	{"0", "%#x", "0x0"},
	{"0", "%.d", ""},
	{"0", "%.0d", ""},
	{"0", "%3.d", ""},

	{"0xfeedbabefeedbabefeedbabefeedbabe", "%x", "feedbabefeedbabefeedbabefeedbabe"},
	{"0xfeedbabefeedbabefeedbabefeedbabe", "%X", "FEEDBABEFEEDBABEFEEDBABEFEEDBABE"},
	{"0xfeedbabefeedbabefeedbabefeedbabe", "%d", "338858272945275132583738764017244420798"},
	{"0xfeedbabefeedbabefeedbabefeedbabe", "%o", "3767333527677566672575773555653737673335276"},
}

func TestUnsignedFormat(t *testing.T) {
	for i, test := range formatTests {
		var x *Unsigned
		if test.input != "<nil>" {
			x = MustParse(test.input)
		}
		output := fmt.Sprintf(test.format, x)
		if output != test.output {
			t.Errorf("#%d got %q; want %q, {%q, %q, %q}", i, output, test.output, test.input, test.format, test.output)
		}
	}
}

var scanTests = []struct {
	input     string
	format    string
	output    string
	remaining int
}{
	{"1010", "%b", "10", 0},
	{"0b1010", "%v", "0", 5},
	{"12", "%o", "10", 0},
	{"012", "%v", "10", 0},
	{"10", "%d", "10", 0},
	{"10", "%v", "10", 0},
	{"a", "%x", "10", 0},
	{"0xa", "%v", "10", 0},
	{"A", "%X", "10", 0},
	{"FEEDBABEFEEDBABEFEEDBABEFEEDBABE", "%X", "338858272945275132583738764017244420798", 0},
	{"42 rest", "%d", "42", 5},
	{"  42", "%d", "42", 0},
}

func TestUnsignedScan(t *testing.T) {
	var buf bytes.Buffer
	for i, test := range scanTests {
		x := new(Unsigned)
		buf.Reset()
		buf.WriteString(test.input)
		if _, err := fmt.Fscanf(&buf, test.format, x); err != nil {
			t.Errorf("#%d error: %s", i, err)
		}
		if x.String() != test.output {
			t.Errorf("#%d got %s; want %s", i, x.String(), test.output)
		}
		if buf.Len() != test.remaining {
			t.Errorf("#%d got %d bytes remaining; want %d", i, buf.Len(), test.remaining)
		}
	}
}

func TestUnsignedScanErrors(t *testing.T) {
	for i, test := range []struct {
		input  string
		format string
	}{
		{"xyz", "%d"},
		{"0x", "%v"},
		{"g", "%x"},
		{"12", "%q"},
	} {
		x := New(7)
		if _, err := fmt.Sscanf(test.input, test.format, x); err == nil {
			t.Errorf("#%d: scanning %q with %s: expected error", i, test.input, test.format)
		}
		if x.Uint64() != 7 {
			t.Errorf("#%d: failed Scan modified its receiver: %v", i, x)
		}
	}
	_, err := fmt.Sscan("xyz", new(Unsigned))
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("got error %v; want %v", err, ErrInvalidCharacter)
	}
}

func TestUnsignedMarshalText(t *testing.T) {
	for i, s := range []string{"0", "1", "0xfeedbabefeedbabefeedbabefeedbabe", "012345670123456701234567012345670"} {
		x := MustParse(s)
		text, err := x.MarshalText()
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if string(text) != x.DecimalString() {
			t.Errorf("#%d: MarshalText = %s; want %s", i, text, x.DecimalString())
		}
		var y Unsigned
		if err = y.UnmarshalText(text); err != nil || !y.Equal(x) {
			t.Errorf("#%d: UnmarshalText(%s) = %v, %v", i, text, &y, err)
		}
		// any base 0 literal is accepted
		if err = y.UnmarshalText([]byte(s)); err != nil || !y.Equal(x) {
			t.Errorf("#%d: UnmarshalText(%s) = %v, %v", i, s, &y, err)
		}
	}

	var y Unsigned
	err := y.UnmarshalText([]byte("12z"))
	if !errors.Is(err, ErrInvalidCharacter) || !strings.HasPrefix(err.Error(), "bignum: cannot unmarshal \"12z\"") {
		t.Errorf("got error %v", err)
	}
}

func TestUnsignedJSON(t *testing.T) {
	type account struct {
		Balance *Unsigned `json:"balance"`
	}
	in := account{MustParse("0xfeedbabefeedbabefeedbabefeedbabe")}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"balance":"338858272945275132583738764017244420798"}`; string(b) != want {
		t.Errorf("got %s; want %s", b, want)
	}
	var out account
	if err = json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Balance.Equal(in.Balance) {
		t.Errorf("got %v; want %v", out.Balance, in.Balance)
	}
	if err = json.Unmarshal([]byte(`{"balance":"0xq"}`), &out); err == nil {
		t.Error("expected error")
	}
}

func TestUnsignedGob(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for i, s := range []string{"0", "1", "0xff", "0x100", "0xfeedbabefeedbabefeedbabefeedbabe", "1" + strings.Repeat("0", 100)} {
		medium.Reset()
		x := MustParse(s)
		if err := enc.Encode(x); err != nil {
			t.Errorf("#%d: encoding failed: %s", i, err)
			continue
		}
		var y Unsigned
		if err := dec.Decode(&y); err != nil {
			t.Errorf("#%d: decoding failed: %s", i, err)
			continue
		}
		if !y.Equal(x) {
			t.Errorf("#%d: transmission failed: got %v; want %v", i, &y, x)
		}
	}

	// nil and version errors
	if buf, err := (*Unsigned)(nil).GobEncode(); buf != nil || err != nil {
		t.Errorf("nil GobEncode = %v, %v", buf, err)
	}
	z := New(5)
	if err := z.GobDecode(nil); err != nil || !z.IsZero() {
		t.Errorf("GobDecode(nil) = %v, %v", z, err)
	}
	if err := z.GobDecode([]byte{2, 1}); err == nil {
		t.Error("GobDecode with version 2 succeeded")
	}
}
