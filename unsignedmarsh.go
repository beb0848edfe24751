// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Unsigneds.

package bignum

import "fmt"

// Gob codec version. Permits backward-compatible changes to the encoding.
const unsignedGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Unsigned) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 1+len(x.abs)*_S) // extra byte for version
	i := x.abs.bytes(buf) - 1            // i >= 0
	buf[i] = unsignedGobVersion
	return buf[i:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Unsigned) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Unsigned{}
		return nil
	}
	if buf[0] != unsignedGobVersion {
		return fmt.Errorf("Unsigned.GobDecode: encoding version %d not supported", buf[0])
	}
	z.abs = z.abs.setBytes(buf[1:])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. x is
// marshaled as plain decimal digits.
func (x *Unsigned) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.abs.utoa(10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts any literal accepted by Parse with base 0.
func (z *Unsigned) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text), 0); err != nil {
		return fmt.Errorf("bignum: cannot unmarshal %q into a *bignum.Unsigned (%w)", text, err)
	}
	return nil
}
