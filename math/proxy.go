// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/bignum"

// Sqrt sets z to ⌊√x⌋ and returns it.
//
// This function is a proxy for z.Sqrt(x).
func Sqrt(z, x *bignum.Unsigned) *bignum.Unsigned {
	return z.Sqrt(x)
}

