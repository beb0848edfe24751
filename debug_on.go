// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bignum_debug
// +build bignum_debug

package bignum

// Build with -tags bignum_debug to have every operation check that its result
// is normalized.
const debugBignum = true
