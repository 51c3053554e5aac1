// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vint

import (
	"math"
	"testing"
)

func TestAppendDecodeRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 2, 3, 127, 128, 129, 16383, 16384, 16385,
		1 << 21, 1<<21 - 1, 1 << 28, math.MaxUint32, math.MaxUint64}
	for _, v := range vals {
		buf := Append(nil, v)
		got, n, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode(Append(%d)): %v", v, err)
		}
		if n != len(buf) {
			t.Fatalf("Decode(Append(%d)) consumed %d bytes, want %d", v, n, len(buf))
		}
		if got != v {
			t.Fatalf("Decode(Append(%d)) = %d", v, got)
		}
	}
}

func TestLiteralEncodings(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, c := range cases {
		got := Append(nil, c.v)
		if string(got) != string(c.want) {
			t.Errorf("Append(%d) = % x, want % x", c.v, got, c.want)
		}
	}
}

func TestDecodeStream(t *testing.T) {
	xs := []uint64{0, 1, 2, 3, 1000000, 42}
	var buf []byte
	for _, x := range xs {
		buf = Append(buf, x)
	}
	var got []uint64
	for len(buf) > 0 {
		v, n, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got = append(got, v)
		buf = buf[n:]
	}
	if len(got) != len(xs) {
		t.Fatalf("got %d values, want %d", len(got), len(xs))
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Errorf("value #%d = %d, want %d", i, got[i], xs[i])
		}
	}
}

func TestPartialVInt(t *testing.T) {
	buf := []byte{0x80, 0x80}
	_, _, err := Decode(buf)
	if err != ErrPartial {
		t.Fatalf("Decode(%x) err = %v, want ErrPartial", buf, err)
	}
}

func TestOverflow(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf = append(buf, 0x01)
	_, _, err := Decode(buf)
	if err != ErrOverflow {
		t.Fatalf("Decode(long stream) err = %v, want ErrOverflow", err)
	}
}
