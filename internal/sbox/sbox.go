// Package sbox implements the AES substitution box and its inverse.
//
// Sub and InvSub compute the substitution arithmetically, so their running time and memory access
// pattern do not depend on the input. Forward and Inverse return the full tables, which are public
// data and are intended for inspection and testing rather than for substituting secret bytes.
package sbox

import (
	"math/bits"
	"sync"

	"github.com/codahale/fips197/internal/gf256"
)

const (
	affineConst    = 0x63
	invAffineConst = 0x05
)

// Sub returns the forward substitution of b: its inverse in GF(2^8) followed by the affine transform.
func Sub(b byte) byte {
	return affine(gf256.Inv(b))
}

// InvSub returns the inverse substitution of b.
func InvSub(b byte) byte {
	return gf256.Inv(invAffine(b))
}

// Forward returns a copy of the forward substitution table.
func Forward() [256]byte {
	return tables().fwd
}

// Inverse returns a copy of the inverse substitution table.
func Inverse() [256]byte {
	return tables().inv
}

// affine computes b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^ 0x63.
func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^ bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^ affineConst
}

// invAffine computes rotl(b,1) ^ rotl(b,3) ^ rotl(b,6) ^ 0x05.
func invAffine(b byte) byte {
	return bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 6) ^ invAffineConst
}

type sboxes struct {
	fwd, inv [256]byte
}

//nolint:gochecknoglobals // computed once, never mutated
var tables = sync.OnceValue(func() *sboxes {
	t := new(sboxes)
	for i := range 256 {
		t.fwd[i] = Sub(byte(i))
		t.inv[i] = InvSub(byte(i))
	}
	return t
})
