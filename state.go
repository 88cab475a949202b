package fips197

import (
	"github.com/codahale/fips197/internal/bitslice"
	"github.com/codahale/fips197/internal/gf256"
	"github.com/codahale/fips197/internal/mem"
)

// A state is the 4x4 byte matrix a block is transformed in. It is stored column-major, so row r of column c is at
// index r+4c, which is also the order of the bytes of the input and output blocks.
type state [BlockSize]byte

func (s *state) addRoundKey(rk *[BlockSize]byte) {
	mem.XOR(s[:], s[:], rk[:])
}

func (s *state) subBytes() {
	bitslice.SubBytes((*[BlockSize]byte)(s))
}

func (s *state) invSubBytes() {
	bitslice.InvSubBytes((*[BlockSize]byte)(s))
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := range 4 {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := range 4 {
			s[r+4*((c+r)%4)] = t[r+4*c]
		}
	}
}

// mixColumns multiplies each column by the circulant matrix (02 03 01 01).
func (s *state) mixColumns() {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3

		// 02*a + 03*b + c + d = a ^ t ^ 02*(a ^ b)
		s[c] = a0 ^ t ^ gf256.Xtime(a0^a1)
		s[c+1] = a1 ^ t ^ gf256.Xtime(a1^a2)
		s[c+2] = a2 ^ t ^ gf256.Xtime(a2^a3)
		s[c+3] = a3 ^ t ^ gf256.Xtime(a3^a0)
	}
}

// invMixColumns multiplies each column by the circulant matrix (0e 0b 0d 09).
func (s *state) invMixColumns() {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]

		s[c] = gf256.Mul(0x0e, a0) ^ gf256.Mul(0x0b, a1) ^ gf256.Mul(0x0d, a2) ^ gf256.Mul(0x09, a3)
		s[c+1] = gf256.Mul(0x09, a0) ^ gf256.Mul(0x0e, a1) ^ gf256.Mul(0x0b, a2) ^ gf256.Mul(0x0d, a3)
		s[c+2] = gf256.Mul(0x0d, a0) ^ gf256.Mul(0x09, a1) ^ gf256.Mul(0x0e, a2) ^ gf256.Mul(0x0b, a3)
		s[c+3] = gf256.Mul(0x0b, a0) ^ gf256.Mul(0x0d, a1) ^ gf256.Mul(0x09, a2) ^ gf256.Mul(0x0e, a3)
	}
}
