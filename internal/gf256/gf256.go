// Package gf256 implements arithmetic in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
//
// None of the functions branch on or index memory with their operands.
package gf256

// Poly is the reduction polynomial without its x^8 term.
const Poly = 0x1b

// Xtime multiplies a by x.
func Xtime(a byte) byte {
	return (a << 1) ^ (Poly & -(a >> 7))
}

// Mul returns the product of a and b.
func Mul(a, b byte) byte {
	var p byte
	for range 8 {
		p ^= a & -(b & 1)
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// Exp returns a raised to the nth power. The exponent is treated as public.
func Exp(a byte, n int) byte {
	r := byte(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = Mul(r, a)
		}
		a = Mul(a, a)
	}
	return r
}

// Inv returns the multiplicative inverse of a, or zero if a is zero.
func Inv(a byte) byte {
	// a^254 = a^2 * a^4 * a^8 * a^16 * a^32 * a^64 * a^128
	x2 := Mul(a, a)
	x4 := Mul(x2, x2)
	x8 := Mul(x4, x4)
	x16 := Mul(x8, x8)
	x32 := Mul(x16, x16)
	x64 := Mul(x32, x32)
	x128 := Mul(x64, x64)

	r := Mul(x2, x4)
	r = Mul(r, x8)
	r = Mul(r, x16)
	r = Mul(r, x32)
	r = Mul(r, x64)
	return Mul(r, x128)
}
