// Package bitslice implements the AES SubBytes and InvSubBytes transformations over a full 16-byte
// state in constant time.
//
// The state is transposed into eight 16-bit planes, where plane k holds bit k of every byte. The
// S-box is then evaluated as a circuit over the planes (inversion in GF(2^8) via x^254, followed by
// the affine transform), so no secret byte is ever used as a table index or branch condition.
package bitslice

// SubBytes replaces every byte of s with its forward S-box value.
func SubBytes(s *[16]byte) {
	*s = unpack(affine(inv(pack(s))))
}

// InvSubBytes replaces every byte of s with its inverse S-box value.
func InvSubBytes(s *[16]byte) {
	*s = unpack(inv(invAffine(pack(s))))
}

func pack(s *[16]byte) (q [8]uint16) {
	for i := range 16 {
		b := uint16(s[i])
		m := uint16(1) << i
		q[0] |= (b & 1) * m
		q[1] |= ((b >> 1) & 1) * m
		q[2] |= ((b >> 2) & 1) * m
		q[3] |= ((b >> 3) & 1) * m
		q[4] |= ((b >> 4) & 1) * m
		q[5] |= ((b >> 5) & 1) * m
		q[6] |= ((b >> 6) & 1) * m
		q[7] |= ((b >> 7) & 1) * m
	}
	return q
}

func unpack(q [8]uint16) (s [16]byte) {
	for i := range 16 {
		m := uint16(1) << i
		b := (q[0] & m) >> i
		b |= ((q[1] & m) >> i) << 1
		b |= ((q[2] & m) >> i) << 2
		b |= ((q[3] & m) >> i) << 3
		b |= ((q[4] & m) >> i) << 4
		b |= ((q[5] & m) >> i) << 5
		b |= ((q[6] & m) >> i) << 6
		b |= ((q[7] & m) >> i) << 7
		s[i] = byte(b)
	}
	return s
}

func mul(a, b [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		for j := range 8 {
			p[i+j] ^= a[i] & b[j]
		}
	}
	return reduce(&p)
}

func sq(a [8]uint16) [8]uint16 {
	// Squaring is linear over GF(2): only the even-degree terms survive.
	var p [15]uint16
	for i := range 8 {
		p[2*i] = a[i]
	}
	return reduce(&p)
}

func reduce(p *[15]uint16) [8]uint16 {
	// x^8 = x^4 + x^3 + x + 1
	for i := 14; i >= 8; i-- {
		v := p[i]
		p[i-4] ^= v
		p[i-5] ^= v
		p[i-7] ^= v
		p[i-8] ^= v
	}
	var r [8]uint16
	copy(r[:], p[:8])
	return r
}

func inv(a [8]uint16) [8]uint16 {
	// x^254 = x^2 * x^4 * x^8 * x^16 * x^32 * x^64 * x^128
	x2 := sq(a)
	x4 := sq(x2)
	x8 := sq(x4)
	x16 := sq(x8)
	x32 := sq(x16)
	x64 := sq(x32)
	x128 := sq(x64)

	r := mul(x2, x4)
	r = mul(r, x8)
	r = mul(r, x16)
	r = mul(r, x32)
	r = mul(r, x64)
	return mul(r, x128)
}

func affine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[i] ^ a[(i+4)%8] ^ a[(i+5)%8] ^ a[(i+6)%8] ^ a[(i+7)%8]
	}
	// 0x63
	s[0] = ^s[0]
	s[1] = ^s[1]
	s[5] = ^s[5]
	s[6] = ^s[6]
	return s
}

func invAffine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[(i+2)%8] ^ a[(i+5)%8] ^ a[(i+7)%8]
	}
	// 0x05
	s[0] = ^s[0]
	s[2] = ^s[2]
	return s
}
