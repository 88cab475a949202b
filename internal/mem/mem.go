// Package mem provides small byte-slice helpers shared by the cipher.
package mem

import "crypto/subtle"

// XOR sets dst[i] = a[i] ^ b[i] for every index of dst. Slices of a single AES block or less use a scalar loop;
// longer slices use subtle.XORBytes.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}
