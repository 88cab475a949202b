package fips197

import "crypto/cipher"

// NewCipher returns a cipher.Block backed by the key schedule for the given 16-, 24-, or 32-byte key, for use with
// the modes of operation in crypto/cipher.
//
// As required by the cipher.Block interface, Encrypt and Decrypt panic if either buffer is shorter than BlockSize.
func NewCipher(key []byte) (cipher.Block, error) {
	s, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &block{s: s}, nil
}

type block struct {
	s *Schedule
}

func (b *block) BlockSize() int {
	return BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b.s.encrypt((*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
}

func (b *block) Decrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b.s.decrypt((*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
}

func checkBuffers(dst, src []byte) {
	if len(src) < BlockSize {
		panic("fips197: input not full block")
	}
	if len(dst) < BlockSize {
		panic("fips197: output not full block")
	}
}

var _ cipher.Block = (*block)(nil)
