// Package fips197 implements the [AES] block cipher with 128-, 192-, and 256-bit keys.
//
// A key is expanded once into a [Schedule], which is immutable and may be shared by any number of goroutines
// encrypting or decrypting independent 16-byte blocks. Byte substitution is evaluated as a bitsliced circuit and all
// GF(2^8) arithmetic is branch-free, so the running time and memory access pattern of the cipher do not depend on the
// key or the data.
//
// This package provides the block cipher primitive only. It offers no confidentiality for more than one block and no
// integrity at all; use [NewCipher] with a mode of operation from [crypto/cipher] for anything else.
//
// [AES]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.197-upd1.pdf
package fips197

import (
	"errors"
	"fmt"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

var (
	// ErrInvalidKeyLength is returned when a key is not 16, 24, or 32 bytes long.
	ErrInvalidKeyLength = errors.New("fips197: invalid key length")

	// ErrInvalidBlockLength is returned when a plaintext or ciphertext block is not exactly 16 bytes long.
	ErrInvalidBlockLength = errors.New("fips197: invalid block length")
)

// EncryptBlock encrypts a single 16-byte plaintext block with the given key schedule and returns the ciphertext.
func EncryptBlock(s *Schedule, plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockLength, len(plaintext))
	}

	ciphertext := make([]byte, BlockSize)
	s.encrypt((*[BlockSize]byte)(ciphertext), (*[BlockSize]byte)(plaintext))
	return ciphertext, nil
}

// DecryptBlock decrypts a single 16-byte ciphertext block with the given key schedule and returns the plaintext.
//
// There is no integrity check: a corrupted ciphertext or the wrong key yields the wrong plaintext, not an error.
func DecryptBlock(s *Schedule, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockLength, len(ciphertext))
	}

	plaintext := make([]byte, BlockSize)
	s.decrypt((*[BlockSize]byte)(plaintext), (*[BlockSize]byte)(ciphertext))
	return plaintext, nil
}

// Encrypt expands the key, encrypts a single 16-byte block, and wipes the key schedule.
//
// Use ExpandKey and EncryptBlock to encrypt more than one block under the same key.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	return oneShot(key, plaintext, EncryptBlock)
}

// Decrypt expands the key, decrypts a single 16-byte block, and wipes the key schedule.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	return oneShot(key, ciphertext, DecryptBlock)
}

func oneShot(key, in []byte, f func(*Schedule, []byte) ([]byte, error)) ([]byte, error) {
	// Check the block first so that a bad block never costs a key expansion.
	if len(in) != BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockLength, len(in))
	}

	s, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	defer s.Clear()

	return f(s, in)
}
