package fips197_test

import (
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"github.com/codahale/fips197"
)

func ExampleExpandKey() {
	// FIPS 197 Appendix C.1
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	// Expand the key once and reuse the schedule for every block encrypted under it.
	s, err := fips197.ExpandKey(key)
	if err != nil {
		panic(err)
	}

	ciphertext, err := fips197.EncryptBlock(s, plaintext)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", ciphertext)

	plaintext, err = fips197.DecryptBlock(s, ciphertext)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", plaintext)
	// Output:
	// 69c4e0d86a7b0430d8cdb78070b4c55a
	// 00112233445566778899aabbccddeeff
}

func ExampleEncrypt() {
	ciphertext, err := fips197.Encrypt([]byte("Thats my Kung Fu"), []byte("Two One Nine Two"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", ciphertext)
	// Output: 29c3505f571420f6402299b31a02d73a
}

func ExampleSchedule_RoundKey() {
	s, err := fips197.ExpandKey([]byte("Thats my Kung Fu"))
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Rounds())
	fmt.Printf("%x\n", s.RoundKey(s.Rounds()))
	// Output:
	// 10
	// 28fddef86da4244accc0a4fe3b316f26
}

func ExampleNewCipher() {
	// FIPS 197 Appendix C.3
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plaintext, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	block, err := fips197.NewCipher(key)
	if err != nil {
		panic(err)
	}

	// The block can be passed to any mode in crypto/cipher. Here it is used directly.
	var _ cipher.Block = block
	ciphertext := make([]byte, block.BlockSize())
	block.Encrypt(ciphertext, plaintext)
	fmt.Printf("%x\n", ciphertext)
	// Output: 8ea2b7ca516745bfeafc49904b496089
}
