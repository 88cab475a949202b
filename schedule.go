package fips197

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/codahale/fips197/internal/gf256"
	"github.com/codahale/fips197/internal/sbox"
)

const maxRounds = 14

// A variant is the pair of parameters that distinguishes AES-128, AES-192, and AES-256.
type variant struct {
	nk int // key length in 32-bit words
	nr int // number of rounds
}

func variantFor(keyLen int) (variant, bool) {
	switch keyLen {
	case 16:
		return variant{nk: 4, nr: 10}, true
	case 24:
		return variant{nk: 6, nr: 12}, true
	case 32:
		return variant{nk: 8, nr: 14}, true
	default:
		return variant{}, false
	}
}

type word [4]byte

func (w word) rot() word {
	return word{w[1], w[2], w[3], w[0]}
}

func (w word) sub() word {
	return word{sbox.Sub(w[0]), sbox.Sub(w[1]), sbox.Sub(w[2]), sbox.Sub(w[3])}
}

func (w word) xor(v word) word {
	return word{w[0] ^ v[0], w[1] ^ v[1], w[2] ^ v[2], w[3] ^ v[3]}
}

// rcon holds x^(i-1) in GF(2^8) at index i-1.
//
//nolint:gochecknoglobals // computed once, never mutated
var rcon = func() (r [10]byte) {
	r[0] = 1
	for i := 1; i < len(r); i++ {
		r[i] = gf256.Xtime(r[i-1])
	}
	return r
}()

// A Schedule is the sequence of round keys derived from an AES key.
//
// A Schedule is immutable once created and safe for concurrent use by multiple goroutines, with the exception of
// Clear.
type Schedule struct {
	v    variant
	keys [maxRounds + 1][BlockSize]byte
}

// ExpandKey derives the key schedule for the given 16-, 24-, or 32-byte key. The key is not retained.
func ExpandKey(key []byte) (*Schedule, error) {
	v, ok := variantFor(len(key))
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}

	n := 4 * (v.nr + 1)
	w := make([]word, n)
	for i := range v.nk {
		w[i] = word(key[4*i : 4*i+4])
	}

	for i := v.nk; i < n; i++ {
		temp := w[i-1]
		switch {
		case i%v.nk == 0:
			temp = temp.rot().sub()
			temp[0] ^= rcon[i/v.nk-1]
		case v.nk == 8 && i%v.nk == 4:
			temp = temp.sub()
		}
		w[i] = w[i-v.nk].xor(temp)
	}

	s := &Schedule{v: v}
	for i := range w {
		copy(s.keys[i/4][4*(i%4):], w[i][:])
	}
	clear(w)
	return s, nil
}

// KeySize returns the length in bytes of the key the schedule was derived from.
func (s *Schedule) KeySize() int {
	return 4 * s.v.nk
}

// Rounds returns the number of rounds the cipher performs with this schedule: 10, 12, or 14.
func (s *Schedule) Rounds() int {
	return s.v.nr
}

// RoundKey returns a copy of the round key for the given round, which must be in [0, Rounds()].
func (s *Schedule) RoundKey(round int) [BlockSize]byte {
	if round < 0 || round > s.v.nr {
		panic(fmt.Sprintf("fips197: round %d out of range [0, %d]", round, s.v.nr))
	}
	return s.keys[round]
}

// Clear overwrites the round keys with zeros. It must not be called concurrently with any other use of the schedule.
func (s *Schedule) Clear() {
	clear(s.keys[:])
}

// String returns the round keys in hex, one per line.
func (s *Schedule) String() string {
	var b strings.Builder
	for i := 0; i <= s.v.nr; i++ {
		_, _ = fmt.Fprintf(&b, "round[%2d]: %s\n", i, hex.EncodeToString(s.keys[i][:]))
	}
	return b.String()
}

var _ fmt.Stringer = (*Schedule)(nil)

