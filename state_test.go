package fips197 //nolint:testpackage // testing unexported internals

import (
	"encoding/hex"
	"testing"
)

func mustState(t *testing.T, s string) state {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil || len(b) != BlockSize {
		t.Fatalf("bad state %q", s)
	}
	return state(b)
}

// The intermediate values below are round 1 of FIPS 197 Appendix B.
const (
	afterAddRoundKey = "193de3bea0f4e22b9ac68d2ae9f84808"
	afterSubBytes    = "d42711aee0bf98f1b8b45de51e415230"
	afterShiftRows   = "d4bf5d30e0b452aeb84111f11e2798e5"
	afterMixColumns  = "046681e5e0cb199a48f8d37a2806264c"
)

func TestSubBytes(t *testing.T) {
	s := mustState(t, afterAddRoundKey)
	s.subBytes()
	if got, want := s, mustState(t, afterSubBytes); got != want {
		t.Errorf("subBytes() = %x, want = %x", got, want)
	}

	s.invSubBytes()
	if got, want := s, mustState(t, afterAddRoundKey); got != want {
		t.Errorf("invSubBytes() = %x, want = %x", got, want)
	}
}

func TestShiftRows(t *testing.T) {
	s := mustState(t, afterSubBytes)
	s.shiftRows()
	if got, want := s, mustState(t, afterShiftRows); got != want {
		t.Errorf("shiftRows() = %x, want = %x", got, want)
	}

	s.invShiftRows()
	if got, want := s, mustState(t, afterSubBytes); got != want {
		t.Errorf("invShiftRows() = %x, want = %x", got, want)
	}
}

func TestShiftRowsPositions(t *testing.T) {
	var s state
	for i := range s {
		s[i] = byte(i)
	}
	s.shiftRows()

	// Row r of column c comes from row r of column c+r.
	want := state{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if s != want {
		t.Errorf("shiftRows() = %v, want = %v", s, want)
	}
}

func TestMixColumns(t *testing.T) {
	s := mustState(t, afterShiftRows)
	s.mixColumns()
	if got, want := s, mustState(t, afterMixColumns); got != want {
		t.Errorf("mixColumns() = %x, want = %x", got, want)
	}

	s.invMixColumns()
	if got, want := s, mustState(t, afterShiftRows); got != want {
		t.Errorf("invMixColumns() = %x, want = %x", got, want)
	}
}

func TestMixColumnsKnownColumns(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"db135345", "8e4da1bc"},
		{"f20a225c", "9fdc589d"},
		{"01010101", "01010101"},
		{"c6c6c6c6", "c6c6c6c6"},
		{"d4d4d4d5", "d5d5d7d6"},
		{"2d26314c", "4d7ebdf8"},
	}

	for _, tt := range tests {
		var s state
		in, _ := hex.DecodeString(tt.in)
		for c := 0; c < BlockSize; c += 4 {
			copy(s[c:], in)
		}

		s.mixColumns()
		if got := hex.EncodeToString(s[:4]); got != tt.out {
			t.Errorf("mixColumns(%s) = %s, want = %s", tt.in, got, tt.out)
		}
	}
}

func TestAddRoundKey(t *testing.T) {
	s := mustState(t, "3243f6a8885a308d313198a2e0370734")
	rk := [BlockSize]byte(mustState(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	s.addRoundKey(&rk)
	if got, want := s, mustState(t, afterAddRoundKey); got != want {
		t.Errorf("addRoundKey() = %x, want = %x", got, want)
	}
}

func TestRcon(t *testing.T) {
	want := [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	if rcon != want {
		t.Errorf("rcon = %x, want = %x", rcon, want)
	}
}

func TestVariantFor(t *testing.T) {
	for keyLen := range 64 {
		v, ok := variantFor(keyLen)
		switch keyLen {
		case 16, 24, 32:
			if !ok || 4*v.nk != keyLen || v.nr != v.nk+6 {
				t.Errorf("variantFor(%d) = %+v, %v", keyLen, v, ok)
			}
		default:
			if ok {
				t.Errorf("variantFor(%d) = %+v, want invalid", keyLen, v)
			}
		}
	}
}
