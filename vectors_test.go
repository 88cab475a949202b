package fips197_test

import (
	"bytes"
	"encoding/hex"
	"os"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

type blockVector struct {
	Name       string `toml:"name"`
	Key        string `toml:"key"`
	Plaintext  string `toml:"plaintext"`
	Ciphertext string `toml:"ciphertext"`
}

type roundKeyVector struct {
	Name  string `toml:"name"`
	Key   string `toml:"key"`
	Round int    `toml:"round"`
	Want  string `toml:"want"`
}

type vectorFile struct {
	Block    []blockVector    `toml:"block"`
	RoundKey []roundKeyVector `toml:"round_key"`
}

func loadVectors(t testing.TB) vectorFile {
	t.Helper()

	raw, err := os.ReadFile("testdata/vectors.toml")
	if err != nil {
		t.Fatal(err)
	}

	var vf vectorFile
	if err := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&vf); err != nil {
		t.Fatal(err)
	}

	if len(vf.Block) == 0 || len(vf.RoundKey) == 0 {
		t.Fatal("no vectors loaded")
	}
	return vf
}

func unhex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
