package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/codahale/fips197"
	"github.com/codahale/fips197/internal/leakage"
)

var errUnknownOp = errors.New("unknown operation")

// buildTargets returns one target per key size and operation. Each key size gets its own random key.
func buildTargets(keySizes, ops []string) ([]*leakage.Target, error) {
	var targets []*leakage.Target
	for _, ks := range keySizes {
		n, err := strconv.Atoi(strings.TrimSpace(ks))
		if err != nil {
			return nil, fmt.Errorf("key size %q: %w", ks, err)
		}

		key := make([]byte, n)
		_, _ = rand.Read(key)

		s, err := fips197.ExpandKey(key)
		if err != nil {
			return nil, err
		}

		for _, op := range ops {
			t, err := newTarget(strings.TrimSpace(op), s)
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}
	}
	return targets, nil
}

func newTarget(op string, s *fips197.Schedule) (*leakage.Target, error) {
	name := fmt.Sprintf("AES-%d/%s", s.KeySize()*8, op)
	switch op {
	case "expand":
		// Fixed-vs-random keys of the schedule's size.
		return &leakage.Target{
			Name:     name,
			InputLen: s.KeySize(),
			Run: func(in []byte) {
				_, _ = fips197.ExpandKey(in)
			},
		}, nil
	case "encrypt":
		return &leakage.Target{
			Name:     name,
			InputLen: fips197.BlockSize,
			Run: func(in []byte) {
				_, _ = fips197.EncryptBlock(s, in)
			},
		}, nil
	case "decrypt":
		return &leakage.Target{
			Name:     name,
			InputLen: fips197.BlockSize,
			Run: func(in []byte) {
				_, _ = fips197.DecryptBlock(s, in)
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOp, op)
	}
}
