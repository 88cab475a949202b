package fips197

// encrypt runs the forward cipher over src and writes the result to dst. dst and src may overlap.
func (s *Schedule) encrypt(dst, src *[BlockSize]byte) {
	st := state(*src)
	st.addRoundKey(&s.keys[0])

	for round := 1; round < s.v.nr; round++ {
		st.subBytes()
		st.shiftRows()
		st.mixColumns()
		st.addRoundKey(&s.keys[round])
	}

	// The final round has no MixColumns.
	st.subBytes()
	st.shiftRows()
	st.addRoundKey(&s.keys[s.v.nr])

	*dst = st
}

// decrypt runs the inverse cipher over src and writes the result to dst. dst and src may overlap.
func (s *Schedule) decrypt(dst, src *[BlockSize]byte) {
	st := state(*src)
	st.addRoundKey(&s.keys[s.v.nr])

	for round := s.v.nr - 1; round > 0; round-- {
		st.invShiftRows()
		st.invSubBytes()
		st.addRoundKey(&s.keys[round])
		st.invMixColumns()
	}

	st.invShiftRows()
	st.invSubBytes()
	st.addRoundKey(&s.keys[0])

	*dst = st
}
