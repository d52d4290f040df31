package automaton

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixSequence hashes ints where order matters.
func mixSequence(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = h*31 + mix32(v)
	}
	return h
}
