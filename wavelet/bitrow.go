package wavelet

import "math/bits"

// bitRow is an immutable bit vector with a per-word popcount directory.
type bitRow struct {
	words []uint64
	cum   []int // cum[k] = ones in words[:k]
	zeros int
}

func newBitRow(n int, bit func(i int) bool) bitRow {
	r := bitRow{words: make([]uint64, n/64+1)}
	for i := 0; i < n; i++ {
		if bit(i) {
			r.words[i>>6] |= 1 << uint(i&63)
		}
	}
	r.cum = make([]int, len(r.words)+1)
	for k, w := range r.words {
		r.cum[k+1] = r.cum[k] + bits.OnesCount64(w)
	}
	r.zeros = n - r.cum[len(r.words)]

	return r
}

// get returns bit i.
func (r bitRow) get(i int) bool {
	return r.words[i>>6]>>uint(i&63)&1 == 1
}

// rank1 counts ones in [0, i).
func (r bitRow) rank1(i int) int {
	k := i >> 6

	return r.cum[k] + bits.OnesCount64(r.words[k]&(1<<uint(i&63)-1))
}

// rank0 counts zeros in [0, i).
func (r bitRow) rank0(i int) int { return i - r.rank1(i) }

// descend maps position i to the next row given the bit taken.
func (r bitRow) descend(i int, one bool) int {
	if one {
		return r.zeros + r.rank1(i)
	}

	return r.rank0(i)
}
