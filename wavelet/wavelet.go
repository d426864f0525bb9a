package wavelet

import (
	"fmt"
	"slices"
	"strings"
)

// Matrix is a wavelet matrix over uint32 values of a fixed bit width.
type Matrix struct {
	n    int
	bits int
	rows []bitRow // rows[l] holds bit bits-1-l
}

// New builds a matrix over src with the given bit width.
//
// Returns ErrBitWidth unless 1 <= bits <= 32 and ErrValueTooWide if an
// element needs more than bits bits.
// Complexity: O(n·bits).
func New(src []uint32, bits int) (*Matrix, error) {
	if bits < 1 || bits > 32 {
		return nil, fmt.Errorf("%w: got %d", ErrBitWidth, bits)
	}
	if bits < 32 {
		for i, v := range src {
			if v>>uint(bits) != 0 {
				return nil, fmt.Errorf("%w: src[%d] = %d needs more than %d bits", ErrValueTooWide, i, v, bits)
			}
		}
	}
	cur := slices.Clone(src)
	next := make([]uint32, len(cur))
	m := &Matrix{n: len(src), bits: bits, rows: make([]bitRow, bits)}
	for l := 0; l < bits; l++ {
		shift := uint(bits - 1 - l)
		row := newBitRow(len(cur), func(i int) bool { return cur[i]>>shift&1 == 1 })
		z, o := 0, row.zeros
		for _, v := range cur {
			if v>>shift&1 == 1 {
				next[o] = v
				o++
			} else {
				next[z] = v
				z++
			}
		}
		m.rows[l] = row
		cur, next = next, cur
	}

	return m, nil
}

// Len returns the number of elements.
func (m *Matrix) Len() int { return m.n }

// Bits returns the bit width.
func (m *Matrix) Bits() int { return m.bits }

// Access returns element i.
func (m *Matrix) Access(i int) uint32 {
	if i < 0 || i >= m.n {
		panic(fmt.Errorf("%w: Access(%d) over %d", ErrIndexOutOfRange, i, m.n))
	}
	var v uint32
	for l, row := range m.rows {
		one := row.get(i)
		if one {
			v |= 1 << uint(m.bits-1-l)
		}
		i = row.descend(i, one)
	}

	return v
}

// Rank counts occurrences of v in [0, end).
func (m *Matrix) Rank(v uint32, end int) int {
	if end < 0 || end > m.n {
		panic(fmt.Errorf("%w: Rank end %d over %d", ErrIndexOutOfRange, end, m.n))
	}
	if !m.fits(v) {
		return 0
	}
	s, e := 0, end
	for l, row := range m.rows {
		one := v>>uint(m.bits-1-l)&1 == 1
		s, e = row.descend(s, one), row.descend(e, one)
	}

	return e - s
}

// Select returns the position of the k-th (0-based) occurrence of v, or
// false if v occurs at most k times.
// Complexity: O(bits · log n).
func (m *Matrix) Select(v uint32, k int) (int, bool) {
	if k < 0 || m.Rank(v, m.n) <= k {
		return 0, false
	}
	// Smallest end with Rank(v, end) > k; the occurrence sits at end-1.
	lo, hi := 0, m.n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.Rank(v, mid) > k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo - 1, true
}

// Quantile returns the k-th smallest (0-based) element of [l, r).
// Panics with an error wrapping ErrInvalidRange unless 0 <= k < r-l.
func (m *Matrix) Quantile(l, r, k int) uint32 {
	m.checkRange(l, r)
	if k < 0 || k >= r-l {
		panic(fmt.Errorf("%w: Quantile k=%d over [%d, %d)", ErrInvalidRange, k, l, r))
	}
	var v uint32
	for lv, row := range m.rows {
		z := row.rank0(r) - row.rank0(l)
		one := k >= z
		if one {
			k -= z
			v |= 1 << uint(m.bits-1-lv)
		}
		l, r = row.descend(l, one), row.descend(r, one)
	}

	return v
}

// RangeFreq counts elements of [l, r) whose value lies in [lo, hi).
func (m *Matrix) RangeFreq(l, r int, lo, hi uint32) int {
	m.checkRange(l, r)
	if lo >= hi {
		return 0
	}

	return m.countLess(l, r, uint64(hi)) - m.countLess(l, r, uint64(lo))
}

// countLess counts elements of [l, r) strictly below x.
func (m *Matrix) countLess(l, r int, x uint64) int {
	if x >= 1<<uint(m.bits) {
		return r - l
	}
	cnt := 0
	for lv, row := range m.rows {
		one := x>>uint(m.bits-1-lv)&1 == 1
		if one {
			cnt += row.rank0(r) - row.rank0(l)
		}
		l, r = row.descend(l, one), row.descend(r, one)
	}

	return cnt
}

// String renders one bit row per line, most significant bit first.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		for i := 0; i < m.n; i++ {
			if row.get(i) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (m *Matrix) fits(v uint32) bool {
	return m.bits == 32 || v>>uint(m.bits) == 0
}

func (m *Matrix) checkRange(l, r int) {
	if l < 0 || l > r || r > m.n {
		panic(fmt.Errorf("%w: [%d, %d) over %d", ErrInvalidRange, l, r, m.n))
	}
}
