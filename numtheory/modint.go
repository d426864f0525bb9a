package numtheory

// Modulus is the NTT-friendly prime used by Mod998244353.
const Modulus = 998244353

// Mod998244353 is an integer reduced modulo 998244353.
// The zero value is 0. All operations return a new value.
type Mod998244353 uint32

// NewMod reduces an arbitrary signed integer into [0, Modulus).
func NewMod(x int64) Mod998244353 {
	x %= Modulus
	if x < 0 {
		x += Modulus
	}

	return Mod998244353(x)
}

// Uint returns the canonical representative in [0, Modulus).
func (a Mod998244353) Uint() uint32 { return uint32(a) }

// Add returns a + b.
func (a Mod998244353) Add(b Mod998244353) Mod998244353 {
	s := uint32(a) + uint32(b)
	if s >= Modulus {
		s -= Modulus
	}

	return Mod998244353(s)
}

// Sub returns a - b.
func (a Mod998244353) Sub(b Mod998244353) Mod998244353 {
	if a >= b {
		return a - b
	}

	return Mod998244353(uint32(a) + Modulus - uint32(b))
}

// Mul returns a * b.
func (a Mod998244353) Mul(b Mod998244353) Mod998244353 {
	return Mod998244353(uint64(a) * uint64(b) % Modulus)
}

// Pow returns a^e by square-and-multiply. Pow(0) == 1, including 0^0.
func (a Mod998244353) Pow(e uint64) Mod998244353 {
	res, base := Mod998244353(1), a
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
	}

	return res
}

// Inv returns the multiplicative inverse via Fermat's little theorem.
// Panics with ErrNotInvertible for zero.
func (a Mod998244353) Inv() Mod998244353 {
	if a == 0 {
		panic(ErrNotInvertible)
	}

	return a.Pow(Modulus - 2)
}

// Div returns a / b. Panics with ErrNotInvertible when b is zero.
func (a Mod998244353) Div(b Mod998244353) Mod998244353 {
	return a.Mul(b.Inv())
}
