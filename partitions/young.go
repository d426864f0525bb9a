package partitions

import "github.com/katalvlaran/rangefold/numtheory"

// Conjugate returns the conjugate partition: part j is the number of parts
// of lambda greater than j. lambda must be non-increasing.
func Conjugate(lambda []int) []int {
	if len(lambda) == 0 {
		return []int{}
	}
	out := make([]int, lambda[0])
	i := len(lambda)
	for j := range out {
		for i > 0 && lambda[i-1] <= j {
			i--
		}
		out[j] = i
	}

	return out
}

// HookLengthProduct returns the product of the hook lengths of every cell
// of the Young diagram of lambda, modulo 998244353. The empty partition
// gives 1.
func HookLengthProduct(lambda []int) numtheory.Mod998244353 {
	conj := Conjugate(lambda)
	res := numtheory.Mod998244353(1)
	for i, li := range lambda {
		for j := 0; j < li; j++ {
			hook := (li - j) + (conj[j] - i) - 1
			res = res.Mul(numtheory.NewMod(int64(hook)))
		}
	}

	return res
}
