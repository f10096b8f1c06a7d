package keyset

// GapSum counts the integers that are numerically between two consecutive
// members of the same group but absent from the key sequence, summed over
// all groups. It quantifies how much of each group's span is not backed by
// an explicit key. Equal consecutive members contribute nothing.
func GapSum(groups []Group) uint64 {
	var sum uint64
	for _, g := range groups {
		for i := 1; i < len(g); i++ {
			if d := g[i] - g[i-1]; d > 0 {
				sum += uint64(d - 1)
			}
		}
	}
	return sum
}
