package keyset

// Group is a maximal run of keys in which every consecutive pair differs by
// at most the gap tolerance the run was built with. A Group is never empty.
type Group []uint32

// Start returns the group's first (smallest) member.
func (g Group) Start() uint32 {
	return g[0]
}

// BuildGroups partitions an ascending key sequence into maximal contiguous
// groups. A new group opens whenever a key exceeds the previous key by more
// than gap; only the distance to the immediately preceding key is checked,
// never the distance to the group's start, so a long run whose cumulative
// drift exceeds gap still forms a single group.
//
// Concatenating the returned groups in order reproduces keys exactly. The
// input must already be sorted ascending. Empty input is rejected with
// ErrEmptyKeys rather than yielding an empty group list.
func BuildGroups(keys []uint32, gap uint32) ([]Group, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeys
	}

	groups := []Group{{keys[0]}}
	for _, k := range keys[1:] {
		cur := groups[len(groups)-1]
		if k-cur[len(cur)-1] > gap {
			groups = append(groups, Group{k})
		} else {
			groups[len(groups)-1] = append(cur, k)
		}
	}
	return groups, nil
}
