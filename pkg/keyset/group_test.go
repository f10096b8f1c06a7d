package keyset

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// BuildGroups Tests
// =============================================================================

func TestBuildGroups(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
		gap  uint32
		want []Group
	}{
		// Happy path
		{"tight_gap", []uint32{1, 2, 3, 10, 11, 50}, 1, []Group{{1, 2, 3}, {10, 11}, {50}}},
		{"wide_gap", []uint32{1, 2, 3, 10, 11, 50}, 10, []Group{{1, 2, 3, 10, 11}, {50}}},
		{"single_key", []uint32{42}, 1, []Group{{42}}},
		{"all_one_group", []uint32{5, 6, 7}, 100, []Group{{5, 6, 7}}},
		// g=0: distinct consecutive keys always split, duplicates stay merged.
		{"zero_gap_distinct", []uint32{1, 2, 3}, 0, []Group{{1}, {2}, {3}}},
		{"zero_gap_duplicates", []uint32{1, 1, 2, 2}, 0, []Group{{1, 1}, {2, 2}}},
		// Only the distance to the immediately preceding key matters: the run
		// drifts by 9 overall but never by more than 3 per step.
		{"cumulative_drift", []uint32{10, 13, 16, 19}, 3, []Group{{10, 13, 16, 19}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildGroups(tt.keys, tt.gap)
			if err != nil {
				t.Fatalf("BuildGroups() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildGroups_Empty(t *testing.T) {
	if _, err := BuildGroups(nil, 1); !errors.Is(err, ErrEmptyKeys) {
		t.Fatalf("BuildGroups(nil) error = %v, want ErrEmptyKeys", err)
	}
}

// =============================================================================
// Invariant Tests (randomized)
// =============================================================================

// randomAscending returns an ascending key sequence with uneven step sizes so
// that grouping produces a mix of group lengths.
func randomAscending(rng *rand.Rand, n int) []uint32 {
	keys := make([]uint32, n)
	var cur uint32
	for i := range keys {
		cur += uint32(rng.Intn(20))
		keys[i] = cur
	}
	return keys
}

func TestBuildGroups_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		keys := randomAscending(rng, 1+rng.Intn(500))
		gap := uint32(rng.Intn(16))

		groups, err := BuildGroups(keys, gap)
		if err != nil {
			t.Fatalf("BuildGroups() error = %v", err)
		}

		// Partition completeness: concatenating the groups reproduces the input.
		var flat []uint32
		for gi, g := range groups {
			if len(g) == 0 {
				t.Fatalf("trial %d: group %d is empty", trial, gi)
			}
			flat = append(flat, g...)
		}
		if diff := cmp.Diff(keys, flat); diff != "" {
			t.Fatalf("trial %d: concatenation mismatch (-want +got):\n%s", trial, diff)
		}

		// Internal cohesion: consecutive in-group distances stay within gap.
		for gi, g := range groups {
			for i := 1; i < len(g); i++ {
				if g[i]-g[i-1] > gap {
					t.Fatalf("trial %d: group %d gap %d > %d", trial, gi, g[i]-g[i-1], gap)
				}
			}
		}

		// Boundary invariant: adjacent groups are separated by more than gap.
		for gi := 1; gi < len(groups); gi++ {
			prev := groups[gi-1]
			if groups[gi].Start()-prev[len(prev)-1] <= gap {
				t.Fatalf("trial %d: groups %d/%d not separated by more than %d", trial, gi-1, gi, gap)
			}
		}
	}
}

func TestBuildGroups_ToleranceMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 50; trial++ {
		keys := randomAscending(rng, 1+rng.Intn(300))

		prevCount := len(keys) + 1
		for _, gap := range []uint32{0, 1, 2, 4, 8, 16, 32} {
			groups, err := BuildGroups(keys, gap)
			if err != nil {
				t.Fatalf("BuildGroups() error = %v", err)
			}
			if len(groups) > prevCount {
				t.Fatalf("trial %d: widening gap to %d grew group count %d -> %d",
					trial, gap, prevCount, len(groups))
			}
			prevCount = len(groups)
		}
	}
}
