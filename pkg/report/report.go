// Package report runs the per-tolerance grouping sweep over a raw key batch
// and renders the resulting fragmentation figures.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-keyset/pkg/keyset"
)

// Row is the outcome of one grouping pass.
type Row struct {
	Gap    uint32
	Groups int
	GapSum uint64
	// Waste is the fraction of the groups' covered span that is not backed
	// by an explicit key: gaps / (keys + gaps).
	Waste float64
}

// Analysis is the result of a full sweep over one key batch.
type Analysis struct {
	Low  int
	High int
	Rows []Row
}

// Run classifies keys once, then builds groups of the high range for every
// tolerance. The passes share nothing and run concurrently; row order follows
// the tolerance order, not completion order.
func Run(ctx context.Context, c keyset.Classifier, keys []uint32, tolerances []uint32) (*Analysis, error) {
	low, high, err := c.Partition(keys)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(tolerances))
	eg, _ := errgroup.WithContext(ctx)
	for i, gap := range tolerances {
		i, gap := i, gap
		eg.Go(func() error {
			groups, err := keyset.BuildGroups(high, gap)
			if err != nil {
				return errors.Wrapf(err, "report: gap %d", gap)
			}
			gaps := keyset.GapSum(groups)
			total := uint64(len(high)) + gaps
			rows[i] = Row{
				Gap:    gap,
				Groups: len(groups),
				GapSum: gaps,
				Waste:  float64(gaps) / float64(total),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Analysis{Low: len(low), High: len(high), Rows: rows}, nil
}

// Render writes one line per tolerance: gap, group count, gap sum and the
// wasted span as a percentage with two decimals.
func (a *Analysis) Render(w io.Writer) error {
	for _, r := range a.Rows {
		if _, err := fmt.Fprintf(w, "%d: %d (%d - %.2f%%)\n", r.Gap, r.Groups, r.GapSum, r.Waste*100); err != nil {
			return errors.Wrap(err, "report: render")
		}
	}
	return nil
}
