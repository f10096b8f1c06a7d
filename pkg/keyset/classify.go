package keyset

import (
	"github.com/pkg/errors"
)

// Classifier splits raw keys into a low range, kept verbatim, and a high
// range rescaled by a fixed divisor. Both constants are explicit fields so a
// Classifier is a pure function of its inputs.
type Classifier struct {
	Cutoff  uint32
	Divisor uint32
}

// NewClassifier returns a Classifier with the default cutoff and divisor.
func NewClassifier() Classifier {
	return Classifier{Cutoff: DefaultCutoff, Divisor: DefaultDivisor}
}

// Partition routes each key into low (< cutoff, unchanged) or high
// (>= cutoff, rescaled to cutoff + (key-cutoff)/divisor), preserving the
// relative order within each side.
//
// Every high key must be divisible by the divisor; the first violation fails
// the whole call with ErrInvalidHighKey. Downstream gap arithmetic assumes
// the rescale is exact, so a best-effort partial result would corrupt it.
func (c Classifier) Partition(keys []uint32) (low, high []uint32, err error) {
	if c.Divisor == 0 {
		return nil, nil, errors.New("keyset: divisor must be positive")
	}
	for _, k := range keys {
		if k < c.Cutoff {
			low = append(low, k)
			continue
		}
		if k%c.Divisor != 0 {
			return nil, nil, errors.Wrapf(ErrInvalidHighKey, "key %#x", k)
		}
		high = append(high, c.Cutoff+(k-c.Cutoff)/c.Divisor)
	}
	return low, high, nil
}
