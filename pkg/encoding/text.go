package encoding

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseKeyText reads a comma-separated key list. Tokens may carry arbitrary
// decoration (whitespace, radix prefixes, stray punctuation); every non-digit
// character is stripped before parsing, so "0x2A" parses as 2 and " 17\n" as
// 17. A token with no digits at all is an error, as is a value that does not
// fit in 32 bits.
func ParseKeyText(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "encoding: read key text")
	}

	tokens := strings.Split(string(raw), ",")
	keys := make([]uint32, 0, len(tokens))
	for i, tok := range tokens {
		digits := strings.Map(keepDigits, tok)
		if digits == "" {
			return nil, errors.Errorf("encoding: token %d (%q) has no digits", i, strings.TrimSpace(tok))
		}
		v, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding: token %d", i)
		}
		keys = append(keys, uint32(v))
	}
	return keys, nil
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}
