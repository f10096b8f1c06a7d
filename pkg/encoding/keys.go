package encoding

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-keyset/pkg/utils"
)

// KeyWidth is the fixed on-disk size of one key.
const KeyWidth = 4

// ErrTruncated reports a key blob whose length is not a whole number of keys.
var ErrTruncated = errors.New("encoding: key data truncated")

// EncodeKeys packs keys into the fixed little-endian 4-byte-per-key format.
func EncodeKeys(keys []uint32) []byte {
	buf := make([]byte, len(keys)*KeyWidth)
	for i, k := range keys {
		binary.LittleEndian.PutUint32(buf[i*KeyWidth:], k)
	}
	return buf
}

// DecodeKeys unpacks a little-endian 4-byte-per-key blob.
func DecodeKeys(data []byte) ([]uint32, error) {
	if len(data)%KeyWidth != 0 {
		return nil, errors.Wrapf(ErrTruncated, "%d bytes", len(data))
	}
	keys := make([]uint32, len(data)/KeyWidth)
	for i := range keys {
		keys[i] = utils.BytesToUint32(data[i*KeyWidth:])
	}
	return keys, nil
}
