package utils

import "encoding/binary"

// Uint32ToBytes converts uint32 to a little-endian byte slice.
func Uint32ToBytes(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

// BytesToUint32 converts a little-endian byte slice to uint32.
func BytesToUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
