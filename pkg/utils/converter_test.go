package utils

import "testing"

func TestUint32RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 0xFFFF, 0x10000, 0xDEADBEEF, 0xFFFFFFFF} {
		b := Uint32ToBytes(n)
		if len(b) != 4 {
			t.Fatalf("Uint32ToBytes(%#x) length = %d", n, len(b))
		}
		if got := BytesToUint32(b); got != n {
			t.Errorf("BytesToUint32(Uint32ToBytes(%#x)) = %#x", n, got)
		}
	}
}

func TestUint32ToBytes_LittleEndian(t *testing.T) {
	b := Uint32ToBytes(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("Uint32ToBytes(0x01020304) = % x, want % x", b, want)
		}
	}
}
