// ABOUTME: Fuzz tests for the packed bit vector
// ABOUTME: Round-trips arbitrary bit patterns through string construction and shifts

package bitset

import (
	"strings"
	"testing"
)

// bitsFromBytes maps arbitrary fuzz input onto a '0'/'1' string.
func bitsFromBytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, c := range data {
		if c&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func FuzzStringRoundTrip(f *testing.F) {
	f.Add([]byte("10101"))
	f.Add([]byte{})
	f.Add([]byte{0xff, 0x00, 0xaa})
	f.Fuzz(func(t *testing.T, data []byte) {
		s := bitsFromBytes(data)
		b := FromString(s)
		if b.Len() != len(s) {
			t.Fatalf("Len = %d, want %d", b.Len(), len(s))
		}
		if got := b.String(); got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
		if got := strings.Count(s, "1"); got != b.Count() {
			t.Errorf("Count = %d, want %d", b.Count(), got)
		}
	})
}

func FuzzShiftLaws(f *testing.F) {
	f.Add([]byte("1100"), uint(3))
	f.Add([]byte{0xaa, 0x55}, uint(64))
	f.Fuzz(func(t *testing.T, data []byte, k uint) {
		k %= 256
		s := bitsFromBytes(data)
		b := FromString(s)
		b.ShiftLeft(int(k))
		if b.Len() != len(s)+int(k) {
			t.Fatalf("ShiftLeft length = %d, want %d", b.Len(), len(s)+int(k))
		}
		b.ShiftRight(int(k))
		if got := b.String(); got != s {
			t.Errorf("shift round trip = %q, want %q", got, s)
		}
	})
}

func FuzzFlipInvolution(f *testing.F) {
	f.Add([]byte("1001101"))
	f.Fuzz(func(t *testing.T, data []byte) {
		s := bitsFromBytes(data)
		b := FromString(s)
		b.Flip()
		for i := 0; i < len(s); i++ {
			if b.Get(i) == (s[i] == '1') {
				t.Fatalf("bit %d unchanged by Flip", i)
			}
		}
		b.Flip()
		if got := b.String(); got != s {
			t.Errorf("double flip = %q, want %q", got, s)
		}
	})
}
