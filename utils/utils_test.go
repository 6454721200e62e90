package utils

import (
	"math"
	"strconv"
	"testing"
)

func TestUtoa(t *testing.T) {
	for _, v := range []uint64{0, 1, 9, 10, 99, 100, 1_000_000_000, math.MaxUint64} {
		if got, want := Utoa(v), strconv.FormatUint(v, 10); got != want {
			t.Errorf("Utoa(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestItoa(t *testing.T) {
	for _, v := range []int{0, 5, -5, 42, -1000, math.MaxInt64, math.MinInt64} {
		if got, want := Itoa(v), strconv.Itoa(v); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestAppendUint(t *testing.T) {
	got := string(AppendUint([]byte("n="), 1234))
	if got != "n=1234" {
		t.Fatalf("AppendUint = %q", got)
	}
}

func BenchmarkItoa(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Itoa(i)
	}
}
