package alloc

import "testing"

func TestNameKnown(t *testing.T) {
	switch Name() {
	case "default", "membound":
	default:
		t.Fatalf("unexpected mode %q", Name())
	}
}
