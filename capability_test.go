package towerfield //nolint:testpackage // testing internals

import "testing"

func TestDetectCapability(t *testing.T) {
	c := DetectCapability()

	switch c.MaxWidth {
	case Width128, Width256, Width512:
	default:
		t.Fatalf("MaxWidth = %d", c.MaxWidth)
	}

	if !c.Supports(Width128) {
		t.Error("128-bit words are not supported")
	}

	if got, want := bulkWidth, c.MaxWidth; got != want {
		t.Errorf("bulkWidth = %d, want = %d", got, want)
	}
}

func TestCapabilitySupports(t *testing.T) {
	c := Capability{GFNI: true, MaxWidth: Width256}

	tests := []struct {
		w    Width
		want bool
	}{
		{w: Width128, want: true},
		{w: Width256, want: true},
		{w: Width512, want: false},
	}

	for _, tt := range tests {
		if got := c.Supports(tt.w); got != tt.want {
			t.Errorf("Supports(%d) = %t, want = %t", tt.w, got, tt.want)
		}
	}

	if got, want := c.String(), "gfni=true width=256"; got != want {
		t.Errorf("String() = %q, want = %q", got, want)
	}
}
