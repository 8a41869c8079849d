package loess

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := applyOptions([]Option{WithAccuracy(1e-9), WithBandwidth(0.75), WithRobustnessFactor(3)})
	want := config{accuracy: 1e-9, bandwidth: 0.75, robustnessFactor: 3}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestNilOptionsIgnored(t *testing.T) {
	cfg := applyOptions([]Option{nil, nil})
	if cfg != defaultConfig() {
		t.Fatalf("cfg = %#v, want %#v", cfg, defaultConfig())
	}
}

func TestLastOptionWins(t *testing.T) {
	cfg := applyOptions([]Option{WithBandwidth(0.2), WithBandwidth(0.4)})
	if cfg.bandwidth != 0.4 {
		t.Fatalf("bandwidth = %g, want 0.4", cfg.bandwidth)
	}
}
