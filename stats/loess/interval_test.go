package loess

import "testing"

func TestNextNonZero(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		index   int
		want    int
	}{
		{"adjacent", []float64{1, 1, 1}, 0, 1},
		{"skips zeros", []float64{1, 0, 0, 1}, 0, 3},
		{"from before start", []float64{0, 1}, -1, 1},
		{"none left", []float64{1, 1, 0, 0}, 1, 4},
		{"at end", []float64{1, 1}, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextNonZero(tt.weights, tt.index); got != tt.want {
				t.Fatalf("nextNonZero(%v, %d) = %d, want %d", tt.weights, tt.index, got, tt.want)
			}
		})
	}
}

func TestIntervalSlidesForward(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	w := []float64{1, 1, 1, 1, 1, 1}

	iv := interval{left: 0, right: 2}
	var got []interval
	for i := 1; i < len(x); i++ {
		iv.update(x, w, i)
		got = append(got, iv)
	}

	want := []interval{{0, 2}, {1, 3}, {2, 4}, {3, 5}, {3, 5}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: interval = %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

func TestIntervalSkipsZeroWeights(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	w := []float64{1, 0, 1, 0, 1, 1}

	iv := interval{left: 0, right: 2}
	iv.update(x, w, 3)

	if iv != (interval{left: 2, right: 4}) {
		t.Fatalf("interval = %+v, want {2 4}", iv)
	}
}

func TestIntervalStopsAtZeroTail(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	w := []float64{1, 1, 1, 0, 0}

	iv := interval{left: 0, right: 2}
	iv.update(x, w, 2)

	if iv != (interval{left: 0, right: 2}) {
		t.Fatalf("interval moved past zero-weight tail: %+v", iv)
	}
}

func TestIntervalIgnoresFartherCandidate(t *testing.T) {
	x := []float64{0, 1, 2, 10}
	w := []float64{1, 1, 1, 1}

	iv := interval{left: 0, right: 2}
	iv.update(x, w, 1)

	if iv != (interval{left: 0, right: 2}) {
		t.Fatalf("interval = %+v, want {0 2}", iv)
	}
}

func TestIntervalEdge(t *testing.T) {
	x := []float64{0, 1, 2, 3, 10}
	iv := interval{left: 1, right: 4}

	if got := iv.edge(x, 2); got != 4 {
		t.Fatalf("edge = %d, want 4", got)
	}

	iv = interval{left: 0, right: 3}
	if got := iv.edge(x, 3); got != 0 {
		t.Fatalf("edge = %d, want 0", got)
	}

	// Ties go to the right bound.
	iv = interval{left: 0, right: 2}
	if got := iv.edge(x, 1); got != 2 {
		t.Fatalf("edge = %d, want 2", got)
	}
}
