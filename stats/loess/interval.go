package loess

// interval is the inclusive index range [left, right] of the neighbourhood
// around the current point.
type interval struct {
	left, right int
}

// update advances the interval by one non-zero-weight step when the next
// candidate on the right is strictly closer to x[i] than the current left
// bound. Called once per point with increasing i, the window only moves
// forward.
func (iv *interval) update(xval, weights []float64, i int) {
	nextRight := nextNonZero(weights, iv.right)
	if nextRight < len(xval) && xval[nextRight]-xval[i] < xval[i]-xval[iv.left] {
		iv.left = nextNonZero(weights, iv.left)
		iv.right = nextRight
	}
}

// edge returns the bound farther from x[i].
func (iv interval) edge(xval []float64, i int) int {
	if xval[i]-xval[iv.left] > xval[iv.right]-xval[i] {
		return iv.left
	}
	return iv.right
}

// nextNonZero returns the smallest j > index with weights[j] != 0, or
// len(weights) if there is none.
func nextNonZero(weights []float64, index int) int {
	j := index + 1
	for j < len(weights) && weights[j] == 0 {
		j++
	}
	return j
}
