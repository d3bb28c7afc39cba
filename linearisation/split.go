package linearisation

// Split picks the point inside (xLeft, xRight) at which a panel is probed.
// The returned value must lie strictly inside the panel for the
// refinement to terminate.
type Split interface {
	Split(xLeft, xRight, yLeft, yRight float64) float64
}

// SplitFunc adapts an ordinary function to the Split interface.
type SplitFunc func(xLeft, xRight, yLeft, yRight float64) float64

func (f SplitFunc) Split(xLeft, xRight, yLeft, yRight float64) float64 {
	return f(xLeft, xRight, yLeft, yRight)
}

// Midpoint splits a panel in the middle.
type Midpoint struct{}

func (Midpoint) Split(xLeft, xRight, _, _ float64) float64 {
	return 0.5 * (xLeft + xRight)
}
