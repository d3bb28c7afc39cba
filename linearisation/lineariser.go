package linearisation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/Maxime2/piecewise/internal/numeric"
	"github.com/Maxime2/piecewise/interpolation"
)

var (
	// ErrInvalidGrid is returned for an initial grid that has fewer than two
	// points, is not sorted or contains NaN.
	ErrInvalidGrid = errors.New("linearisation: invalid grid")
	// ErrNotFinite is returned when the function is not finite at a probed
	// point. Such a panel can never converge.
	ErrNotFinite = errors.New("linearisation: function value is not finite")
	// ErrMaxDepth is returned when the pending stack grows past the limit
	// set with WithMaxDepth.
	ErrMaxDepth = errors.New("linearisation: maximum subdivision depth exceeded")
)

// Lineariser is the adaptive panel bisection engine. A Lineariser reuses
// its stack between calls and must not be shared between goroutines.
type Lineariser struct {
	convergence Convergence
	split       Split
	maxDepth    int
	logger      *slog.Logger

	// pending right-hand panel ends
	xStack []float64
	yStack []float64
}

// Option configures a Lineariser.
type Option func(*Lineariser)

// WithConvergence sets the convergence criterion (DefaultTolerance if unset).
func WithConvergence(c Convergence) Option {
	return func(l *Lineariser) {
		if c != nil {
			l.convergence = c
		}
	}
}

// WithSplit sets the split strategy (Midpoint if unset).
func WithSplit(s Split) Option {
	return func(l *Lineariser) {
		if s != nil {
			l.split = s
		}
	}
}

// WithMaxDepth bounds the number of pending panels. Zero or a negative value
// means unbounded.
func WithMaxDepth(depth int) Option {
	return func(l *Lineariser) { l.maxDepth = depth }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lineariser) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Lineariser.
func New(opts ...Option) *Lineariser {
	l := &Lineariser{
		convergence: DefaultTolerance(),
		split:       Midpoint{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Linearise appends to x and y the points of the linearised function f over
// grid and returns the extended slices, like append. Every grid point is
// kept with its exact function value; duplicated grid points (jumps) are
// kept twice. On error the slices hold the points committed so far.
func (l *Lineariser) Linearise(x, y, grid []float64, f func(float64) float64) ([]float64, []float64, error) {
	if err := validateGrid(grid); err != nil {
		return x, y, err
	}
	l.xStack, l.yStack = l.xStack[:0], l.yStack[:0]
	defer func() { l.xStack, l.yStack = l.xStack[:0], l.yStack[:0] }()

	start := len(x)
	xLeft := grid[0]
	yLeft, err := evaluate(f, xLeft)
	if err != nil {
		return x, y, err
	}
	for _, next := range grid[1:] {
		xRight := next
		yRight, err := evaluate(f, xRight)
		if err != nil {
			return x, y, err
		}
		for {
			xMiddle := l.split.Split(xLeft, xRight, yLeft, yRight)
			trial := interpolation.LinLin(xMiddle, xLeft, xRight, yLeft, yRight)
			reference, err := evaluate(f, xMiddle)
			if err != nil {
				return x, y, err
			}

			if l.convergence.Converged(trial, reference, xLeft, xRight, yLeft, yRight) {
				x = append(x, xLeft)
				y = append(y, yLeft)

				xLeft, yLeft = xRight, yRight
				n := len(l.xStack)
				if n == 0 {
					break
				}
				xRight, yRight = l.xStack[n-1], l.yStack[n-1]
				l.xStack, l.yStack = l.xStack[:n-1], l.yStack[:n-1]
				continue
			}

			if l.maxDepth > 0 && len(l.xStack) >= l.maxDepth {
				l.logger.Warn("linearisation depth exceeded",
					"xLeft", xLeft, "xRight", xRight, "depth", len(l.xStack))
				return x, y, fmt.Errorf("%w: %d pending panels at [%g, %g]",
					ErrMaxDepth, len(l.xStack), xLeft, xRight)
			}
			l.xStack = append(l.xStack, xRight)
			l.yStack = append(l.yStack, yRight)
			xRight, yRight = xMiddle, reference
		}
	}
	x = append(x, xLeft)
	y = append(y, yLeft)

	l.logger.Debug("linearised function",
		"grid", len(grid), "points", len(x)-start, "convergence", l.convergence)
	return x, y, nil
}

// Linearise is a shorthand for New(opts...).Linearise(nil, nil, grid, f).
func Linearise(grid []float64, f func(float64) float64, opts ...Option) ([]float64, []float64, error) {
	return New(opts...).Linearise(nil, nil, grid, f)
}

func evaluate(f func(float64) float64, x float64) (float64, error) {
	y := f(x)
	if !numeric.IsFinite(y) {
		return y, fmt.Errorf("%w: f(%g) = %g", ErrNotFinite, x, y)
	}
	return y, nil
}

func validateGrid(grid []float64) error {
	if len(grid) < 2 {
		return fmt.Errorf("%w: %d points, at least 2 are required", ErrInvalidGrid, len(grid))
	}
	if slices.ContainsFunc(grid, math.IsNaN) {
		return fmt.Errorf("%w: NaN in grid", ErrInvalidGrid)
	}
	if !slices.IsSorted(grid) {
		return fmt.Errorf("%w: grid is not sorted", ErrInvalidGrid)
	}
	return nil
}
