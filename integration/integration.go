// Package integration provides closed-form panel integrals matching each
// interpolation law, their first and second moments, and folds of those
// integrals over tabulated data.
package integration

import (
	"math"

	"github.com/Maxime2/piecewise/interpolation"
)

// Func integrates a single panel [xLeft, xRight].
type Func func(xLeft, xRight, yLeft, yRight float64) float64

// panel wraps a closed form so that zero width panels integrate to zero.
func panel(f Func) Func {
	return func(xLeft, xRight, yLeft, yRight float64) float64 {
		if xLeft == xRight {
			return 0
		}
		return f(xLeft, xRight, yLeft, yRight)
	}
}

var (
	hist   = panel(histogram)
	linlin = panel(linearLinear)
	linlog = panel(linearLog)
	loglin = panel(logLinear)
	loglog = panel(logLog)
)

// Hist integrates a histogram panel.
func Hist(xLeft, xRight, yLeft, yRight float64) float64 {
	return hist(xLeft, xRight, yLeft, yRight)
}

// LinLin integrates a linear-linear panel (trapezoid rule).
func LinLin(xLeft, xRight, yLeft, yRight float64) float64 {
	return linlin(xLeft, xRight, yLeft, yRight)
}

// LinLog integrates a linear-log panel.
func LinLog(xLeft, xRight, yLeft, yRight float64) float64 {
	return linlog(xLeft, xRight, yLeft, yRight)
}

// LogLin integrates a log-linear panel.
func LogLin(xLeft, xRight, yLeft, yRight float64) float64 {
	return loglin(xLeft, xRight, yLeft, yRight)
}

// LogLog integrates a log-log panel.
func LogLog(xLeft, xRight, yLeft, yRight float64) float64 {
	return loglog(xLeft, xRight, yLeft, yRight)
}

func histogram(xLeft, xRight, yLeft, _ float64) float64 {
	return yLeft * (xRight - xLeft)
}

func linearLinear(xLeft, xRight, yLeft, yRight float64) float64 {
	return 0.5 * (xRight - xLeft) * (yLeft + yRight)
}

// The integral of ln(x/xLeft) over the panel is xLeft (r (lx - 1) + 1) with
// r = xRight/xLeft = exp(lx), that is xLeft lx^2 momentRatio(lx).
func linearLog(xLeft, xRight, yLeft, yRight float64) float64 {
	lx := math.Log(xRight / xLeft)
	return (yRight-yLeft)*xLeft*lx*momentRatio(lx) + yLeft*(xRight-xLeft)
}

func logLinear(xLeft, xRight, yLeft, yRight float64) float64 {
	return yLeft * (xRight - xLeft) * expm1Ratio(math.Log(yRight/yLeft))
}

// The log-log panel y = yLeft (x/xLeft)^s integrates to
// yLeft xLeft ((xRight/xLeft)^(s+1) - 1) / (s+1).
func logLog(xLeft, xRight, yLeft, yRight float64) float64 {
	lx := math.Log(xRight / xLeft)
	slope := math.Log(yRight/yLeft) / lx
	return yLeft * xLeft * lx * expm1Ratio((slope+1)*lx)
}

// expm1Ratio returns (exp(d) - 1) / d, with its limit 1 at d = 0.
func expm1Ratio(d float64) float64 {
	if d == 0 {
		return 1
	}
	return math.Expm1(d) / d
}

// momentRatio returns (exp(d) (d - 1) + 1) / d^2, with its limit 1/2 at
// d = 0. Near zero the power series sum_{m>=2} (m-1) d^(m-2) / m! is used.
func momentRatio(d float64) float64 {
	if math.Abs(d) > 0.5 {
		return (math.Exp(d)*(d-1) + 1) / (d * d)
	}
	sum, term := 0.0, 0.5
	for m := 2; m < 24; m++ {
		sum += float64(m-1) * term
		term *= d / float64(m+1)
	}
	return sum
}

// Zeroth returns the integrator matching an interpolation law.
func Zeroth(law interpolation.Law) Func {
	switch law {
	case interpolation.LawHistogram:
		return Hist
	case interpolation.LawLinearLinear:
		return LinLin
	case interpolation.LawLinearLog:
		return LinLog
	case interpolation.LawLogLinear:
		return LogLin
	case interpolation.LawLogLog:
		return LogLog
	}
	panic("unhandled interpolation law")
}

// Integrate folds f over the consecutive panels of a table.
func Integrate(x, y []float64, f Func) float64 {
	var sum float64
	for i := 1; i < len(x); i++ {
		sum += f(x[i-1], x[i], y[i-1], y[i])
	}
	return sum
}

// Cumulative returns the running integral of f over the table, one value
// per grid point, starting at first.
func Cumulative(x, y []float64, f Func, first float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	result := make([]float64, len(x))
	result[0] = first
	for i := 1; i < len(x); i++ {
		result[i] = result[i-1] + f(x[i-1], x[i], y[i-1], y[i])
	}
	return result
}
