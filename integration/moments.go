package integration

import (
	"math"

	"github.com/Maxime2/piecewise/interpolation"
)

// The mean integrators return the first raw moment of a panel, the
// integral of x f(x) over [xLeft, xRight].

var (
	histMean   = panel(histogramMean)
	linlinMean = panel(linearLinearMean)
	linlogMean = panel(linearLogMean)
	loglinMean = panel(logLinearMean)
	loglogMean = panel(logLogMean)
)

// HistMean is the first raw moment of a histogram panel.
func HistMean(xLeft, xRight, yLeft, yRight float64) float64 {
	return histMean(xLeft, xRight, yLeft, yRight)
}

// LinLinMean is the first raw moment of a linear-linear panel.
func LinLinMean(xLeft, xRight, yLeft, yRight float64) float64 {
	return linlinMean(xLeft, xRight, yLeft, yRight)
}

// LinLogMean is the first raw moment of a linear-log panel.
func LinLogMean(xLeft, xRight, yLeft, yRight float64) float64 {
	return linlogMean(xLeft, xRight, yLeft, yRight)
}

// LogLinMean is the first raw moment of a log-linear panel.
func LogLinMean(xLeft, xRight, yLeft, yRight float64) float64 {
	return loglinMean(xLeft, xRight, yLeft, yRight)
}

// LogLogMean is the first raw moment of a log-log panel.
func LogLogMean(xLeft, xRight, yLeft, yRight float64) float64 {
	return loglogMean(xLeft, xRight, yLeft, yRight)
}

func histogramMean(xLeft, xRight, yLeft, _ float64) float64 {
	return 0.5 * yLeft * (xRight - xLeft) * (xRight + xLeft)
}

func linearLinearMean(xLeft, xRight, yLeft, yRight float64) float64 {
	delta := xRight - xLeft
	slope := (yRight - yLeft) / delta / 3
	constant := 0.5 * (xRight*yLeft - xLeft*yRight) / delta
	return xRight*xRight*(slope*xRight+constant) - xLeft*xLeft*(slope*xLeft+constant)
}

// The integral of x ln(x/xLeft) is xLeft^2 (r^2 (2 lx - 1) + 1) / 4, which is
// xLeft^2 lx^2 momentRatio(2 lx).
func linearLogMean(xLeft, xRight, yLeft, yRight float64) float64 {
	lx := math.Log(xRight / xLeft)
	return (yRight-yLeft)*xLeft*xLeft*lx*momentRatio(2*lx) +
		0.5*yLeft*(xRight-xLeft)*(xRight+xLeft)
}

func logLinearMean(xLeft, xRight, yLeft, yRight float64) float64 {
	delta := xRight - xLeft
	d := math.Log(yRight / yLeft)
	return yLeft * delta * (xLeft*expm1Ratio(d) + delta*momentRatio(d))
}

func logLogMean(xLeft, xRight, yLeft, yRight float64) float64 {
	lx := math.Log(xRight / xLeft)
	slope := math.Log(yRight/yLeft) / lx
	return yLeft * xLeft * xLeft * lx * expm1Ratio((slope+2)*lx)
}

// HistVariance returns the integrator of (x - mean)^2 f(x) over a
// histogram panel.
func HistVariance(mean float64) Func {
	return panel(func(xLeft, xRight, yLeft, _ float64) float64 {
		return yLeft * ((xRight*xRight*xRight-xLeft*xLeft*xLeft)/3 -
			mean*(xRight*xRight-xLeft*xLeft) +
			mean*mean*(xRight-xLeft))
	})
}

// LinLinVariance returns the integrator of (x - mean)^2 f(x) over a
// linear-linear panel.
func LinLinVariance(mean float64) Func {
	return panel(func(xLeft, xRight, yLeft, yRight float64) float64 {
		delta := xRight - xLeft
		slope := (yRight - yLeft) / delta
		constant := (xRight*yLeft - xLeft*yRight) / delta

		a := slope / 4
		b := (constant - 2*slope*mean) / 3
		c := (slope*mean - 2*constant) * mean / 2
		d := constant * mean * mean
		primitive := func(x float64) float64 {
			return (((a*x+b)*x+c)*x + d) * x
		}
		return primitive(xRight) - primitive(xLeft)
	})
}

// FirstMoment returns the mean integrator matching an interpolation law.
func FirstMoment(law interpolation.Law) Func {
	switch law {
	case interpolation.LawHistogram:
		return HistMean
	case interpolation.LawLinearLinear:
		return LinLinMean
	case interpolation.LawLinearLog:
		return LinLogMean
	case interpolation.LawLogLinear:
		return LogLinMean
	case interpolation.LawLogLog:
		return LogLogMean
	}
	panic("unhandled interpolation law")
}

// Variance returns the second central moment integrator of a law, or nil
// when no closed form is provided for it.
func Variance(law interpolation.Law, mean float64) Func {
	switch law {
	case interpolation.LawHistogram:
		return HistVariance(mean)
	case interpolation.LawLinearLinear:
		return LinLinVariance(mean)
	}
	return nil
}
