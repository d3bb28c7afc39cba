package interpolation

import "math"

// Func interpolates a value at x on the panel [xLeft, xRight].
type Func func(x, xLeft, xRight, yLeft, yRight float64) float64

// Hist is the histogram law: y is constant and equal to yLeft.
func Hist(x, xLeft, xRight, yLeft, yRight float64) float64 {
	return yLeft
}

// LinLin is the linear-linear law: y is linear in x.
func LinLin(x, xLeft, xRight, yLeft, yRight float64) float64 {
	if x == xRight {
		return yRight
	}
	return yLeft + (yRight-yLeft)/(xRight-xLeft)*(x-xLeft)
}

// LinLog is the linear-log law: y is linear in ln(x). x values must be
// positive.
func LinLog(x, xLeft, xRight, yLeft, yRight float64) float64 {
	if x == xRight {
		return yRight
	}
	return yLeft + (yRight-yLeft)/math.Log(xRight/xLeft)*math.Log(x/xLeft)
}

// LogLin is the log-linear law: ln(y) is linear in x. y values must be
// non-zero and of the same sign.
func LogLin(x, xLeft, xRight, yLeft, yRight float64) float64 {
	if x == xRight {
		return yRight
	}
	return yLeft * math.Pow(yRight/yLeft, (x-xLeft)/(xRight-xLeft))
}

// LogLog is the log-log law: ln(y) is linear in ln(x).
func LogLog(x, xLeft, xRight, yLeft, yRight float64) float64 {
	if x == xRight {
		return yRight
	}
	return yLeft * math.Pow(yRight/yLeft, math.Log(x/xLeft)/math.Log(xRight/xLeft))
}
