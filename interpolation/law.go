// Package interpolation provides the interpolation laws used on the panels
// of a piecewise table.
package interpolation

import (
	"fmt"
	"strings"
)

// Law is an interpolation law tag. The numbering follows the ENDF
// interpolation schemes.
type Law int

const (
	LawHistogram    Law = 1
	LawLinearLinear Law = 2
	LawLinearLog    Law = 3
	LawLogLinear    Law = 4
	LawLogLog       Law = 5
)

var lawNames = map[Law]string{
	LawHistogram:    "Histogram",
	LawLinearLinear: "LinearLinear",
	LawLinearLog:    "LinearLog",
	LawLogLinear:    "LogLinear",
	LawLogLog:       "LogLog",
}

func (l Law) String() string {
	if name, ok := lawNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Law(%d)", int(l))
}

// Valid reports whether l is one of the five known laws.
func (l Law) Valid() bool {
	_, ok := lawNames[l]
	return ok
}

// LogX reports whether the law works on ln(x).
func (l Law) LogX() bool {
	return l == LawLinearLog || l == LawLogLog
}

// LogY reports whether the law works on ln(y).
func (l Law) LogY() bool {
	return l == LawLogLinear || l == LawLogLog
}

// Func returns the interpolation function of the law.
func (l Law) Func() Func {
	switch l {
	case LawHistogram:
		return Hist
	case LawLinearLinear:
		return LinLin
	case LawLinearLog:
		return LinLog
	case LawLogLinear:
		return LogLin
	case LawLogLog:
		return LogLog
	}
	panic("unhandled interpolation law")
}

// Interpolate evaluates the law on the panel [xLeft, xRight].
func (l Law) Interpolate(x, xLeft, xRight, yLeft, yRight float64) float64 {
	return l.Func()(x, xLeft, xRight, yLeft, yRight)
}

// ParseLaw accepts a law name (case insensitive) or its ENDF number.
func ParseLaw(s string) (Law, error) {
	s = strings.TrimSpace(s)
	for l, name := range lawNames {
		if strings.EqualFold(name, s) || s == fmt.Sprint(int(l)) {
			return l, nil
		}
	}
	switch strings.ToLower(s) {
	case "linlin", "lin-lin":
		return LawLinearLinear, nil
	case "linlog", "lin-log":
		return LawLinearLog, nil
	case "loglin", "log-lin":
		return LawLogLinear, nil
	case "log-log":
		return LawLogLog, nil
	case "constant":
		return LawHistogram, nil
	}
	return 0, fmt.Errorf("unknown interpolation law %q", s)
}

func (l Law) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid interpolation law %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Law) UnmarshalText(text []byte) error {
	v, err := ParseLaw(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
