package piecewise

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
)

// DrawPS writes a PostScript plot of the table to path. The curve is drawn
// through the linearised table and the grid points are marked with dots.
func (t *Table) DrawPS(path string) error {
	ps, err := os.Create(path)
	if err != nil {
		return err
	}
	defer ps.Close()

	if err := t.WritePS(ps); err != nil {
		return err
	}
	return ps.Close()
}

// WritePS writes the PostScript plot of DrawPS to w.
func (t *Table) WritePS(w io.Writer) error {
	lin, err := t.Linearise(nil)
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)

	fmt.Fprint(b, psPreamble)
	writePSArray(b, "XValues", lin.x)
	writePSArray(b, "YValues", lin.y)
	writePSArray(b, "GridX", t.x)
	writePSArray(b, "GridY", t.y)

	xmin, xmax := t.x[0], t.x[len(t.x)-1]
	ymin, ymax := min(floats.Min(lin.y), 0), max(floats.Max(lin.y), 0)
	fmt.Fprintf(b, "/Xmin %v dup %v exch sub 0.01 mul abs sub def\n", xmin, xmax)
	fmt.Fprintf(b, "/Xmax %v dup %v sub 0.01 mul abs add def\n", xmax, xmin)
	fmt.Fprintf(b, "/Ymin %v dup %v exch sub 0.01 mul abs sub def\n", ymin, ymax)
	fmt.Fprintf(b, "/Ymax %v dup %v sub 0.01 mul abs add def\n", ymax, ymin)

	fmt.Fprint(b, psPlot)
	fmt.Fprintf(b, "10 10 (x: %v - %v) label\n", xmin, xmax)
	fmt.Fprintf(b, "10 24 (y: %v - %v) label\n", ymin, ymax)
	fmt.Fprintf(b, "10 38 (%v regions, %v laws) label\n", len(t.regions), t.laws)
	fmt.Fprint(b, "\nshowpage\nquit\n")

	return b.Flush()
}

func writePSArray(w io.Writer, name string, values []float64) {
	fmt.Fprintf(w, "/%s [\n", name)
	for i, v := range values {
		fmt.Fprintf(w, " %v\t%% %v\n", v, i)
	}
	fmt.Fprintf(w, "] def\n")
}

const psPreamble = `%!PS
/grid_major_color {1 .6 .6} def
/grid_color {.7 1 1} def
/line_color {.5 .5 .5} def
/dot_color {.1 .1 .1} def
/radius 1 def
/grid_major_lw 1.5 def
/grid_lw .5 def
/major 10 def

% Usage: dx dy w h gridwh
/gridwh {
  4 dict begin
    /h exch def
    /w exch def
    /dy exch def
    /dx exch def
    gsave
        grid_lw setlinewidth
        grid_color setrgbcolor
        newpath
        dx dx w { 0 moveto 0 h rlineto } for
        dy dy h { 0 exch moveto w 0 rlineto } for
        stroke
        newpath
        grid_major_lw setlinewidth
        grid_major_color setrgbcolor
        0 dx major mul w { 0 moveto 0 h rlineto } for
        0 dy major mul h { 0 exch moveto w 0 rlineto } for
        stroke
    grestore
  end
} bind def

% Usage: x y (text) label
/label {
    3 1 roll moveto
    /Helvetica findfont 10 scalefont setfont
    0 0 0 setrgbcolor show
} bind def

% Usage: X Y proc plot
% Calls proc with the translated coordinates of every point but the first.
/plot {
  3 dict begin
    /proc exch def
    /Y exch def
    /X exch def
    1 1 X length 1 sub {
        dup X exch get exch Y exch get
        Translate proc
    } for
  end
} bind def

`

const psPlot = `
/Xsize Xmax Xmin sub def
/Ysize Ymax Ymin sub def

/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

w 10 div h 10 div w h gridwh

/Translate { % x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def

% lines
newpath
line_color setrgbcolor
XValues 0 get YValues 0 get Translate moveto
XValues YValues { lineto } plot
stroke

% dots
dot_color setrgbcolor
newpath
GridX 0 get GridY 0 get Translate radius 0 360 arc stroke
GridX GridY { newpath radius 0 360 arc stroke } plot

`
