package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/midbel/slices"
	"github.com/midbel/theta"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

func main() {
	var (
		kind   = flag.String("type", "line", "chart type (line, bar)")
		xdata  = flag.String("xdata", "number", "x data type (number, label)")
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of first y column")
		width  = flag.Int("width", defaultWidth, "chart width")
		height = flag.Int("height", defaultHeight, "chart height")
		origin = flag.Int("origin", int(theta.BottomLeft), "origin corner (0=TL, 1=TR, 2=BR, 3=BL)")
		xaxis  = flag.Int("xaxis", 50, "x axis height")
		yaxis  = flag.Int("yaxis", 50, "y axis width")
		margin = flag.Int("margin", 20, "margin")
		color  = flag.String("color", "", "base color")
		shift  = flag.Float64("shift", theta.DefaultShiftDegrees, "hue shift between series")
		marker = flag.String("marker", "", "line point marker (circle, square, diamond)")
		header = flag.Bool("header", true, "skip the first row")
		file   = flag.String("file", "", "output file")
	)
	flag.Parse()

	rows, err := readFile(flag.Arg(0), *header)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	base := theta.DefaultColor
	if *color != "" {
		base, err = theta.ParseColor(*color)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	w, err := output(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer w.Close()

	switch *kind {
	case "line", "":
		var point theta.PointFunc
		point, err = getPointFunc(*marker)
		if err != nil {
			break
		}
		err = drawLine(w, rows, *xcol, *ycol, *xdata == "label", base, point, view{*width, *height, *origin, *xaxis, *yaxis, *margin})
	case "bar":
		err = drawBars(w, rows, *xcol, *ycol, base, *shift, view{*width, *height, *origin, *xaxis, *yaxis, *margin})
	default:
		err = fmt.Errorf("%s: invalid chart type - choose between line or bar", *kind)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type view struct {
	Width  int
	Height int
	Origin int
	XAxis  int
	YAxis  int
	Margin int
}

func drawLine(w io.Writer, rows [][]string, xcol, ycol int, xlabel bool, base theta.Color, point theta.PointFunc, v view) error {
	x, err := makeSerie(rows, xcol, xlabel)
	if err != nil {
		return err
	}
	y, err := makeSerie(rows, ycol, false)
	if err != nil {
		return err
	}
	ch := theta.NewCartesian(x, y).
		SetView(v.Width, v.Height, theta.Corner(v.Origin), v.XAxis, v.YAxis, v.Margin)
	rdr := theta.LineChart{
		Color: base,
		Point: point,
	}
	return rdr.Render(w, ch)
}

func getPointFunc(name string) (theta.PointFunc, error) {
	switch name {
	case "":
		return nil, nil
	case "circle":
		return theta.GetCircle, nil
	case "square":
		return theta.GetSquare, nil
	case "diamond":
		return theta.GetDiamond, nil
	default:
		return nil, fmt.Errorf("%s: invalid marker name - choose between circle, square or diamond", name)
	}
}

func drawBars(w io.Writer, rows [][]string, xcol, ycol int, base theta.Color, shift float64, v view) error {
	grp := theta.NewGroup().
		SetView(v.Width, v.Height, theta.Corner(v.Origin), v.XAxis, v.YAxis, v.Margin)
	x, err := makeSerie(rows, xcol, true)
	if err != nil {
		return err
	}
	for col := ycol; col < columns(rows); col++ {
		if col == xcol {
			continue
		}
		y, err := makeSerie(rows, col, false)
		if err != nil {
			return err
		}
		grp = grp.AddData(x, y)
	}
	rdr := theta.BarGroupChart{
		Color: base,
		Shift: shift,
	}
	return rdr.Render(w, grp)
}

func readFile(file string, header bool) ([][]string, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rs := csv.NewReader(r)
	if header {
		if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func makeSerie(rows [][]string, col int, label bool) (theta.Serie, error) {
	var (
		labels []string
		values []float64
	)
	for i, row := range rows {
		if col >= len(row) {
			return theta.Serie{}, fmt.Errorf("row %d: no column %d", i+1, col)
		}
		if label {
			labels = append(labels, row[col])
			continue
		}
		f, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return theta.Serie{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		values = append(values, f)
	}
	if label {
		return theta.LabelSerie(labels...), nil
	}
	return theta.NumberSerie(values...), nil
}

func columns(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(slices.Fst(rows))
}

func output(file string) (io.WriteCloser, error) {
	if file == "" {
		return os.Stdout, nil
	}
	return os.Create(file)
}
