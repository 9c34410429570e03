package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/midbel/theta"
	"golang.org/x/sync/errgroup"
)

func main() {
	dir := flag.String("dir", ".", "output directory")
	flag.Parse()

	charts := map[string]func(io.Writer) error{
		"line":            drawLine,
		"line-category":   drawCategoryLine,
		"bars":            drawBars,
		"bars-horizontal": drawHorizontalBars,
	}
	var grp errgroup.Group
	for name, draw := range charts {
		name, draw := name, draw
		grp.Go(func() error {
			w, err := os.Create(filepath.Join(*dir, name+".svg"))
			if err != nil {
				return err
			}
			defer w.Close()
			return draw(w)
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func drawLine(w io.Writer) error {
	ch := theta.NewCartesian(
		theta.NumberSerie(1, 6, 9),
		theta.NumberSerie(1, 3, 5),
	).SetView(820, 620, theta.BottomLeft, 100, 100, 20)
	rdr := theta.LineChart{
		Color: theta.DefaultColor,
	}
	return rdr.Render(w, ch)
}

func drawCategoryLine(w io.Writer) error {
	ch := theta.NewCartesian(
		theta.LabelSerie("jan", "feb", "mar", "apr", "may", "jun"),
		theta.NumberSerie(14.2, 9.8, 17.5, 21.0, 18.4, 25.1),
	).SetView(800, 600, theta.BottomLeft, 50, 50, 20)
	rdr := theta.LineChart{
		Color: theta.DefaultColor,
		Point: theta.GetDiamond,
	}
	return rdr.Render(w, ch)
}

func drawBars(w io.Writer) error {
	grp := theta.NewGroup().
		SetView(840, 640, theta.BottomLeft, 50, 50, 20).
		AddData(
			theta.LabelSerie("A", "B", "C"),
			theta.NumberSerie(0.7, 1.5, 1.9),
		).
		AddData(
			theta.LabelSerie("A", "B", "C"),
			theta.NumberSerie(0.3, 0.5, 0.9),
		)
	rdr := theta.BarGroupChart{
		Color: theta.DefaultColor,
	}
	return rdr.Render(w, grp)
}

func drawHorizontalBars(w io.Writer) error {
	grp := theta.NewGroup().
		SetView(840, 640, theta.BottomLeft, 50, 50, 20).
		AddData(
			theta.NumberSerie(12, 25, 8),
			theta.LabelSerie("north", "south", "west"),
		).
		AddData(
			theta.NumberSerie(7, 19, 14),
			theta.LabelSerie("north", "south", "west"),
		)
	rdr := theta.BarGroupChart{
		Color: theta.DefaultColor,
		Shift: 120,
	}
	return rdr.Render(w, grp)
}
