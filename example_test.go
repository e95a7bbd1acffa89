package minichart_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/midbel/minichart"
	"github.com/midbel/minichart/host"
	"github.com/midbel/minichart/surface"
	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func ExampleLineChart() {
	rec := surface.NewRecorder(400, 300)
	ch := minichart.NewLineChart(rec, 300, 400)
	ch.Draw([]minichart.Point{
		minichart.NumberPoint(0, 0),
		minichart.NumberPoint(10, 10),
		minichart.NumberPoint(20, 5),
	})
	fmt.Println(strings.Join(rec.Texts(), " "))
	// Output:
	// 0 4 8 12 16 20 0 2 4 6 8 10
}

func ExamplePieChart() {
	rec := surface.NewRecorder(200, 200)
	ch := minichart.NewPieChart(rec, 200, 200, 0, minichart.WithColors(minichart.Category10))
	ch.Draw([]minichart.Segment{
		{Value: 1},
		{Value: 1},
		{Value: 2},
	})
	for _, o := range rec.Find("arc") {
		fmt.Printf("%.2f %.2f\n", o.Args[3], o.Args[4])
	}
	// Output:
	// 0.00 1.57
	// 1.57 3.14
	// 3.14 6.28
}

func ExampleColumnChart() {
	rec := surface.NewRecorder(200, 100)
	ch := minichart.NewColumnChart(rec, 100, 200, minichart.WithColors(minichart.Tableau10))
	ch.Draw([]minichart.BarItem{
		{Value: 5, Label: "a"},
		{Value: 10, Label: "b"},
	}, minichart.LabelAbove)
	for _, o := range rec.Find("rect") {
		fmt.Println(o)
	}
	// Output:
	// rect(0, 50, 98, 50)
	// rect(100, 0, 98, 100)
}

func ExampleScatterChart() {
	var (
		rec = surface.NewRecorder(1000, 1000)
		h   = host.NewMemory(0, 0)
		ch  = minichart.NewScatterChart(rec, 1000, 1000, minichart.WithHost(h), minichart.WithMargin(0))
	)
	defer ch.Dispose()

	ch.Draw([]minichart.Point{
		{X: 250, Y: 750, Label: "top-left"},
		{X: 750, Y: 250},
	}, minichart.LabelAbove, false)

	h.Move(253, 254)
	fmt.Println(h.Overlays()[0].Text())
	h.Move(745, 750)
	fmt.Println(h.Overlays()[0].Text())
	// Output:
	// top-left
	// (750, 250)
}

func ExampleProgressBar() {
	rec := surface.NewRecorder(200, 20)
	bar := minichart.NewProgressBar(rec, 20, 200, minichart.WithLogger(quietLogger()))
	if err := bar.SetProgress(150); err != nil {
		fmt.Println(err)
	}
	bar.SetProgress(42)
	bar.Draw()
	fmt.Println(rec.Texts())
	// Output:
	// progress 150: must be between 0 and 100: value out of range
	// [42%]
}
