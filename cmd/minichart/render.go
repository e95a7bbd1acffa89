package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/minichart"
	"github.com/midbel/minichart/config"
	"github.com/midbel/minichart/decode"
	"github.com/midbel/minichart/host"
	"github.com/midbel/minichart/surface"
	"github.com/midbel/slices"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type job struct {
	Kind     string  `yaml:"kind"`
	Input    string  `yaml:"input"`
	Output   string  `yaml:"output"`
	Progress float64 `yaml:"progress"`

	config.Override `yaml:",inline"`
}

func renderJob(cfg config.Config, j job, logger logrus.FieldLogger) error {
	cfg = cfg.Merge(j.Override)
	if j.Output != "" {
		cfg.Output = j.Output
	}
	logger = logger.WithFields(logrus.Fields{
		"kind":  j.Kind,
		"input": j.Input,
	})
	doc, err := surface.New(cfg.Format, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	options, err := chartOptions(cfg, logger)
	if err != nil {
		return err
	}
	switch j.Kind {
	case kindLine:
		err = drawLine(doc, cfg, j.Input, options)
	case kindPie:
		err = drawPie(doc, cfg, j.Input, options)
	case kindColumn:
		err = drawColumn(doc, cfg, j.Input, options)
	case kindScatter:
		err = drawScatter(doc, cfg, j.Input, options, logger)
	case kindProgress:
		err = drawProgress(doc, cfg, j.Progress, options)
	default:
		err = errors.Errorf("%s: unrecognized chart type", j.Kind)
	}
	if err != nil {
		return err
	}
	if err := renderChart(cfg.Output, doc); err != nil {
		return err
	}
	logger.WithField("output", outputName(cfg.Output)).Debug("chart rendered")
	return nil
}

func drawLine(s minichart.Surface, cfg config.Config, input string, options []minichart.Option) error {
	points, err := decode.LoadPoints(input)
	if err != nil {
		return err
	}
	ch := minichart.NewLineChart(s, cfg.Height, cfg.Width, options...)
	ch.SetLineColor(cfg.LineColor)
	ch.ToggleLabels(cfg.Labels)
	return ch.Draw(points)
}

func drawPie(s minichart.Surface, cfg config.Config, input string, options []minichart.Option) error {
	segments, err := decode.LoadSegments(input)
	if err != nil {
		return err
	}
	ch := minichart.NewPieChart(s, cfg.Height, cfg.Width, cfg.Radius, options...)
	ch.SetFont(cfg.Font)
	ch.SetFontColor(cfg.FontColor)
	return ch.Draw(segments)
}

func drawColumn(s minichart.Surface, cfg config.Config, input string, options []minichart.Option) error {
	items, err := decode.LoadItems(input)
	if err != nil {
		return err
	}
	ch := minichart.NewColumnChart(s, cfg.Height, cfg.Width, options...)
	ch.SetFont(cfg.Font)
	ch.SetFontColor(cfg.FontColor)
	return ch.Draw(items, minichart.LabelPosition(cfg.LabelPosition))
}

func drawScatter(s minichart.Surface, cfg config.Config, input string, options []minichart.Option, logger logrus.FieldLogger) error {
	points, err := decode.LoadPoints(input)
	if err != nil {
		return err
	}
	var h *host.Memory
	if cfg.Hover != "" {
		h = host.NewMemory(0, 0)
		options = append(options, minichart.WithHost(h))
	}
	ch := minichart.NewScatterChart(s, cfg.Height, cfg.Width, options...)
	defer ch.Dispose()

	ch.SetPointColor(cfg.LineColor)
	ch.SetFont(cfg.Font)
	ch.SetFontColor(cfg.FontColor)
	if err := ch.Draw(points, minichart.LabelPosition(cfg.LabelPosition), cfg.Grid); err != nil {
		return err
	}
	if h == nil {
		return nil
	}
	x, y, err := parsePosition(cfg.Hover)
	if err != nil {
		return err
	}
	h.Move(x, y)
	for _, o := range h.Overlays() {
		if !o.Visible() {
			logger.WithFields(logrus.Fields{"x": x, "y": y}).Info("no point under pointer")
			continue
		}
		left, top := o.Position()
		logger.WithFields(logrus.Fields{
			"x":       x,
			"y":       y,
			"left":    left,
			"top":     top,
			"tooltip": o.Text(),
		}).Info("point under pointer")
	}
	return nil
}

func drawProgress(s minichart.Surface, cfg config.Config, value float64, options []minichart.Option) error {
	ch := minichart.NewProgressBar(s, cfg.Height, cfg.Width, options...)
	ch.SetBarColor(cfg.LineColor)
	ch.SetFont(cfg.Font)
	ch.SetFontColor(cfg.FontColor)
	if err := ch.SetProgress(value); err != nil {
		return err
	}
	return ch.Draw()
}

func chartOptions(cfg config.Config, logger logrus.FieldLogger) ([]minichart.Option, error) {
	options := []minichart.Option{
		minichart.WithLogger(logger),
	}
	if cfg.Margin >= 0 {
		options = append(options, minichart.WithMargin(cfg.Margin))
	}
	switch strings.ToLower(cfg.Palette) {
	case "":
		if cfg.Seed != 0 {
			options = append(options, minichart.WithColors(minichart.NewRandomColors(cfg.Seed)))
		}
	case "category10":
		options = append(options, minichart.WithColors(minichart.Category10))
	case "tableau10":
		options = append(options, minichart.WithColors(minichart.Tableau10))
	default:
		return nil, errors.Errorf("%s: unknown palette", cfg.Palette)
	}
	return options, nil
}

func parsePosition(str string) (float64, float64, error) {
	vs := strings.Split(str, ",")
	if len(vs) != 2 {
		return 0, 0, errors.Errorf("%s: position should be given as x,y", str)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(slices.Fst(vs)), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s: invalid x", str)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(slices.Lst(vs)), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s: invalid y", str)
	}
	return x, y, nil
}

func renderChart(file string, doc surface.Document) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	return doc.Render(w)
}

func outputName(file string) string {
	if file == "" {
		return "stdout"
	}
	return file
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
