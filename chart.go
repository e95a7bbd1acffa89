package minichart

import (
	"github.com/sirupsen/logrus"
)

// Option configures a chart at construction time.
type Option func(*base)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithColors sets where the fallback colors of items without their own
// color come from. Use a seeded RandomColors or a Palette to get
// reproducible output.
func WithColors(src ColorSource) Option {
	return func(b *base) {
		if src != nil {
			b.colors = src
		}
	}
}

// WithHost attaches the host environment used by the scatter chart to
// show tooltips. Other charts ignore it.
func WithHost(h Host) Option {
	return func(b *base) {
		b.host = h
	}
}

// WithMargin sets the initial margin, ignoring negative values.
func WithMargin(m float64) Option {
	return func(b *base) {
		if m >= 0 {
			b.margin = m
		}
	}
}

type base struct {
	surface Surface
	width   float64
	height  float64
	margin  float64

	showLabels bool
	style

	colors ColorSource
	host   Host
	logger logrus.FieldLogger
}

func makeBase(kind string, s Surface, height, width, margin float64, options []Option) base {
	b := base{
		surface:    s,
		width:      width,
		height:     height,
		margin:     margin,
		showLabels: true,
	}
	for _, o := range options {
		o(&b)
	}
	if b.colors == nil {
		b.colors = defaultColors()
	}
	if b.logger == nil {
		b.logger = logrus.StandardLogger()
	}
	b.logger = b.logger.WithField("chart", kind)
	return b
}

func (b *base) Width() float64 {
	return b.width
}

func (b *base) Height() float64 {
	return b.height
}

func (b *base) Margin() float64 {
	return b.margin
}

func (b *base) DrawingWidth() float64 {
	return b.width - 2*b.margin
}

func (b *base) DrawingHeight() float64 {
	return b.height - 2*b.margin
}

func (b *base) SetMargin(m float64) error {
	if m < 0 || !isFinite(m) {
		err := outOfRange("margin %v: must be greater than or equal to 0", m)
		b.logger.WithField("margin", m).Error(err)
		return err
	}
	b.margin = m
	return nil
}

func (b *base) ToggleLabels(show bool) {
	b.showLabels = show
}

func (b *base) LabelsVisible() bool {
	return b.showLabels
}

func (b *base) SetFont(font string) {
	b.font = font
}

func (b *base) SetFontColor(color string) {
	b.fontColor = color
}

func (b *base) reject(err error, count int) error {
	b.logger.WithField("count", count).Error(err)
	return err
}

func (b *base) clear() {
	b.surface.ClearRect(0, 0, b.width, b.height)
}

func (b *base) fillColor(color string, i int) string {
	if color != "" {
		return color
	}
	return b.colors.Color(i)
}
