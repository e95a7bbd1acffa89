package minichart

const (
	MinProgress = 0.0
	MaxProgress = 100.0
)

type ProgressBar struct {
	base
	progress float64
}

func NewProgressBar(s Surface, height, width float64, options ...Option) *ProgressBar {
	return &ProgressBar{
		base: makeBase("progress", s, height, width, 0, options),
	}
}

func (p *ProgressBar) SetBarColor(color string) {
	p.line = color
}

func (p *ProgressBar) BarColor() string {
	return p.lineOr(DefaultLineColor)
}

func (p *ProgressBar) Progress() float64 {
	return p.progress
}

// SetProgress rejects values outside of [MinProgress, MaxProgress] and
// keeps the current one.
func (p *ProgressBar) SetProgress(v float64) error {
	if !(v >= MinProgress && v <= MaxProgress) {
		err := outOfRange("progress %v: must be between %v and %v", v, MinProgress, MaxProgress)
		p.logger.WithField("progress", v).Error(err)
		return err
	}
	p.progress = v
	return nil
}

func (p *ProgressBar) Draw() error {
	var (
		s      = p.surface
		width  = p.DrawingWidth()
		height = p.DrawingHeight()
	)
	p.clear()

	s.BeginPath()
	s.Rect(p.margin, p.margin, width, height)
	s.SetFillStyle(DefaultTrackColor)
	s.Fill()

	s.BeginPath()
	s.Rect(p.margin, p.margin, width*p.progress/MaxProgress, height)
	s.SetFillStyle(p.BarColor())
	s.Fill()

	s.BeginPath()
	s.Rect(p.margin, p.margin, width, height)
	s.SetStrokeStyle(DefaultFrameColor)
	s.SetLineWidth(1)
	s.Stroke()

	s.SetFillStyle(p.fontColorOr(DefaultFontColor))
	s.SetFont(p.fontOr(DefaultLabelFont))
	s.SetTextAlign(AlignCenter)
	s.FillText(formatTick(p.progress)+"%", p.width/2, p.height/2+ParseFont(p.fontOr(DefaultLabelFont)).Size/3)
	return nil
}
