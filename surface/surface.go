// Package surface provides the drawing surfaces the charts render onto: a
// svg document, a PNG image and a recorder of the drawing calls.
package surface

import (
	"io"
	"strings"

	"github.com/midbel/minichart"
	"github.com/pkg/errors"
)

const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatTrace = "trace"
)

// Document is a surface that can be written out once drawn.
type Document interface {
	minichart.Surface
	Render(io.Writer) error
}

// New creates the Document for the given output format.
func New(format string, width, height float64) (Document, error) {
	switch strings.ToLower(format) {
	case FormatSVG, "":
		return NewSVG(width, height), nil
	case FormatPNG:
		return NewRaster(px(width), px(height))
	case FormatTrace:
		return NewRecorder(width, height), nil
	default:
		return nil, errors.Errorf("%s: unsupported output format", format)
	}
}
