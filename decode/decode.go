// Package decode reads the datasets of the charts from JSON, YAML or CSV
// documents stored in local files or behind http(s) urls.
package decode

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/minichart"
	"github.com/midbel/slices"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FetchTimeout bounds the whole request made to fetch a remote dataset.
const FetchTimeout = 30 * time.Second

var httpClient = &http.Client{
	Timeout: FetchTimeout,
}

const (
	schemeHttp  = "http"
	schemeHttps = "https"
	schemeFile  = "file"
)

// FormatOf guesses the format of a dataset from its extension. Unknown
// extensions are read as JSON.
func FormatOf(location string) Format {
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		location = u.Path
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}

// record holds every field a dataset entry can have whatever the chart
// it is meant for.
type record struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
	Color string  `json:"color" yaml:"color"`
}

func (r record) point() minichart.Point {
	return minichart.Point{
		X:     r.X,
		Y:     r.Y,
		Label: r.Label,
		Color: r.Color,
	}
}

func (r record) segment() minichart.Segment {
	return minichart.Segment{
		Value: r.Value,
		Label: r.Label,
		Color: r.Color,
	}
}

func (r record) item() minichart.BarItem {
	return minichart.BarItem{
		Value: r.Value,
		Label: r.Label,
		Color: r.Color,
	}
}

func Points(r io.Reader, format Format) ([]minichart.Point, error) {
	return decodeAs(r, format, record.point)
}

func Segments(r io.Reader, format Format) ([]minichart.Segment, error) {
	return decodeAs(r, format, record.segment)
}

func Items(r io.Reader, format Format) ([]minichart.BarItem, error) {
	return decodeAs(r, format, record.item)
}

func LoadPoints(location string) ([]minichart.Point, error) {
	return load(location, Points)
}

func LoadSegments(location string) ([]minichart.Segment, error) {
	return load(location, Segments)
}

func LoadItems(location string) ([]minichart.BarItem, error) {
	return load(location, Items)
}

type decodeFunc[T any] func(io.Reader, Format) ([]T, error)

func load[T any](location string, decode decodeFunc[T]) ([]T, error) {
	r, err := Open(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := decode(r, FormatOf(location))
	if err != nil {
		var de DecodeError
		if errors.As(err, &de) {
			de.File = location
			return nil, de
		}
		return nil, errors.WithMessage(err, location)
	}
	return list, nil
}

func decodeAs[T any](r io.Reader, format Format, conv func(record) T) ([]T, error) {
	var (
		list []record
		err  error
	)
	switch format {
	case FormatJSON, "":
		list, err = decodeJSON(r)
	case FormatYAML:
		list, err = decodeYAML(r)
	case FormatCSV:
		list, err = decodeCSV(r)
	default:
		return nil, errors.Errorf("%s: unsupported format", format)
	}
	if err != nil {
		return nil, err
	}
	all := make([]T, 0, len(list))
	for _, rec := range list {
		all = append(all, conv(rec))
	}
	return all, nil
}

func decodeJSON(r io.Reader) ([]record, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(minichart.ErrInvalidData, "empty document")
		}
		return nil, errors.Wrap(err, "decode json")
	}
	if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '[' {
		return nil, errors.Wrap(minichart.ErrInvalidData, "document is not an array")
	}
	var list []record
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(minichart.ErrInvalidData, err.Error())
	}
	return list, nil
}

func decodeYAML(r io.Reader) ([]record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(minichart.ErrInvalidData, "empty document")
		}
		return nil, errors.Wrap(err, "decode yaml")
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = slices.Fst(node.Content)
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Wrap(minichart.ErrInvalidData, "document is not a sequence")
	}
	var list []record
	if err := node.Decode(&list); err != nil {
		return nil, errors.Wrap(minichart.ErrInvalidData, err.Error())
	}
	return list, nil
}

// decodeCSV reads records whose first row names the columns: x, y,
// value, label and color. Unknown columns are ignored.
func decodeCSV(r io.Reader) ([]record, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(minichart.ErrInvalidData, "empty document")
		}
		return nil, errors.Wrap(err, "read csv header")
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	var (
		list []record
		line = 1
	)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "read csv")
		}
		line++
		rec, err := readRecord(header, row, line)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, nil
}

func readRecord(header, row []string, line int) (record, error) {
	var rec record
	for i, name := range header {
		if i >= len(row) {
			break
		}
		var (
			str = strings.TrimSpace(row[i])
			ptr *float64
		)
		switch name {
		case "x":
			ptr = &rec.X
		case "y":
			ptr = &rec.Y
		case "value":
			ptr = &rec.Value
		case "label":
			rec.Label = str
		case "color":
			rec.Color = str
		}
		if ptr == nil || str == "" {
			continue
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return rec, DecodeError{
				Line:    line,
				Field:   name,
				Message: "not a number",
			}
		}
		*ptr = f
	}
	return rec, nil
}

// IsRemote reports whether location is fetched over http(s).
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == schemeHttp || u.Scheme == schemeHttps)
}

// Open gives a reader on a local file or on the body of a http(s)
// resource. "-" reads the standard input.
func Open(location string) (io.ReadCloser, error) {
	if location == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: invalid location", location)
	}
	switch u.Scheme {
	case schemeHttp, schemeHttps:
		res, err := httpClient.Get(u.String())
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", location)
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, errors.Errorf("fetch %s: unexpected status %s", location, res.Status)
		}
		return res.Body, nil
	case "", schemeFile:
		path := u.Path
		if u.Scheme == "" {
			path = location
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		return f, nil
	default:
		return nil, errors.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
