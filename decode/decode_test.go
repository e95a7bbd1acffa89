package decode

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/midbel/minichart"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	data := map[string]Format{
		"points.json":                   FormatJSON,
		"points.YAML":                   FormatYAML,
		"dir/points.yml":                FormatYAML,
		"items.csv":                     FormatCSV,
		"noext":                         FormatJSON,
		"https://host/data.csv?page=1":  FormatCSV,
		"file:///var/lib/data/pie.yaml": FormatYAML,
	}
	for loc, want := range data {
		assert.Equal(t, want, FormatOf(loc), loc)
	}
}

func TestPoints(t *testing.T) {
	want := []minichart.Point{
		{X: 1, Y: 2},
		{X: 3.5, Y: -1, Label: "b", Color: "#ff0000"},
	}
	data := []struct {
		Name   string
		Format Format
		Input  string
	}{
		{
			Name:   "json",
			Format: FormatJSON,
			Input:  `[{"x": 1, "y": 2}, {"x": 3.5, "y": -1, "label": "b", "color": "#ff0000"}]`,
		},
		{
			Name:   "yaml",
			Format: FormatYAML,
			Input:  "- x: 1\n  y: 2\n- {x: 3.5, y: -1, label: b, color: \"#ff0000\"}\n",
		},
		{
			Name:   "csv",
			Format: FormatCSV,
			Input:  "X,y,label,color,extra\n1,2,,,z\n3.5,-1,b,#ff0000,z\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got, err := Points(strings.NewReader(d.Input), d.Format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSegmentsAndItems(t *testing.T) {
	const doc = `[{"value": 10, "label": "a"}, {"value": 30, "color": "#00ff00"}]`

	segments, err := Segments(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []minichart.Segment{{Value: 10, Label: "a"}, {Value: 30, Color: "#00ff00"}}, segments)

	items, err := Items(strings.NewReader("value,label\n4,x\n,y\n"), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []minichart.BarItem{{Value: 4, Label: "x"}, {Value: 0, Label: "y"}}, items)
}

func TestDecodeErrors(t *testing.T) {
	data := []struct {
		Name   string
		Format Format
		Input  string
	}{
		{Name: "json-object", Format: FormatJSON, Input: `{"x": 1}`},
		{Name: "json-empty", Format: FormatJSON, Input: ""},
		{Name: "json-types", Format: FormatJSON, Input: `[{"x": "one"}]`},
		{Name: "yaml-mapping", Format: FormatYAML, Input: "x: 1\n"},
		{Name: "yaml-empty", Format: FormatYAML, Input: ""},
		{Name: "csv-empty", Format: FormatCSV, Input: ""},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			_, err := Points(strings.NewReader(d.Input), d.Format)
			assert.ErrorIs(t, err, minichart.ErrInvalidData)
		})
	}

	_, err := Points(strings.NewReader("x,y\n1,2\n3,abc\n"), FormatCSV)
	var de DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Line)
	assert.Equal(t, "y", de.Field)

	_, err = Points(strings.NewReader("[]"), "xml")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- value: 1\n- value: 2\n"), 0o644))
	items, err := LoadItems(file)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	file = filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(file, []byte("value\nfoo\n"), 0o644))
	_, err = LoadItems(file)
	var de DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, file, de.File)
	assert.Equal(t, 2, de.Line)

	_, err = LoadPoints(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestOpenRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pie.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"value": 1}, {"value": 3}]`))
	}))
	defer srv.Close()

	assert.True(t, IsRemote(srv.URL+"/pie.json"))
	assert.False(t, IsRemote("pie.json"))

	segments, err := LoadSegments(srv.URL + "/pie.json")
	require.NoError(t, err)
	assert.Len(t, segments, 2)

	_, err = LoadSegments(srv.URL + "/other.json")
	assert.Error(t, err)

	_, err = Open("ftp://host/file.json")
	assert.Error(t, err)
}

func TestOpenTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	prev := httpClient
	httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	defer func() {
		httpClient = prev
	}()

	start := time.Now()
	_, err := Open(srv.URL + "/slow.json")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, FetchTimeout, prev.Timeout)
}
