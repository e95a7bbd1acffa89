package minichart_test

import (
	"math"
	"testing"

	"github.com/midbel/minichart"
	"github.com/midbel/minichart/surface"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar_SetProgress(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := surface.NewRecorder(200, 20)
	bar := minichart.NewProgressBar(rec, 20, 200, minichart.WithLogger(logger))

	for _, v := range []float64{0, 42.5, 100} {
		require.NoError(t, bar.SetProgress(v))
		assert.Equal(t, v, bar.Progress())
	}
	assert.Empty(t, hook.Entries)

	for i, v := range []float64{150, -5, 100.01, math.NaN(), math.Inf(1)} {
		err := bar.SetProgress(v)
		assert.ErrorIs(t, err, minichart.ErrOutOfRange)
		assert.Equal(t, 100.0, bar.Progress())
		assert.Len(t, hook.Entries, i+1)
	}
	assert.Zero(t, rec.Len())
}

func TestProgressBar_Draw(t *testing.T) {
	rec := surface.NewRecorder(200, 20)
	bar := minichart.NewProgressBar(rec, 20, 200)
	bar.SetBarColor("#00ff00")
	require.NoError(t, bar.SetProgress(40))
	require.NoError(t, bar.Draw())

	rects := rec.Find("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, []float64{0, 0, 200, 20}, rects[0].Args)
	assert.Equal(t, []float64{0, 0, 80, 20}, rects[1].Args)
	assert.Equal(t, []float64{0, 0, 200, 20}, rects[2].Args)

	fills := rec.Find("fillStyle")
	require.Len(t, fills, 3)
	assert.Equal(t, minichart.DefaultTrackColor, fills[0].Text)
	assert.Equal(t, "#00ff00", fills[1].Text)

	texts := rec.Find("fillText")
	require.Len(t, texts, 1)
	assert.Equal(t, "40%", texts[0].Text)
	assert.Equal(t, []float64{100, 14}, texts[0].Args)
}

func TestProgressBar_RejectedKeepsDrawing(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rec := surface.NewRecorder(200, 20)
	bar := minichart.NewProgressBar(rec, 20, 200, minichart.WithLogger(logger))
	require.NoError(t, bar.SetProgress(25))
	require.NoError(t, bar.Draw())
	before := rec.Ops()

	rec.Reset()
	assert.Error(t, bar.SetProgress(150))
	require.NoError(t, bar.Draw())
	assert.Equal(t, before, rec.Ops())
}
