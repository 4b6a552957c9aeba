package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestChartRenderer_RenderLineChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "United States_population_trend.png")
	r := NewChartRenderer(0, 0, nil)

	err := r.RenderLineChart(LineChart{
		Title:  "Population Trend for United States",
		XLabel: "Year",
		YLabel: "Population (Millions)",
		Points: []Point{{X: 2010, Y: 309.3}, {X: 2011, Y: 311.6}, {X: 2012, Y: 313.9}},
	}, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, pngMagic))
}

func TestChartRenderer_NoPoints(t *testing.T) {
	r := NewChartRenderer(10, 6, nil)
	path := filepath.Join(t.TempDir(), "empty.png")

	err := r.RenderLineChart(LineChart{Title: "empty"}, path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestCloudRenderer_Layout(t *testing.T) {
	r := NewCloudRenderer(CloudOptions{WidthPt: 300, HeightPt: 150, MaxWords: 3}, nil)

	placed := r.Layout([]Word{
		{Text: "gatsby", Weight: 20},
		{Text: "daisy", Weight: 10},
		{Text: "tom", Weight: 5},
		{Text: "nick", Weight: 1},
	})

	require.Len(t, placed, 3)
	assert.Equal(t, "gatsby", placed[0].Word.Text)
	assert.Greater(t, placed[0].Size, placed[1].Size)
	assert.Greater(t, placed[1].Size, placed[2].Size)

	for i := range placed {
		p := placed[i]
		assert.GreaterOrEqual(t, p.X-p.W/2, 0.0)
		assert.LessOrEqual(t, p.X+p.W/2, 300.0)
		assert.GreaterOrEqual(t, p.Y-p.H/2, 0.0)
		assert.LessOrEqual(t, p.Y+p.H/2, 150.0)
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, p.overlaps(placed[j]), "%s overlaps %s", p.Word.Text, placed[j].Word.Text)
		}
	}
}

func TestCloudRenderer_LayoutEqualWeights(t *testing.T) {
	r := NewCloudRenderer(CloudOptions{}, nil)

	placed := r.Layout([]Word{{Text: "cat", Weight: 1}, {Text: "sat", Weight: 1}})

	require.Len(t, placed, 2)
	assert.Equal(t, placed[0].Size, placed[1].Size)
}

func TestCloudRenderer_RenderWordCloud(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_cloud.png")
	r := NewCloudRenderer(DefaultCloudOptions(), nil)

	err := r.RenderWordCloud([]Word{{Text: "cat", Weight: 2}, {Text: "sat", Weight: 1}, {Text: "ran", Weight: 1}}, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, pngMagic))
}

func TestCloudRenderer_NoWords(t *testing.T) {
	r := NewCloudRenderer(DefaultCloudOptions(), nil)
	err := r.RenderWordCloud(nil, filepath.Join(t.TempDir(), "word_cloud.png"))
	assert.Error(t, err)
}
