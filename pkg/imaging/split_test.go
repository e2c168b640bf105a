package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripes returns a w x h image whose red channel steps by 100 every 1000 rows.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.RGBA{R: uint8(y / 1000 * 100), A: 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.png")
	require.NoError(t, savePNG(path, stripes(30, 2500)))

	res, err := Split(path, DefaultMaxPartHeight)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "chat")
	assert.Equal(t, outDir, res.OutputDir)
	assert.Equal(t, path, res.OriginalImage)
	assert.Equal(t, 3, res.TotalParts)
	assert.Equal(t, []string{
		filepath.Join(outDir, "part_001.png"),
		filepath.Join(outDir, "part_002.png"),
		filepath.Join(outDir, "part_003.png"),
	}, res.Parts)

	heights := []int{1000, 1000, 500}
	for i, p := range res.Parts {
		img := decodePNG(t, p)
		assert.Equal(t, 30, img.Bounds().Dx(), p)
		assert.Equal(t, heights[i], img.Bounds().Dy(), p)
	}

	// second slice starts at row 1000 of the original
	second := decodePNG(t, res.Parts[1])
	r, _, _, _ := second.At(0, 0).RGBA()
	assert.Equal(t, uint32(100*257), r)
}

func TestSplitExactMultiple(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, savePNG(path, stripes(10, 800)))

	res, err := Split(path, 400)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalParts)
}

func TestSplitShortImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.png")
	require.NoError(t, savePNG(path, stripes(10, 50)))

	res, err := Split(path, DefaultMaxPartHeight)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalParts)
	assert.Equal(t, 50, decodePNG(t, res.Parts[0]).Bounds().Dy())
}

func TestSplitJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, stripes(16, 300), nil))
	require.NoError(t, f.Close())

	res, err := Split(path, 200)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalParts)
	assert.DirExists(t, filepath.Join(filepath.Dir(path), "shot"))
}

func TestSplitErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Split(filepath.Join(dir, "missing.png"), 100)
	assert.Error(t, err)

	path := filepath.Join(dir, "a.png")
	require.NoError(t, savePNG(path, stripes(10, 10)))
	_, err = Split(path, 0)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = Split(bad, 100)
	assert.Error(t, err)
}
