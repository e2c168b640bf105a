package images

import (
	"flag"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/imaging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{
  "tools": [
    {"name": "a", "date": "", "recommenders": ["张三", "李四"], "description": "x"},
    {"name": "b", "date": "", "description": "y"}
  ],
  "experiences": [
    {"name": "c", "date": "", "sharers": ["李四", "王五"], "content": "z"}
  ],
  "people": [],
  "stats": {"total_tools": 0, "total_experiences": 0, "total_people": 0}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	stats := LoadStats(discardLogger(), path)
	require.NotNil(t, stats)
	assert.Equal(t, models.Stats{TotalTools: 2, TotalExperiences: 1, TotalPeople: 3}, *stats)
}

func TestLoadStatsMissingOrInvalid(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, LoadStats(discardLogger(), filepath.Join(dir, "missing.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	assert.Nil(t, LoadStats(discardLogger(), bad))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.png")
	f, err := os.Create(logoPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 40, 40))))
	require.NoError(t, f.Close())

	cfg := models.Defaults()
	cfg.PublicDir = filepath.Join(dir, "public")
	cfg.Logo = logoPath
	cfg.Font = filepath.Join(dir, "missing.ttf")

	written, err := Generate(discardLogger(), cfg, filepath.Join(cfg.PublicDir, "data.json"))
	require.NoError(t, err)
	assert.Len(t, written, len(imaging.Icons)+2)
	assert.FileExists(t, filepath.Join(cfg.PublicDir, imaging.OGName))
	assert.FileExists(t, filepath.Join(cfg.PublicDir, imaging.FaviconName))
}

func TestGenerateMissingLogo(t *testing.T) {
	cfg := models.Defaults()
	cfg.PublicDir = t.TempDir()
	cfg.Logo = filepath.Join(cfg.PublicDir, "none.png")

	_, err := Generate(discardLogger(), cfg, "")
	assert.Error(t, err)
}

func TestSplitActionMissingArgument(t *testing.T) {
	set := flag.NewFlagSet("split", flag.ContinueOnError)
	set.Int("max-height", imaging.DefaultMaxPartHeight, "")
	require.NoError(t, set.Parse(nil))

	err := SplitAction(cli.NewContext(cli.NewApp(), set, nil))
	assert.Error(t, err)
}

func TestSplitAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 10, 250))))
	require.NoError(t, f.Close())

	set := flag.NewFlagSet("split", flag.ContinueOnError)
	set.Int("max-height", imaging.DefaultMaxPartHeight, "")
	set.Bool("quiet", false, "")
	require.NoError(t, set.Parse([]string{"--max-height", "100", "--quiet", path}))

	require.NoError(t, SplitAction(cli.NewContext(cli.NewApp(), set, nil)))
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "shot", "part_003.png"))
}
