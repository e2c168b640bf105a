package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/leftovertalk/ai-digest/models"
)

const (
	OGName   = "og-image.png"
	OGWidth  = 1200
	OGHeight = 630

	accentBar = 6
	logoSize  = 120
	logoTop   = 120
	titleTop  = 270
	subTop    = 340
	statsTop  = 420
)

var (
	Background = color.RGBA{R: 248, G: 250, B: 252, A: 255}
	TextColor  = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	MutedColor = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	Accent     = color.RGBA{R: 37, G: 99, B: 235, A: 255}
)

// Faces holds the three text sizes used on the preview image.
type Faces struct {
	Title    font.Face
	Subtitle font.Face
	Stats    font.Face
}

// DefaultFaces uses the built-in bitmap face for every line.
func DefaultFaces() Faces {
	return Faces{
		Title:    basicfont.Face7x13,
		Subtitle: basicfont.Face7x13,
		Stats:    basicfont.Face7x13,
	}
}

// LoadFaces parses a TTF, OTF or TTC file and builds the title, subtitle and
// stats faces from its first font.
func LoadFaces(path string) (Faces, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Faces{}, fmt.Errorf("failed to read font: %w", err)
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return Faces{}, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return Faces{}, fmt.Errorf("failed to load font %s: %w", path, err)
	}

	var faces Faces
	for _, v := range []struct {
		dst  *font.Face
		size float64
	}{
		{&faces.Title, 48},
		{&faces.Subtitle, 28},
		{&faces.Stats, 22},
	} {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    v.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return Faces{}, fmt.Errorf("failed to create face: %w", err)
		}
		*v.dst = face
	}
	return faces, nil
}

// OGOptions configures the social preview image.
type OGOptions struct {
	TitleZh string
	TitleEn string
	// Stats is nil when no published data is available.
	Stats *models.Stats
	Faces Faces
}

// StatsLine renders the counts shown under the titles.
func StatsLine(stats *models.Stats) string {
	if stats == nil {
		return "AI Tools | Experiences | Contributors"
	}
	return fmt.Sprintf("%d AI Tools  |  %d Experiences  |  %d Contributors",
		stats.TotalTools, stats.TotalExperiences, stats.TotalPeople)
}

// RenderOGImage draws the preview image in memory.
func RenderOGImage(logo image.Image, opts OGOptions) *image.RGBA {
	if opts.Faces.Title == nil || opts.Faces.Subtitle == nil || opts.Faces.Stats == nil {
		opts.Faces = DefaultFaces()
	}

	img := image.NewRGBA(image.Rect(0, 0, OGWidth, OGHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	bar := image.NewUniform(Accent)
	draw.Draw(img, image.Rect(0, 0, OGWidth, accentBar), bar, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, OGHeight-accentBar, OGWidth, OGHeight), bar, image.Point{}, draw.Src)

	if logo != nil {
		small := Resize(logo, logoSize, logoSize)
		x := (OGWidth - logoSize) / 2
		draw.Draw(img, image.Rect(x, logoTop, x+logoSize, logoTop+logoSize), small, image.Point{}, draw.Over)
	}

	drawCentered(img, opts.Faces.Title, TextColor, opts.TitleZh, titleTop)
	drawCentered(img, opts.Faces.Subtitle, MutedColor, opts.TitleEn, subTop)
	drawCentered(img, opts.Faces.Stats, Accent, StatsLine(opts.Stats), statsTop)

	return img
}

// GenerateOGImage renders the preview image and writes it to dir/og-image.png.
func GenerateOGImage(logo image.Image, dir string, opts OGOptions) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, OGName)
	if err := savePNG(path, RenderOGImage(logo, opts)); err != nil {
		return "", err
	}
	return path, nil
}

// drawCentered draws s with its top edge at y, horizontally centred.
func drawCentered(dst draw.Image, face font.Face, c color.Color, s string, y int) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s).Ceil()
	x := (dst.Bounds().Dx() - width) / 2
	d.Dot = fixed.P(x, y+face.Metrics().Ascent.Ceil())
	d.DrawString(s)
}
