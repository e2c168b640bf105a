// Package imaging renders the site icons and the social preview image from
// the logo and the published corpus.
package imaging

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Icon is one square PNG derived from the logo.
type Icon struct {
	Name string
	Size int
}

// Icons lists the PNG icons written by GenerateFavicons.
var Icons = []Icon{
	{Name: "favicon-32x32.png", Size: 32},
	{Name: "favicon-16x16.png", Size: 16},
	{Name: "apple-touch-icon.png", Size: 180},
	{Name: "logo-32.png", Size: 32},
}

const (
	FaviconName = "favicon.ico"
	FaviconSize = 32
)

// LoadLogo decodes the PNG logo at path.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to w x h with Catmull-Rom resampling.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// GenerateFavicons writes every entry of Icons plus favicon.ico into dir and
// returns the written paths.
func GenerateFavicons(logo image.Image, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, icon := range Icons {
		path := filepath.Join(dir, icon.Name)
		if err := savePNG(path, Resize(logo, icon.Size, icon.Size)); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	path := filepath.Join(dir, FaviconName)
	icon := Resize(logo, FaviconSize, FaviconSize)
	err := writeFile(path, func(w io.Writer) error { return EncodeICO(w, icon) })
	if err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
}

func savePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error { return png.Encode(w, img) })
}

// writeFile creates path and fills it with encode.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encodeAndClose(f, encode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// encodeAndClose runs encode on wc and closes it. A close failure is
// reported when encoding succeeded.
func encodeAndClose(wc io.WriteCloser, encode func(io.Writer) error) error {
	if err := encode(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
