package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPartHeight is the tallest slice Split produces by default.
const DefaultMaxPartHeight = 1000

// SplitResult describes the slices cut from one screenshot.
type SplitResult struct {
	OutputDir     string   `json:"output_dir"`
	TotalParts    int      `json:"total_parts"`
	Parts         []string `json:"parts"`
	OriginalImage string   `json:"original_image"`
}

// Split cuts a tall screenshot into full-width slices of at most maxHeight
// pixels, top to bottom. Slices are written as part_001.png, part_002.png, ...
// into a directory named after the image, next to it.
func Split(path string, maxHeight int) (*SplitResult, error) {
	if maxHeight <= 0 {
		return nil, fmt.Errorf("max height must be positive, got %d", maxHeight)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	img, err := decodeFile(abs)
	if err != nil {
		return nil, err
	}

	outDir := strings.TrimSuffix(abs, filepath.Ext(abs))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	res := &SplitResult{OutputDir: outDir, OriginalImage: abs}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += maxHeight {
		bottom := min(y+maxHeight, b.Max.Y)
		part := image.NewRGBA(image.Rect(0, 0, b.Dx(), bottom-y))
		draw.Draw(part, part.Bounds(), img, image.Pt(b.Min.X, y), draw.Src)

		name := filepath.Join(outDir, fmt.Sprintf("part_%03d.png", len(res.Parts)+1))
		if err := savePNG(name, part); err != nil {
			return nil, err
		}
		res.Parts = append(res.Parts, name)
	}
	res.TotalParts = len(res.Parts)

	return res, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
