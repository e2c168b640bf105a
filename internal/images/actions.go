package images

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/internal/common"
	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/corpus"
	"github.com/leftovertalk/ai-digest/pkg/imaging"
	"github.com/leftovertalk/ai-digest/pkg/storage"
)

func ImagesAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	dataPath := c.String("data")
	if dataPath == "" {
		dataPath = filepath.Join(cfg.PublicDir, "data.json")
	}

	written, err := Generate(logger, cfg, dataPath)
	if err != nil {
		return err
	}

	for _, p := range written {
		fmt.Printf("Generated %s\n", p)
	}
	return nil
}

// SplitAction cuts a tall screenshot into slices and prints the result as JSON.
func SplitAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.NArg() == 0 {
		return fmt.Errorf("missing image path")
	}
	path := c.Args().First()

	res, err := imaging.Split(path, c.Int("max-height"))
	if err != nil {
		return err
	}
	logger.Info("Image split", "image", res.OriginalImage, "parts", res.TotalParts)

	data, err := storage.MarshalJSON(res)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// Generate writes the favicons and the preview image into cfg.PublicDir.
func Generate(logger *slog.Logger, cfg *models.Config, dataPath string) ([]string, error) {
	logo, err := imaging.LoadLogo(cfg.Logo)
	if err != nil {
		return nil, err
	}

	written, err := imaging.GenerateFavicons(logo, cfg.PublicDir)
	if err != nil {
		return written, err
	}

	opts := imaging.OGOptions{
		TitleZh: cfg.TitleZh,
		TitleEn: cfg.TitleEn,
		Stats:   LoadStats(logger, dataPath),
		Faces:   imaging.DefaultFaces(),
	}
	if cfg.Font != "" {
		faces, err := imaging.LoadFaces(cfg.Font)
		if err != nil {
			logger.Warn("Falling back to built-in font", "font", cfg.Font, "error", err)
		} else {
			opts.Faces = faces
		}
	}

	og, err := imaging.GenerateOGImage(logo, cfg.PublicDir, opts)
	if err != nil {
		return written, err
	}
	return append(written, og), nil
}

// LoadStats reads published data and recounts it from the entries.
// It returns nil when the file is missing or unreadable.
func LoadStats(logger *slog.Logger, path string) *models.Stats {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Info("No published data, using generic stats line", "path", path)
		return nil
	}

	var c models.Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		logger.Warn("Failed to parse published data", "path", path, "error", err)
		return nil
	}

	return &models.Stats{
		TotalTools:       len(c.Tools),
		TotalExperiences: len(c.Experiences),
		TotalPeople:      len(corpus.People(c.Tools, c.Experiences)),
	}
}
