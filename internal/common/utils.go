package common

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/models"
)

// NewLogger returns a JSON logger on stderr. Quiet mode only logs errors.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// LoadConfig reads the file named by --config and applies any flags the
// user set explicitly on top of it.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"input-dir":  &cfg.InputDir,
		"pattern":    &cfg.Pattern,
		"output":     &cfg.Output,
		"public-dir": &cfg.PublicDir,
		"logo":       &cfg.Logo,
		"font":       &cfg.Font,
		"history-db": &cfg.HistoryDB,
	}
	for flag, dst := range overrides {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}
	if c.IsSet("exclude") {
		cfg.Exclude = c.StringSlice("exclude")
	}

	return cfg, cfg.Validate()
}
