package check

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/internal/common"
	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/corpus"
	"github.com/leftovertalk/ai-digest/pkg/schema"
	"github.com/leftovertalk/ai-digest/pkg/storage"
)

// CheckAction validates a published data file. The path is the first
// argument, or the configured output.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	path := c.Args().First()
	if path == "" {
		cfg, err := common.LoadConfig(c)
		if err != nil {
			return err
		}
		path = cfg.Output
	}

	s := &storage.Storage{}
	data, err := s.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	problems, err := Check(data)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
	}

	logger.Info("Data file is valid", "path", path)
	fmt.Printf("%s is valid\n", path)
	return nil
}

// Check validates data against the schema and, when it matches, against the
// corpus invariants. Malformed JSON is returned as an error.
func Check(data []byte) ([]string, error) {
	if err := schema.Validate(data); err != nil {
		var ve *schema.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		problems := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			problems = append(problems, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
		}
		return problems, nil
	}

	var c models.Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	return corpus.Verify(&c), nil
}
