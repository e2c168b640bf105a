package db

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/internal/common"
	dbpkg "github.com/leftovertalk/ai-digest/pkg/db"
)

// openHistory opens the history database named by config or --history-db.
func openHistory(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.OpenPath(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runs, err := database.ListRuns(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(runs) == 0 {
			return 0, fmt.Errorf("no runs found. Run 'ai-digest extract' first")
		}
		return runs[0].RunID, nil
	}

	var runID int64
	_, err := fmt.Sscanf(c.Args().First(), "%d", &runID)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}

// DocumentStatus compares a document's hash with the previous run.
func DocumentStatus(previous map[string]string, d dbpkg.RunDocument) string {
	hash, ok := previous[d.Identifier]
	switch {
	case !ok:
		return "new"
	case hash != d.ContentHash:
		return "changed"
	default:
		return "unchanged"
	}
}
