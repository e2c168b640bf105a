package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/leftovertalk/ai-digest/internal/common"
	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/corpus"
	"github.com/leftovertalk/ai-digest/pkg/db"
	"github.com/leftovertalk/ai-digest/pkg/manifest"
	"github.com/leftovertalk/ai-digest/pkg/mapreduce"
	"github.com/leftovertalk/ai-digest/pkg/storage"
)

func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	res, docs, err := Run(logger, cfg)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		if err := manifest.GenerateSummary(res, cfg.Output, path, &storage.Storage{}); err != nil {
			return err
		}
		logger.Info("Summary written", "path", path)
	}

	if !c.Bool("no-history") {
		run, err := recordHistory(cfg, res, docs)
		if err != nil {
			// History is a convenience; the output is already written.
			logger.Warn("Failed to record run history", "error", err)
		} else {
			logger.Info("Run recorded", "run_id", run.RunID, "run_uuid", run.RunUUID)
		}
	}

	stats := res.Corpus.Stats
	fmt.Printf("Extracted %d tools and %d experiences\n", stats.TotalTools, stats.TotalExperiences)
	fmt.Printf("Found %d unique contributors\n", stats.TotalPeople)
	fmt.Printf("Output saved to %s\n", cfg.Output)

	if n := c.Int("top"); n > 0 {
		PrintTopContributors(os.Stdout, res.Corpus, n)
	}

	return nil
}

// PrintTopContributors lists the n people with the most entries.
func PrintTopContributors(w io.Writer, c *models.Corpus, n int) {
	counts := mapreduce.Reduce(mapreduce.MapCorpus(c))
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTop contributors:\n")
	mapreduce.PrintTopN(w, counts, n)
}

// Run loads the notes selected by cfg, aggregates them and writes the JSON
// output.
func Run(logger *slog.Logger, cfg *models.Config) (*corpus.Result, []models.Document, error) {
	s := &storage.Storage{}

	docs, err := s.LoadDocuments(cfg.InputDir, cfg.Pattern, cfg.Exclude)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded documents", "dir", cfg.InputDir, "pattern", cfg.Pattern, "count", len(docs))

	res := corpus.Aggregate(docs)
	for _, d := range res.Documents {
		if d.Tools == 0 && d.Experiences == 0 {
			logger.Info("Document contributed no entries", "id", d.ID)
		}
	}

	n, err := s.WriteJSON(cfg.Output, res.Corpus)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Output written", "path", cfg.Output, "bytes", n)

	return res, docs, nil
}

func recordHistory(cfg *models.Config, res *corpus.Result, docs []models.Document) (*db.Run, error) {
	database, err := db.OpenPath(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runDocs := make([]db.RunDocument, 0, len(res.Documents))
	for i, d := range res.Documents {
		runDocs = append(runDocs, db.RunDocument{
			Identifier:      d.ID,
			ContentHash:     common.ContentHash([]byte(docs[i].Text)),
			DateLabel:       d.Date,
			ToolCount:       d.Tools,
			ExperienceCount: d.Experiences,
		})
	}

	stats := res.Corpus.Stats
	return database.RecordRun(db.Run{
		InputDir:         cfg.InputDir,
		OutputPath:       cfg.Output,
		TotalTools:       stats.TotalTools,
		TotalExperiences: stats.TotalExperiences,
		TotalPeople:      stats.TotalPeople,
	}, runDocs)
}
