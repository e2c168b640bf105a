package manifest

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/leftovertalk/ai-digest/pkg/corpus"
	"github.com/leftovertalk/ai-digest/pkg/mapreduce"
	"github.com/leftovertalk/ai-digest/pkg/storage"
)

// TopContributorLimit caps the contributor list in the summary.
const TopContributorLimit = 25

// Build assembles the summary for one extraction run.
func Build(res *corpus.Result, output string, now time.Time) SummaryManifest {
	c := res.Corpus
	m := SummaryManifest{
		GeneratedAt:      now.Format(time.RFC3339),
		Output:           output,
		TotalDocuments:   len(res.Documents),
		TotalTools:       c.Stats.TotalTools,
		TotalExperiences: c.Stats.TotalExperiences,
		TotalPeople:      c.Stats.TotalPeople,
		TopContributors:  mapreduce.TopN(mapreduce.Reduce(mapreduce.MapCorpus(c)), TopContributorLimit),
		Documents:        make([]DocumentSummary, 0, len(res.Documents)),
	}

	for _, d := range res.Documents {
		m.Documents = append(m.Documents, DocumentSummary{
			ID:          d.ID,
			Date:        d.Date,
			Tools:       d.Tools,
			Experiences: d.Experiences,
			Empty:       d.Tools == 0 && d.Experiences == 0,
		})
	}
	return m
}

// GenerateSummary builds the summary and saves it as YAML at path.
// The output size is recorded when the output file has been written.
func GenerateSummary(res *corpus.Result, output, path string, s *storage.Storage) error {
	m := Build(res, output, time.Now())

	if s.HasFile(output) {
		stats, err := s.GetFileStats(output)
		if err != nil {
			return err
		}
		m.OutputBytes = stats.SizeBytes
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}

	return nil
}
