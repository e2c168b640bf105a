// Package corpus assembles parsed notes into the published aggregate.
package corpus

import (
	"sort"

	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/names"
	"github.com/leftovertalk/ai-digest/pkg/parser"
)

// DocumentResult records what one document contributed to the corpus.
type DocumentResult struct {
	ID          string
	Path        string
	Date        string
	Tools       int
	Experiences int
}

// Result is the corpus plus the per-document breakdown used for run
// summaries and history.
type Result struct {
	Corpus    *models.Corpus
	Documents []DocumentResult
}

// Aggregator builds a corpus from documents with one parser.
type Aggregator struct {
	parser *parser.Parser
}

// NewAggregator returns an aggregator using p, or the default parser if p is nil.
func NewAggregator(p *parser.Parser) *Aggregator {
	if p == nil {
		p = parser.New()
	}
	return &Aggregator{parser: p}
}

// Aggregate parses docs in order and builds the corpus: entries concatenated
// in document order, name lists normalized, people sorted and stats counted.
func (a *Aggregator) Aggregate(docs []models.Document) *Result {
	c := models.NewCorpus()
	res := &Result{Corpus: c}

	for _, doc := range docs {
		date := parser.DateLabel(doc.ID)
		parsed := a.parser.ParseDocument(doc.Text, date)

		c.Tools = append(c.Tools, parsed.Tools...)
		c.Experiences = append(c.Experiences, parsed.Experiences...)
		res.Documents = append(res.Documents, DocumentResult{
			ID:          doc.ID,
			Path:        doc.Path,
			Date:        date,
			Tools:       len(parsed.Tools),
			Experiences: len(parsed.Experiences),
		})
	}

	for i := range c.Tools {
		if c.Tools[i].Recommenders != nil {
			c.Tools[i].Recommenders = names.NormalizeAll(c.Tools[i].Recommenders)
		}
	}
	for i := range c.Experiences {
		if c.Experiences[i].Sharers != nil {
			c.Experiences[i].Sharers = names.NormalizeAll(c.Experiences[i].Sharers)
		}
	}

	c.People = People(c.Tools, c.Experiences)
	c.Stats = models.Stats{
		TotalTools:       len(c.Tools),
		TotalExperiences: len(c.Experiences),
		TotalPeople:      len(c.People),
	}
	return res
}

// Aggregate runs the default aggregator over docs.
func Aggregate(docs []models.Document) *Result {
	return NewAggregator(nil).Aggregate(docs)
}

// People returns the sorted distinct union of every contributor name.
func People(tools []models.ToolEntry, experiences []models.ExperienceEntry) []string {
	set := make(map[string]struct{})
	for _, t := range tools {
		for _, n := range t.Contributors() {
			set[n] = struct{}{}
		}
	}
	for _, e := range experiences {
		for _, n := range e.Contributors() {
			set[n] = struct{}{}
		}
	}

	people := make([]string, 0, len(set))
	for n := range set {
		people = append(people, n)
	}
	// Byte order on UTF-8 is code point order.
	sort.Strings(people)
	return people
}
