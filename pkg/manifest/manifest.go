package manifest

// SummaryManifest is the run summary written next to data.json.
// It gives a per-note overview without reading the full corpus.
type SummaryManifest struct {
	GeneratedAt      string            `yaml:"generated_at"`
	Output           string            `yaml:"output"`
	OutputBytes      int64             `yaml:"output_bytes,omitempty"`
	TotalDocuments   int               `yaml:"total_documents"`
	TotalTools       int               `yaml:"total_tools"`
	TotalExperiences int               `yaml:"total_experiences"`
	TotalPeople      int               `yaml:"total_people"`
	TopContributors  []string          `yaml:"top_contributors"`
	Documents        []DocumentSummary `yaml:"documents"`
}

// DocumentSummary is what a single note contributed.
type DocumentSummary struct {
	ID          string `yaml:"id"`
	Date        string `yaml:"date,omitempty"`
	Tools       int    `yaml:"tools"`
	Experiences int    `yaml:"experiences"`
	// Empty marks a note with no recognised section or no valid entries.
	Empty bool `yaml:"empty,omitempty"`
}
