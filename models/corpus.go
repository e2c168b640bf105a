package models

// Corpus is the aggregate written to data.json.
// Field order here is the key order in the output.
type Corpus struct {
	Tools       []ToolEntry       `json:"tools"`
	Experiences []ExperienceEntry `json:"experiences"`
	People      []string          `json:"people"`
	Stats       Stats             `json:"stats"`
}

// Stats holds the entry and contributor counts.
type Stats struct {
	TotalTools       int `json:"total_tools"`
	TotalExperiences int `json:"total_experiences"`
	TotalPeople      int `json:"total_people"`
}

// NewCorpus returns an empty corpus whose lists serialise as [] rather than null.
func NewCorpus() *Corpus {
	return &Corpus{
		Tools:       []ToolEntry{},
		Experiences: []ExperienceEntry{},
		People:      []string{},
	}
}
