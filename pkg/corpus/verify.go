package corpus

import (
	"fmt"
	"slices"

	"github.com/leftovertalk/ai-digest/models"
)

// Verify checks the invariants a published corpus must hold and returns one
// message per violation.
func Verify(c *models.Corpus) []string {
	var problems []string

	if c.Stats.TotalTools != len(c.Tools) {
		problems = append(problems, fmt.Sprintf("stats.total_tools = %d, but %d tools", c.Stats.TotalTools, len(c.Tools)))
	}
	if c.Stats.TotalExperiences != len(c.Experiences) {
		problems = append(problems, fmt.Sprintf("stats.total_experiences = %d, but %d experiences", c.Stats.TotalExperiences, len(c.Experiences)))
	}
	if c.Stats.TotalPeople != len(c.People) {
		problems = append(problems, fmt.Sprintf("stats.total_people = %d, but %d people", c.Stats.TotalPeople, len(c.People)))
	}

	for i, t := range c.Tools {
		if dup, ok := firstDuplicate(t.Recommenders); ok {
			problems = append(problems, fmt.Sprintf("tools[%d] %q: duplicate recommender %q", i, t.Name, dup))
		}
	}
	for i, e := range c.Experiences {
		if dup, ok := firstDuplicate(e.Sharers); ok {
			problems = append(problems, fmt.Sprintf("experiences[%d] %q: duplicate sharer %q", i, e.Name, dup))
		}
	}

	if want := People(c.Tools, c.Experiences); !slices.Equal(want, c.People) {
		problems = append(problems, fmt.Sprintf("people: want %d sorted distinct contributors, got %d entries", len(want), len(c.People)))
	}

	return problems
}

func firstDuplicate(list []string) (string, bool) {
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			return s, true
		}
		seen[s] = struct{}{}
	}
	return "", false
}
