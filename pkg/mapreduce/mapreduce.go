package mapreduce

import "github.com/leftovertalk/ai-digest/models"

// Map counts one contribution per name for a single entry's contributor list.
func Map(contributors []string) map[string]int {
	counts := make(map[string]int, len(contributors))
	for _, name := range contributors {
		counts[name]++
	}
	return counts
}

// MapCorpus returns one intermediate count map per entry in c.
func MapCorpus(c *models.Corpus) []map[string]int {
	intermediate := make([]map[string]int, 0, len(c.Tools)+len(c.Experiences))
	for _, t := range c.Tools {
		intermediate = append(intermediate, Map(t.Contributors()))
	}
	for _, e := range c.Experiences {
		intermediate = append(intermediate, Map(e.Contributors()))
	}
	return intermediate
}

// Reduce aggregates a slice of count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for name, count := range counts {
			finalResults[name] += count
		}
	}

	return finalResults
}
