package parser

import (
	"strings"

	"github.com/leftovertalk/ai-digest/models"
)

// Item is one numbered block with the raw field values captured from it.
type Item struct {
	Kind   models.Kind
	Name   string
	Date   string
	Values map[string]string
	Lists  map[string][]string
}

// Has reports whether the field was captured, as a scalar or a list.
func (it Item) Has(key string) bool {
	if _, ok := it.Values[key]; ok {
		return true
	}
	_, ok := it.Lists[key]
	return ok
}

// ParseEntries extracts the valid items of one section. Items missing the
// kind's required field are dropped. An unknown kind yields nothing.
func (p *Parser) ParseEntries(section string, kind models.Kind, date string) []Item {
	ck, ok := p.kind(kind)
	if !ok {
		return nil
	}

	blocks := itemSplitPattern.Split(section, -1)
	// blocks[0] is the section heading and any preamble.
	var items []Item
	for _, block := range blocks[1:] {
		item := parseItem(block, ck, date)
		if !item.Has(ck.Required) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func parseItem(block string, ck compiledKind, date string) Item {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	item := Item{
		Kind:   ck.Kind,
		Name:   strings.TrimSpace(lines[0]),
		Date:   date,
		Values: map[string]string{},
		Lists:  map[string][]string{},
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, AttributionMarker) {
			continue
		}
		for _, fm := range ck.fields {
			m := fm.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			// A later bullet for the same field replaces an earlier one.
			if fm.spec.Split != nil {
				item.Lists[fm.spec.Key] = fm.spec.Split(m[1])
			} else {
				item.Values[fm.spec.Key] = m[1]
			}
		}
	}
	return item
}

// ToolEntry builds the output record for a tool item.
func ToolEntry(it Item) models.ToolEntry {
	return models.ToolEntry{
		Name:         it.Name,
		Date:         it.Date,
		Recommenders: it.Lists[FieldRecommenders],
		Description:  it.Values[FieldDescription],
		URLs:         it.Lists[FieldURLs],
	}
}

// ExperienceEntry builds the output record for an experience item.
func ExperienceEntry(it Item) models.ExperienceEntry {
	return models.ExperienceEntry{
		Name:    it.Name,
		Date:    it.Date,
		Sharers: it.Lists[FieldSharers],
		Content: it.Values[FieldContent],
	}
}
