// Package parser turns discussion notes into tool and experience entries.
//
// A note is split into level-2 sections ("## "). Sections whose title starts
// with a known label are split into numbered items ("### 1. name") and each
// item is scanned for labelled bullets ("- **用途**：..."). Anything it does
// not recognise is skipped.
package parser

import (
	"strings"

	"github.com/leftovertalk/ai-digest/models"
)

// Parser extracts entries using a table of section kinds.
type Parser struct {
	kinds []compiledKind
}

type compiledKind struct {
	KindSpec
	fields []fieldMatcher
}

// Result holds the entries found in one document, in document order.
type Result struct {
	Tools       []models.ToolEntry
	Experiences []models.ExperienceEntry
}

// New builds a parser for the given section table, or DefaultKinds when none
// is given.
func New(kinds ...KindSpec) *Parser {
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	p := &Parser{}
	for _, k := range kinds {
		p.kinds = append(p.kinds, compiledKind{KindSpec: k, fields: compileFields(k.Fields)})
	}
	return p
}

// ParseDocument routes every recognised section of text to ParseEntries.
// Several sections of the same kind are concatenated.
func (p *Parser) ParseDocument(text, date string) Result {
	var res Result

	sections := sectionSplitPattern.Split(text, -1)
	// sections[0] is whatever precedes the first "## " heading.
	for _, section := range sections[1:] {
		ck, ok := p.match(section)
		if !ok {
			continue
		}
		for _, item := range p.ParseEntries(section, ck.Kind, date) {
			switch ck.Kind {
			case models.KindTool:
				res.Tools = append(res.Tools, ToolEntry(item))
			case models.KindExperience:
				res.Experiences = append(res.Experiences, ExperienceEntry(item))
			}
		}
	}
	return res
}

// match finds the kind whose title prefixes the section heading.
func (p *Parser) match(section string) (compiledKind, bool) {
	for _, ck := range p.kinds {
		if strings.HasPrefix(section, ck.SectionTitle) {
			return ck, true
		}
	}
	return compiledKind{}, false
}

func (p *Parser) kind(k models.Kind) (compiledKind, bool) {
	for _, ck := range p.kinds {
		if ck.Kind == k {
			return ck, true
		}
	}
	return compiledKind{}, false
}
