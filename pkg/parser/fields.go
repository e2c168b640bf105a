package parser

import (
	"regexp"
	"strings"

	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/names"
)

// Lines starting with this marker credit a screenshot and never carry a field.
const AttributionMarker = "- **原图来源"

// URLSeparator separates several links in one 网址 bullet.
const URLSeparator = " / "

// Field keys shared by the kind tables and the entry builders.
const (
	FieldRecommenders = "recommenders"
	FieldDescription  = "description"
	FieldURLs         = "urls"
	FieldSharers      = "sharers"
	FieldContent      = "content"
)

// FieldSpec describes one labelled bullet, e.g. "- **用途**：...".
type FieldSpec struct {
	Key   string
	Label string
	// Split turns the captured remainder into a list. Nil for scalar fields.
	Split func(string) []string
}

// KindSpec is everything needed to recognise and parse one kind of section.
type KindSpec struct {
	Kind         models.Kind
	SectionTitle string
	Fields       []FieldSpec
	// Required names the field an item must carry to be kept.
	Required string
}

// DefaultKinds is the recognised section table.
var DefaultKinds = []KindSpec{
	{
		Kind:         models.KindTool,
		SectionTitle: "工具推荐",
		Fields: []FieldSpec{
			{Key: FieldRecommenders, Label: "推荐人", Split: names.Split},
			{Key: FieldDescription, Label: "用途"},
			{Key: FieldURLs, Label: "网址", Split: splitURLs},
		},
		Required: FieldDescription,
	},
	{
		Kind:         models.KindExperience,
		SectionTitle: "AI 使用经验分享",
		Fields: []FieldSpec{
			{Key: FieldSharers, Label: "分享人", Split: names.Split},
			{Key: FieldContent, Label: "经验"},
		},
		Required: FieldContent,
	},
}

var (
	sectionSplitPattern = regexp.MustCompile(`(?m)^## `)
	itemSplitPattern    = regexp.MustCompile(`(?m)^### \d+[.\s]+`)
)

// fieldMatcher pairs a field with its compiled line pattern.
type fieldMatcher struct {
	spec    FieldSpec
	pattern *regexp.Regexp
}

// fieldPattern matches "- **<label>**" then a full- or half-width colon and
// captures the rest of the line.
func fieldPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`^- \*\*` + regexp.QuoteMeta(label) + `\*\*[：:]\s*(.+)`)
}

func compileFields(fields []FieldSpec) []fieldMatcher {
	matchers := make([]fieldMatcher, 0, len(fields))
	for _, f := range fields {
		matchers = append(matchers, fieldMatcher{spec: f, pattern: fieldPattern(f.Label)})
	}
	return matchers
}

func splitURLs(s string) []string {
	urls := strings.Split(s, URLSeparator)
	for i := range urls {
		urls[i] = strings.TrimSpace(urls[i])
	}
	return urls
}
