package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	doc := `{
	  "tools": [{"name": "Cursor", "date": "1月13日", "recommenders": ["张三"], "description": "编辑器", "urls": ["https://cursor.com"]}],
	  "experiences": [{"name": "复盘", "date": "", "content": "每周复盘"}],
	  "people": ["张三"],
	  "stats": {"total_tools": 1, "total_experiences": 1, "total_people": 1}
	}`

	assert.NoError(t, Validate([]byte(doc)))
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "missing description",
			doc:   `{"tools":[{"name":"x","date":""}],"experiences":[],"people":[],"stats":{"total_tools":1,"total_experiences":0,"total_people":0}}`,
			field: "tools.0",
		},
		{
			name:  "null people",
			doc:   `{"tools":[],"experiences":[],"people":null,"stats":{"total_tools":0,"total_experiences":0,"total_people":0}}`,
			field: "people",
		},
		{
			name:  "duplicate sharers",
			doc:   `{"tools":[],"experiences":[{"name":"x","date":"","sharers":["a","a"],"content":"c"}],"people":["a"],"stats":{"total_tools":0,"total_experiences":1,"total_people":1}}`,
			field: "experiences.0.sharers",
		},
		{
			name:  "unknown key",
			doc:   `{"tools":[],"experiences":[],"people":[],"stats":{"total_tools":0,"total_experiences":0,"total_people":0},"extra":1}`,
			field: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want *ValidationError, got %T", err)
			var fields []string
			for _, fe := range ve.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate([]byte(`{"tools": [`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
