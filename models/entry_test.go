package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(v))
	return buf.String()
}

func TestToolEntryMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		entry ToolEntry
		want  string
	}{
		{
			name:  "unmatched lists omitted",
			entry: ToolEntry{Name: "T", Description: "x"},
			want:  `{"name":"T","date":"","description":"x"}`,
		},
		{
			name:  "matched but empty recommenders kept",
			entry: ToolEntry{Name: "T", Recommenders: []string{}, Description: "x"},
			want:  `{"name":"T","date":"","recommenders":[],"description":"x"}`,
		},
		{
			name:  "all fields",
			entry: ToolEntry{Name: "T", Date: "1月13日", Recommenders: []string{"张三"}, Description: "写 & 改", URLs: []string{"https://a.cn/?x=1&y=2"}},
			want:  `{"name":"T","date":"1月13日","recommenders":["张三"],"description":"写 & 改","urls":["https://a.cn/?x=1&y=2"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want+"\n", encode(t, tt.entry))
		})
	}
}

func TestExperienceEntryMarshalJSON(t *testing.T) {
	assert.Equal(t, `{"name":"E","date":"","content":"c"}`+"\n",
		encode(t, ExperienceEntry{Name: "E", Content: "c"}))
	assert.Equal(t, `{"name":"E","date":"","sharers":[],"content":"c"}`+"\n",
		encode(t, ExperienceEntry{Name: "E", Sharers: []string{}, Content: "c"}))
}

func TestEntryRoundTripKeepsNilAndEmpty(t *testing.T) {
	in := []ToolEntry{
		{Name: "a", Description: "x"},
		{Name: "b", Recommenders: []string{}, Description: "y"},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []ToolEntry
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out[0].Recommenders)
	assert.NotNil(t, out[1].Recommenders)
	assert.Empty(t, out[1].Recommenders)
}

func TestEntryMarshalFollowsEncoderEscaping(t *testing.T) {
	data, err := json.Marshal(ToolEntry{Name: "<b>", Description: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `\u003cb\u003e`)

	assert.Contains(t, encode(t, ToolEntry{Name: "<b>", Description: "x"}), `"<b>"`)
}
