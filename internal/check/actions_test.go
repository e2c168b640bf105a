package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftovertalk/ai-digest/models"
	"github.com/leftovertalk/ai-digest/pkg/corpus"
	"github.com/leftovertalk/ai-digest/pkg/storage"
)

func TestCheckValid(t *testing.T) {
	res := corpus.Aggregate([]models.Document{{
		ID:   "01-13-Recorder.md",
		Text: "## 工具推荐\n### 1. Cursor\n- **推荐人**：张三\n- **用途**：写代码\n",
	}})
	data, err := storage.MarshalJSON(res.Corpus)
	require.NoError(t, err)

	problems, err := Check(data)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheckEmptyCorpus(t *testing.T) {
	data, err := storage.MarshalJSON(models.NewCorpus())
	require.NoError(t, err)

	problems, err := Check(data)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheckStatsMismatch(t *testing.T) {
	c := models.NewCorpus()
	c.Tools = append(c.Tools, models.ToolEntry{Name: "a", Description: "b", Recommenders: []string{"张三"}})
	c.People = []string{"张三"}
	c.Stats.TotalPeople = 1
	data, err := storage.MarshalJSON(c)
	require.NoError(t, err)

	problems, err := Check(data)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "total_tools")
}

func TestCheckSchemaViolation(t *testing.T) {
	problems, err := Check([]byte(`{"tools": [], "experiences": []}`))
	require.NoError(t, err)
	assert.NotEmpty(t, problems)
}

func TestCheckMalformedJSON(t *testing.T) {
	_, err := Check([]byte(`{"tools": [`))
	assert.Error(t, err)
}
