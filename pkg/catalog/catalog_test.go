package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/catalog"
)

func Test_Default(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{"gemma-2-9b-it", "gpt-oss-20b", "llama-3.1-8b-instruct"}, c.Names())

	entry, err := c.Lookup("gpt-oss-20b")
	require.NoError(t, err)
	assert.Equal(t, "openai", entry.Provider)
	assert.Equal(t, "gpt-oss-20b", entry.Model)
	assert.Equal(t, 8192, entry.ContextLength)
	assert.True(t, entry.Free)

	assert.True(t, c.Has("llama-3.1-8b-instruct"))
	assert.False(t, c.Has("gemini-2.5-pro"))

	_, err = c.Lookup("gemini-2.5-pro")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrModelNotFound)
}

func Test_New_Validation(t *testing.T) {
	tcases := []struct {
		name  string
		entry *catalog.Entry
	}{
		{
			name:  "missing model id",
			entry: &catalog.Entry{LogicalName: "x", Provider: "openai", ContextLength: 8192},
		},
		{
			name:  "missing provider",
			entry: &catalog.Entry{LogicalName: "x", Model: "x", ContextLength: 8192},
		},
		{
			name:  "zero context length",
			entry: &catalog.Entry{LogicalName: "x", Provider: "openai", Model: "x"},
		},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New(&catalog.Config{Models: []*catalog.Entry{tc.entry}})
			assert.Error(t, err)
		})
	}
}

func Test_New_Duplicate(t *testing.T) {
	entry := &catalog.Entry{
		LogicalName:   "gpt-oss-20b",
		Provider:      "openai",
		Model:         "gpt-oss-20b",
		ContextLength: 8192,
		Free:          true,
	}
	_, err := catalog.New(&catalog.Config{Models: []*catalog.Entry{entry, entry}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate catalog entry")
}

func Test_Load(t *testing.T) {
	c, err := catalog.Load("testdata/free_models.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"deepseek-r1", "gpt-oss-20b"}, c.Names())

	entry, err := c.Lookup("deepseek-r1")
	require.NoError(t, err)
	assert.Equal(t, "deepseek/deepseek-r1:free", entry.Model)
	assert.Equal(t, 32768, entry.ContextLength)
}

func Test_Names_Copy(t *testing.T) {
	c := catalog.Default()
	names := c.Names()
	names[0] = "mutated"
	assert.NotEqual(t, names[0], c.Names()[0])
}
