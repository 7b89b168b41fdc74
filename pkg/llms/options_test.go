package llms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms"
)

func Test_CallOptions(t *testing.T) {
	opts := llms.CallOptions{
		Model:       "gpt-oss-20b",
		Temperature: 0.7,
	}
	for _, opt := range []llms.CallOption{
		llms.WithModel("gemma-2-9b-it"),
		llms.WithTemperature(0.1),
		llms.WithMaxTokens(512),
		llms.WithStopWords([]string{"END"}),
	} {
		opt(&opts)
	}

	assert.Equal(t, "gemma-2-9b-it", opts.Model)
	assert.Equal(t, 0.1, opts.Temperature)
	assert.Equal(t, 512, opts.MaxTokens)
	assert.Equal(t, []string{"END"}, opts.StopWords)
}

func Test_Messages(t *testing.T) {
	assert.Equal(t, llms.Message{Role: llms.RoleSystem, Text: "s"}, llms.SystemMessage("s"))
	assert.Equal(t, llms.Message{Role: llms.RoleHuman, Text: "h"}, llms.HumanMessage("h"))
	assert.Equal(t, llms.Message{Role: llms.RoleAI, Text: "a"}, llms.AIMessage("a"))
}
