package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms/openrouter"
)

func Test_New_RequiresToken(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := openrouter.New(openrouter.WithModel("gpt-oss-20b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func Test_New_TokenFromEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-or-env")

	llm, err := openrouter.New(openrouter.WithModel("gpt-oss-20b"))
	require.NoError(t, err)
	assert.Equal(t, llms.ProviderOpenRouter, llm.GetProviderType())
	assert.Equal(t, "gpt-oss-20b", llm.GetModelName())
}

func Test_GenerateContent(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "gen-1",
			"object": "chat.completion",
			"model": "gpt-oss-20b",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "three search queries"},
					"finish_reason": "stop"
				}
			],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer srv.Close()

	llm, err := openrouter.New(
		openrouter.WithToken("sk-or-test"),
		openrouter.WithModel("gpt-oss-20b"),
		openrouter.WithBaseURL(srv.URL),
		openrouter.WithDefaultTemperature(0.7),
		openrouter.WithMaxRetries(0),
	)
	require.NoError(t, err)

	resp, err := llm.GenerateContent(context.Background(), []llms.Message{
		llms.SystemMessage("You generate search queries."),
		llms.HumanMessage("climate change effects"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "three search queries", resp.Choices[0].Content)
	assert.Equal(t, "stop", resp.Choices[0].StopReason)
	assert.EqualValues(t, 17, resp.Choices[0].GenerationInfo["TotalTokens"])

	assert.Equal(t, "gpt-oss-20b", gotReq["model"])
	assert.InDelta(t, 0.7, gotReq["temperature"], 0.0001)
	// responses are never streamed
	assert.Nil(t, gotReq["stream"])
}

func Test_GenerateContent_CallOptionsOverride(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "gen-2",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instruct",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "ok"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer srv.Close()

	llm, err := openrouter.New(
		openrouter.WithToken("sk-or-test"),
		openrouter.WithModel("gpt-oss-20b"),
		openrouter.WithBaseURL(srv.URL),
		openrouter.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = llm.GenerateContent(context.Background(), []llms.Message{
		llms.HumanMessage("hi"),
	},
		llms.WithModel("llama-3.1-8b-instruct"),
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(256),
	)
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b-instruct", gotReq["model"])
	assert.InDelta(t, 0.2, gotReq["temperature"], 0.0001)
	assert.EqualValues(t, 256, gotReq["max_completion_tokens"])
}

func Test_GenerateContent_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error": {"message": "Insufficient credits", "code": 402}}`))
	}))
	defer srv.Close()

	llm, err := openrouter.New(
		openrouter.WithToken("sk-or-test"),
		openrouter.WithModel("gpt-oss-20b"),
		openrouter.WithBaseURL(srv.URL),
		openrouter.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = llm.GenerateContent(context.Background(), []llms.Message{
		llms.HumanMessage("hi"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}
