package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagaleanoob/llm-commit/internal/config"
)

func testConfig(baseURL string) *config.Config {
	cfg := config.Defaults()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func TestGenerate(t *testing.T) {
	var gotReq map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"message","content":[{"type":"text","text":"  Add widget support\n"},{"type":"text","text":"second segment, ignored"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	got, err := client.Generate(context.Background(), "describe these changes")
	require.NoError(t, err)

	// Only the first content segment is used.
	assert.Equal(t, "Add widget support", got)

	assert.Equal(t, "claude-3-5-sonnet-latest", gotReq["model"])
	assert.Equal(t, float64(1000), gotReq["max_tokens"])
	assert.Equal(t, 0.7, gotReq["temperature"])

	messages := gotReq["messages"].([]interface{})
	require.Len(t, messages, 1)
	turn := messages[0].(map[string]interface{})
	assert.Equal(t, "user", turn["role"])
	assert.Equal(t, "describe these changes", turn["content"])
}

func TestGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestGenerateEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"message","content":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestGenerateConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}
