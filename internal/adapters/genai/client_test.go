package genai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlowCashApp/flowcash_backend/internal/adapters/genai"
	portsai "github.com/FlowCashApp/flowcash_backend/internal/core/ports/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return genai.NewClient(genai.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-2.5-flash",
	})
}

func candidateResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerate_SendsModelPathAndAPIKeyHeader(t *testing.T) {
	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write([]byte(candidateResponse("hello")))
	})

	text, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "say hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestGenerate_RequestOverridesModel(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(candidateResponse("ok")))
	})

	_, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "x", Model: "gemini-2.0-pro"})

	require.NoError(t, err)
	assert.Equal(t, "/models/gemini-2.0-pro:generateContent", gotPath)
}

func TestGenerate_StructuredOutputConfig(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateResponse(`{"amount":1}`)))
	})

	_, err := client.Generate(context.Background(), portsai.GenerateRequest{
		Prompt:           "parse this",
		ResponseMIMEType: "application/json",
		ResponseSchema: &portsai.Schema{
			Type: portsai.TypeObject,
			Properties: map[string]*portsai.Schema{
				"amount": {Type: portsai.TypeNumber},
			},
			Required: []string{"amount"},
		},
	})
	require.NoError(t, err)

	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request body")
	assert.Equal(t, "application/json", genCfg["responseMimeType"])

	schema, ok := genCfg["responseSchema"].(map[string]any)
	require.True(t, ok, "responseSchema missing from request body")
	assert.Equal(t, "OBJECT", schema["type"])
}

func TestGenerate_ConcatenatesPartsOfFirstCandidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[
			{"content":{"parts":[{"text":"first "},{"text":"candidate"}]}},
			{"content":{"parts":[{"text":"second candidate"}]}}
		]}`))
	})

	text, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "first candidate", text)
}

func TestGenerate_EmptyCandidatesIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "x"})

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.NotContains(t, err.Error(), "test-key")
}

func TestGenerate_RequiresAPIKeyAndPrompt(t *testing.T) {
	client := genai.NewClient(genai.Config{})
	_, err := client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "x"})
	assert.Error(t, err)

	client = genai.NewClient(genai.Config{APIKey: "k"})
	_, err = client.Generate(context.Background(), portsai.GenerateRequest{Prompt: "  "})
	assert.Error(t, err)
}
