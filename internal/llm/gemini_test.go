package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"device-compare/internal/model"
	"device-compare/internal/schema"
)

// fakeGemini stands in for the Gemini REST API. It records each request body
// and answers with a single text candidate.
type fakeGemini struct {
	mu       sync.Mutex
	paths    []string
	bodies   []map[string]interface{}
	status   int
	response string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 && f.status != http.StatusOK {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		return
	}
	resp := map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []interface{}{map[string]interface{}{"text": f.response}},
				},
				"finishReason": "STOP",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeGemini) lastBody(t *testing.T) map[string]interface{} {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.bodies, "no request reached the fake server")
	return f.bodies[len(f.bodies)-1]
}

func (f *fakeGemini) requestPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func newTestProvider(t *testing.T, fake *fakeGemini) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:      "test-key",
		Temperature: 0.3,
		Timeout:     5 * time.Second,
		ClientOptions: []option.ClientOption{
			option.WithEndpoint(server.URL),
			option.WithHTTPClient(server.Client()),
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })
	return provider
}

// object returns the nested JSON object at key, failing the test if absent.
func object(t *testing.T, m map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	v, ok := m[key].(map[string]interface{})
	require.Truef(t, ok, "expected object at %q in %v", key, m)
	return v
}

func TestGeminiProvider_GenerateJSON(t *testing.T) {
	fake := &fakeGemini{response: `{"summary":"ok"}`}
	provider := newTestProvider(t, fake)
	outputSchema, err := schema.Load()
	require.NoError(t, err)

	text, err := provider.GenerateJSON(context.Background(), "compare A and B", outputSchema)

	require.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, text)

	paths := fake.requestPaths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "models/"+DefaultModel+":generateContent"), paths[0])

	body := fake.lastBody(t)
	genCfg := object(t, body, "generationConfig")
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.InDelta(t, 0.3, genCfg["temperature"], 0.001)

	respSchema := object(t, genCfg, "responseSchema")
	props := object(t, respSchema, "properties")
	for _, name := range []string{"device1", "device2", "summary"} {
		assert.Contains(t, props, name)
	}
	assert.ElementsMatch(t, []interface{}{"device1", "device2", "summary"}, respSchema["required"])
	specs := object(t, object(t, object(t, props, "device1"), "properties"), "specs")
	assert.Contains(t, object(t, specs, "properties"), "price")

	contents, ok := body["contents"].([]interface{})
	require.True(t, ok)
	require.Len(t, contents, 1)
	assert.Contains(t, mustJSON(t, contents[0]), "compare A and B")
	assert.NotContains(t, body, "systemInstruction")
}

func TestGeminiProvider_Chat(t *testing.T) {
	fake := &fakeGemini{response: "The Pixel 8 Pro."}
	provider := newTestProvider(t, fake)

	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "compare these"},
		{Role: model.RoleModel, Content: `{"summary":"ok"}`},
	}
	answer, err := provider.Chat(context.Background(), "be concise", history, "which zooms further?")

	require.NoError(t, err)
	assert.Equal(t, "The Pixel 8 Pro.", answer)

	body := fake.lastBody(t)
	assert.Contains(t, mustJSON(t, body["systemInstruction"]), "be concise")

	genCfg, _ := body["generationConfig"].(map[string]interface{})
	assert.NotContains(t, genCfg, "responseMimeType")

	contents, ok := body["contents"].([]interface{})
	require.True(t, ok)
	require.Len(t, contents, 3, "history plus the new message")
	roles := make([]string, 0, len(contents))
	for _, c := range contents {
		content, ok := c.(map[string]interface{})
		require.True(t, ok)
		roles = append(roles, fmt.Sprint(content["role"]))
	}
	assert.Equal(t, []string{"user", "model", "user"}, roles)
	assert.Contains(t, mustJSON(t, contents[2]), "which zooms further?")
}

func TestGeminiProvider_BackendError(t *testing.T) {
	fake := &fakeGemini{status: http.StatusBadRequest}
	provider := newTestProvider(t, fake)

	_, err := provider.Chat(context.Background(), "", nil, "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini chat request failed")
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestNewGeminiProvider_RequiresAPIKey(t *testing.T) {
	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "  "})
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "API key")
}

func TestToContents(t *testing.T) {
	messages := []model.ChatMessage{
		{Role: model.RoleUser, Content: "compare these"},
		{Role: model.RoleModel, Content: `{"summary":"ok"}`},
		{Role: model.RoleUser, Content: "which is cheaper?"},
	}

	contents := toContents(messages)
	require.Len(t, contents, 3)
	for i, c := range contents {
		assert.Equal(t, string(messages[i].Role), c.Role)
		require.Len(t, c.Parts, 1)
		assert.Equal(t, genai.Text(messages[i].Content), c.Parts[0])
	}

	assert.Empty(t, toContents(nil))
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{
			"blocked prompt",
			&genai.GenerateContentResponse{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}},
			"",
		},
		{
			"joins text parts of first candidate",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}}, FinishReason: genai.FinishReasonStop},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
			}},
			`{"a":1}`,
		},
		{
			"skips candidates without content",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("answer")}}, FinishReason: genai.FinishReasonMaxTokens},
			}},
			"answer",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractText(tc.resp))
		})
	}
}
