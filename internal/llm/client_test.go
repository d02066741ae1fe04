package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"deakin-rover-ai/internal/domain"
)

type capturedRequest struct {
	Model       string           `json:"model"`
	Temperature float64          `json:"temperature"`
	Messages    []domain.Message `json:"messages"`
}

func newCompletionServer(t *testing.T, status int, body string, captured *capturedRequest, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gsk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if captured != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func roverRequest() Request {
	return Request{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "You are the Deakin Rover AI assistant."},
			{Role: domain.RoleUser, Content: "What is the Australian Rover Challenge?"},
		},
		Temperature: 0.7,
	}
}

func TestHTTPClientGenerate_Success(t *testing.T) {
	var captured capturedRequest
	var hits int32
	srv := newCompletionServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "llama-3.1-8b-instant",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "It is a student robotics competition."}}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 7, "total_tokens": 17}
	}`, &captured, &hits)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "gsk-test", "llama-3.1-8b-instant", zap.NewNop())
	reply, err := client.Generate(context.Background(), roverRequest())
	require.NoError(t, err)

	assert.Equal(t, "It is a student robotics competition.", reply)
	assert.Equal(t, "llama-3.1-8b-instant", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 1e-9)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, domain.RoleSystem, captured.Messages[0].Role)
	assert.Equal(t, domain.RoleUser, captured.Messages[1].Role)
	assert.Equal(t, "What is the Australian Rover Challenge?", captured.Messages[1].Content)
}

func TestHTTPClientGenerate_EmptyChoices(t *testing.T) {
	var hits int32
	srv := newCompletionServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`, nil, &hits)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "gsk-test", "m", nil)
	_, err := client.Generate(context.Background(), roverRequest())
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestHTTPClientGenerate_EmptyContent(t *testing.T) {
	var hits int32
	srv := newCompletionServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":""}}]}`, nil, &hits)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "gsk-test", "m", nil)
	_, err := client.Generate(context.Background(), roverRequest())
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestHTTPClientGenerate_ProviderErrorIsNotRetried(t *testing.T) {
	var hits int32
	srv := newCompletionServer(t, http.StatusInternalServerError, `{"error":{"message":"upstream exploded","type":"server_error"}}`, nil, &hits)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "gsk-test", "m", nil)
	_, err := client.Generate(context.Background(), roverRequest())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyResponse))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestHTTPClientGenerate_RejectsUnknownRole(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:0", "gsk-test", "m", nil)
	_, err := client.Generate(context.Background(), Request{
		Messages: []domain.Message{{Role: "narrator", Content: "hola"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported role")
}

func TestHTTPClientGenerate_RequiresMessages(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:0", "gsk-test", "m", nil)
	_, err := client.Generate(context.Background(), Request{})
	require.Error(t, err)
}

func TestHTTPClientGenerate_WhitespaceContentIsReturned(t *testing.T) {
	var hits int32
	srv := newCompletionServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"\n"}}]}`, nil, &hits)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "gsk-test", "m", nil)
	reply, err := client.Generate(context.Background(), roverRequest())
	require.NoError(t, err)
	assert.Equal(t, "\n", reply)
}
