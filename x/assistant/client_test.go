package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/util"
)

func newTestClient(endpoint string) Client {
	return NewClient(util.Config{
		Assistant: util.Assistant{
			Endpoint: endpoint,
			APIKey:   "test-key",
			Model:    "test-model",
		},
	})
}

func TestClientComplete(t *testing.T) {

	var ctx = context.Background()

	var received completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Bem-vindo à taverna!"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.Complete(ctx, []core.ChatMessage{
		{Role: core.RoleSystem, Content: "prompt"},
		{Role: core.RoleUser, Content: "Olá"},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Bem-vindo à taverna!", reply)
	}

	assert.Equal(t, "test-model", received.Model)
	assert.Len(t, received.Messages, 2)
}

func TestClientCompleteEmptyChoices(t *testing.T) {

	var ctx = context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.Complete(ctx, []core.ChatMessage{{Role: core.RoleUser, Content: "Olá"}})
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultReply, reply)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {

	var ctx = context.Background()

	// object-shaped error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "insufficient quota"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(ctx, []core.ChatMessage{{Role: core.RoleUser, Content: "Olá"}})
	var upstream core.ErrorUpstream
	if assert.True(t, errors.As(err, &upstream)) {
		assert.Equal(t, "insufficient quota", upstream.Message)
	}

	// string-shaped error
	server2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": "model not found"})
	}))
	defer server2.Close()

	client2 := newTestClient(server2.URL)

	_, err = client2.Complete(ctx, []core.ChatMessage{{Role: core.RoleUser, Content: "Olá"}})
	if assert.True(t, errors.As(err, &upstream)) {
		assert.Equal(t, "model not found", upstream.Message)
	}

	// unreachable endpoint
	client3 := newTestClient("http://127.0.0.1:1")

	_, err = client3.Complete(ctx, []core.ChatMessage{{Role: core.RoleUser, Content: "Olá"}})
	assert.True(t, errors.As(err, &upstream))
}
