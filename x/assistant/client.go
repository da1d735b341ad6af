//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/util"
)

const defaultTimeout = 30 * time.Second

// DefaultReply is served when the model response has no usable content
const DefaultReply = "Sem resposta do modelo."

// Client calls the external chat-completion endpoint
type Client interface {
	Complete(ctx context.Context, messages []core.ChatMessage) (string, error)
}

type client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewClient creates a chat-completion client from the assistant config
func NewClient(config util.Config) Client {
	return &client{
		endpoint: config.Assistant.Endpoint,
		apiKey:   config.Assistant.APIKey,
		model:    config.Assistant.Model,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type completionRequest struct {
	Model    string             `json:"model"`
	Messages []core.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message core.ChatMessage `json:"message"`
	} `json:"choices"`
	Error json.RawMessage `json:"error,omitempty"`
}

// Complete sends the transcript and returns the model's reply text.
// A model-reported error surfaces as ErrorUpstream.
func (c *client) Complete(ctx context.Context, messages []core.ChatMessage) (string, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Client.Complete")
	defer span.End()

	body, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", core.NewErrorUpstream(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return "", core.NewErrorUpstream(err.Error())
	}

	var result completionResponse
	err = json.Unmarshal(raw, &result)
	if err != nil {
		span.RecordError(err)
		return "", core.NewErrorUpstream(err.Error())
	}

	if len(result.Error) > 0 && string(result.Error) != "null" {
		return "", core.NewErrorUpstream(upstreamErrorMessage(result.Error))
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return DefaultReply, nil
	}

	return result.Choices[0].Message.Content, nil
}

// upstreamErrorMessage copes with the two error shapes seen in the wild:
// a bare string and an object with a message field
func upstreamErrorMessage(raw json.RawMessage) string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asObject struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil && asObject.Message != "" {
		return asObject.Message
	}

	return string(raw)
}
