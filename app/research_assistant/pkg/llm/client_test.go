package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
)

// fakeChatModel 可控的 eino ChatModel
type fakeChatModel struct {
	resp     *schema.Message
	err      error
	calls    int
	lastOpts *model.Options
	lastIn   []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	f.lastIn = input
	f.lastOpts = model.GetCommonOptions(nil, opts...)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	if f.err != nil {
		return nil, f.err
	}
	return schema.StreamReaderFromArray([]*schema.Message{f.resp}), nil
}

func float32p(v float32) *float32 { return &v }

func newTestClient(cm model.BaseChatModel, apiKey string) *Client {
	return NewClient(cm, Options{
		APIKey:  apiKey,
		Timeout: time.Second,
		Profiles: map[Profile]ProfileSettings{
			ProfileFast:      {Model: "small", Temperature: float32p(0), MaxTokens: 512},
			ProfileReasoning: {Model: "large", Temperature: float32p(0.1), MaxTokens: 2048},
		},
		Recorder: metrics.NewRecorder(prometheus.NewRegistry()),
	})
}

func TestClient_GenerateAppliesProfile(t *testing.T) {
	cm := &fakeChatModel{resp: &schema.Message{
		Role:    schema.Assistant,
		Content: "  summary text \n",
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		},
	}}
	c := newTestClient(cm, "key")

	out, err := c.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")}, ProfileFast)
	require.NoError(t, err)
	assert.Equal(t, "summary text", out)
	assert.Equal(t, 1, cm.calls)
	require.NotNil(t, cm.lastOpts.Model)
	assert.Equal(t, "small", *cm.lastOpts.Model)
	require.NotNil(t, cm.lastOpts.MaxTokens)
	assert.Equal(t, 512, *cm.lastOpts.MaxTokens)
	require.NotNil(t, cm.lastOpts.Temperature)
	assert.Equal(t, float32(0), *cm.lastOpts.Temperature)

	_, err = c.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")}, ProfileReasoning)
	require.NoError(t, err)
	assert.Equal(t, "large", *cm.lastOpts.Model)
}

func TestClient_MissingAPIKey(t *testing.T) {
	cm := &fakeChatModel{resp: &schema.Message{Content: "x"}}
	c := newTestClient(cm, "")

	_, err := c.Generate(context.Background(), nil, ProfileReasoning)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, 0, cm.calls)
}

func TestClient_UnknownProfile(t *testing.T) {
	c := newTestClient(&fakeChatModel{}, "key")
	_, err := c.Generate(context.Background(), nil, Profile("creative"))
	assert.ErrorIs(t, err, ErrProvider)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), ErrTimeout},
		{"unauthorized", errors.New("error, status code: 401, message: Invalid API Key"), ErrAuth},
		{"server", errors.New("error, status code: 500"), ErrProvider},
		{"timeout text", errors.New("request timed out"), ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&fakeChatModel{err: tt.err}, "key")
			_, err := c.Generate(context.Background(), nil, ProfileReasoning)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClient_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *schema.Message
	}{
		{"nil message", nil},
		{"empty content", &schema.Message{Content: ""}},
		{"blank content", &schema.Message{Content: " \n\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&fakeChatModel{resp: tt.resp}, "key")
			out, err := c.Generate(context.Background(), nil, ProfileFast)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, ErrEmptyResponse)
			assert.NotErrorIs(t, err, ErrProvider)
			assert.Equal(t, KindEmptyResponse, KindOf(err))
		})
	}
}

func TestNewLimiter(t *testing.T) {
	l := NewLimiter(config.ConcurrencyConfig{})
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())

	l = NewLimiter(config.ConcurrencyConfig{RPM: 60, QPS: 1})
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
}
