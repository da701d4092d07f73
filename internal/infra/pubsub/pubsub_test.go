package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studymind/config"
	"studymind/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:  "req-1",
		Type:       service.EventTypeUserRegistered,
		UserID:     7,
		Username:   "alice",
		Email:      "alice@x.io",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishAccountEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.EventTypeUserRegistered, received.Message.Attributes["event_type"])
	assert.Equal(t, "7", received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.AccountEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "alice", event.Username)
	assert.Equal(t, uint(7), event.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishAccountEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		isNoop  bool
	}{
		{name: "not configured", cfg: nil, isNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, isNoop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9000/events"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, noop := publisher.(*noopPublisher)
			assert.Equal(t, tt.isNoop, noop)
			if noop {
				assert.NoError(t, publisher.PublishAccountEvent(context.Background(), sampleEvent()))
			}
			assert.NoError(t, publisher.Close())
		})
	}
}
