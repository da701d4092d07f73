// Package pubsub publishes account events to Google Pub/Sub or, in development, to a local HTTP endpoint.
package pubsub

import (
	"context"
	"log/slog"
	"strconv"

	"studymind/config"
	"studymind/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported values of pubsub.provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher is used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	p.logger.DebugContext(ctx, "Account event publishing disabled, skipping",
		slog.String("event_type", event.Type),
		slog.String("username", event.Username),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for account events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		googlePublisher, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = googlePublisher

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.AccountEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"user_id":    strconv.FormatUint(uint64(event.UserID), 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
