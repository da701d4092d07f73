package service

import (
	"context"
	"time"
)

// EventTypeUserRegistered is published once per successful registration.
const EventTypeUserRegistered = "user.registered"

// AccountEvent describes a change to an account for downstream consumers.
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
