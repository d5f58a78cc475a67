package ports

import "context"

// EventPublisher fans lead/property audit events out to whatever transport
// the runtime wired (structured log by default, kafka when configured).
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
