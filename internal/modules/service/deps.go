package service

import (
	"context"

	"go.uber.org/zap"
)

// EventPublisher receives lifecycle events; nil disables publishing.
type EventPublisher interface {
	PublishJSON(ctx context.Context, v interface{}) error
}

// SiteMirror keeps a remote copy of hosted files; nil disables mirroring.
// The local content store stays authoritative, so mirror failures are only logged.
type SiteMirror interface {
	PutFile(ctx context.Context, project, filename, contentType string, data []byte) error
	DeleteProject(ctx context.Context, project string) error
}

func publish(ctx context.Context, events EventPublisher, log *zap.Logger, ev interface{}) {
	if events == nil {
		return
	}
	if err := events.PublishJSON(ctx, ev); err != nil {
		log.Sugar().Warnw("publish event failed", "err", err)
	}
}
