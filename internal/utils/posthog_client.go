package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps the PostHog client so callers never need to
// know whether analytics is configured. An empty API key yields a wrapper
// whose methods are all no-ops.
type PosthogClientWrapper struct {
	client posthog.Client
	logger *slog.Logger
}

// InitializePosthogClient creates the wrapper. A missing API key disables
// tracking rather than failing startup.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("POSTHOG_API_KEY not set. Usage analytics disabled.")
		return &PosthogClientWrapper{}
	}
	w := &PosthogClientWrapper{logger: logger}
	w.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return w
}

// IsInitialized reports whether events will actually be sent.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.client != nil
}

// Enqueue records one event against the given user. Delivery is batched and
// asynchronous inside the client.
func (w *PosthogClientWrapper) Enqueue(distinctID, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event",
			slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events. Call on shutdown.
func (w *PosthogClientWrapper) Close() {
	if w.client == nil {
		return
	}
	w.client.Close()
}
