package notify

import (
	"context"
	"log/slog"
)

// LogNotifier implements Notifier by logging messages instead of delivering
// them. Used when no webhook URL is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Publish(ctx context.Context, message string) error {
	slog.Info("notification (no webhook configured)", "message", message)
	return nil
}
