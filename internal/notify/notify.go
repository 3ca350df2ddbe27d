// Package notify publishes short admin notifications, such as "new feedback
// received", to a team channel.
package notify

import "context"

// Notifier publishes a message to a notification channel. The abstraction
// lets the webhook integration be swapped for a mock without refactoring.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}
