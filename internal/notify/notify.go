// Package notify delivers best-effort text notifications to Telegram chats.
//
// Delivery is deliberately decoupled from booking durability: no method in
// this package returns an error to its caller for a failed send. Transport
// errors and non-success API responses are logged server-side and absorbed.
package notify

import "context"

// Notifier is the port the rest of the application talks to.
// Implementations must never surface delivery failures to the caller.
type Notifier interface {
	// Send delivers text to the configured manager chat.
	Send(ctx context.Context, text string)

	// SendTo delivers text to a specific chat, e.g. replying to a webhook
	// update's sender.
	SendTo(ctx context.Context, chatID int64, text string)

	// RegisterWebhook asks the messaging platform to deliver updates to url.
	// Called once at startup; an error here only disables inbound commands.
	RegisterWebhook(ctx context.Context, url string) error
}

// Nop is the Notifier used when no bot token or destination chat is
// configured. Every call is a silent no-op.
type Nop struct{}

func (Nop) Send(context.Context, string)          {}
func (Nop) SendTo(context.Context, int64, string) {}
func (Nop) RegisterWebhook(context.Context, string) error {
	return nil
}

var _ Notifier = Nop{}
