package notify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendTimeout bounds every outbound Telegram API call so a degraded platform
// cannot indefinitely delay the booking response.
const sendTimeout = 10 * time.Second

// Telegram sends messages through the Telegram Bot API.
type Telegram struct {
	bot           *tgbotapi.BotAPI
	managerChatID int64
	log           *slog.Logger
}

// NewTelegram constructs a Notifier backed by the Telegram Bot API.
// Returns Nop when the token or manager chat id is missing, or when the bot
// cannot be initialised (e.g. invalid token) — a broken notification channel
// must degrade the feature, never the process.
func NewTelegram(token string, managerChatID int64, log *slog.Logger) Notifier {
	return NewTelegramWithEndpoint(token, managerChatID, tgbotapi.APIEndpoint, log)
}

// NewTelegramWithEndpoint is NewTelegram with an overridable API endpoint,
// used by tests to point the bot at a local fake server.
func NewTelegramWithEndpoint(token string, managerChatID int64, endpoint string, log *slog.Logger) Notifier {
	if token == "" || managerChatID == 0 {
		log.Info("telegram notifications disabled: missing bot token or manager chat id")
		return Nop{}
	}

	client := &http.Client{Timeout: sendTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		log.Warn("telegram notifications disabled: bot init failed", "error", err)
		return Nop{}
	}

	return &Telegram{bot: bot, managerChatID: managerChatID, log: log}
}

// Send delivers text to the manager chat. Failures are logged and absorbed.
func (t *Telegram) Send(ctx context.Context, text string) {
	t.SendTo(ctx, t.managerChatID, text)
}

// SendTo delivers text to the given chat. Failures are logged and absorbed.
func (t *Telegram) SendTo(ctx context.Context, chatID int64, text string) {
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		t.log.WarnContext(ctx, "telegram send failed", "chat_id", chatID, "error", err)
	}
}

// RegisterWebhook tells Telegram to deliver updates to url.
func (t *Telegram) RegisterWebhook(ctx context.Context, url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	if _, err := t.bot.Request(wh); err != nil {
		return err
	}
	t.log.InfoContext(ctx, "telegram webhook registered", "url", url)
	return nil
}

var _ Notifier = (*Telegram)(nil)
