package handler

import (
	"encoding/json"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot commands recognised by the webhook. Anything else is acknowledged
// without action.
const (
	cmdStart       = "start"
	cmdTestBooking = "testbooking"
)

// TelegramWebhook handles POST /api/telegram/webhook.
//
// Telegram retries updates that are not answered with 2xx, so this handler
// always acknowledges: a malformed payload or an unknown command is not worth
// a redelivery loop.
func (s *Server) TelegramWebhook(w http.ResponseWriter, r *http.Request) {
	// Telegram extends its update schema over time, so unknown fields are
	// tolerated here, unlike on our own API payloads.
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.log.WarnContext(r.Context(), "telegram webhook: malformed update", "error", err)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	if msg := update.Message; msg != nil && msg.IsCommand() {
		switch msg.Command() {
		case cmdStart:
			s.notifier.SendTo(r.Context(), msg.Chat.ID,
				"Hello! Use the booking widget on our site to reserve a tour. Bookings appear here automatically.")
		case cmdTestBooking:
			s.notifier.Send(r.Context(),
				"Test booking\nTour: City Walk\nDate: tomorrow 10:00\nPeople: 2\nClient: test\nPhone: +0000\nComment: test message, not a real booking")
			s.notifier.SendTo(r.Context(), msg.Chat.ID, "Test booking sent to the manager chat.")
		default:
			// Unknown command: acknowledge without action.
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
