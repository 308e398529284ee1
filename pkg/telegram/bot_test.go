package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reminder-bot/pkg/telegram"
)

func TestBot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req telegram.SetWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req.URL == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if req.URL == "with_secret" && req.SecretToken != "shh" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "missing secret"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req telegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)

			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if req.Text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(telegram.APIResponse{
				OK:     true,
				Result: &telegram.Message{MessageID: 77, Chat: &telegram.Chat{ID: req.ChatID}, Text: req.Text},
			})
			return
		}

		if strings.HasSuffix(path, "/editMessageText") {
			var req telegram.EditMessageTextRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.MessageID == 0 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "message to edit not found"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL) // Route commands to test server instead of api.telegram.org

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook("https://example.com/webhook", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook With Secret", func(t *testing.T) {
		if err := bot.SetWebhook("with_secret", "shh"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook("cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook("cause_500", ""); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(12345, "Hello", "Markdown"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageForReply Returns Message", func(t *testing.T) {
		msg, err := bot.SendMessageForReply(12345, "Creating task...", "Markdown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg == nil || msg.MessageID != 77 || msg.Chat.ID != 12345 {
			t.Fatalf("unexpected message: %+v", msg)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(12345, "cause_500"); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("EditMessageText Success", func(t *testing.T) {
		if err := bot.EditMessageText(12345, 77, "done", "Markdown"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("EditMessageText API Failed", func(t *testing.T) {
		err := bot.EditMessageText(12345, 0, "done", "")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(12345, "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
