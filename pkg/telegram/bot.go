package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. When secretToken is
// non-empty Telegram echoes it back in the X-Telegram-Bot-Api-Secret-Token
// header of every delivery.
func (b *Bot) SetWebhook(webhookURL, secretToken string) error {
	_, err := b.call("setWebhook", SetWebhookRequest{
		URL:         webhookURL,
		SecretToken: secretToken,
	})
	if err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	_, err := b.SendMessageForReply(chatID, text, parseMode)
	return err
}

// SendMessageForReply sends a message and returns the created Message, so
// the caller can later edit it in place (status-message flow).
func (b *Bot) SendMessageForReply(chatID int64, text string, parseMode string) (*Message, error) {
	resp, err := b.call("sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return resp.Result, nil
}

// EditMessageText replaces the text of an already-sent message.
func (b *Bot) EditMessageText(chatID, messageID int64, text string, parseMode string) error {
	_, err := b.call("editMessageText", EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return fmt.Errorf("telegram editMessageText failed: %w", err)
	}
	return nil
}

// call posts a JSON payload to a Bot API method and decodes the response
// envelope, turning ok=false into an error carrying the API description.
func (b *Bot) call(method string, payload any) (*APIResponse, error) {
	url := fmt.Sprintf("%s/%s", b.apiURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !apiResp.OK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, apiResp.Description)
	}
	return &apiResp, nil
}
