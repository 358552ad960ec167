// Package discord provides a simple client for sending direct messages via Discord.
//
// It opens (or reuses) a DM channel with the recipient through the Discord
// REST API and posts the message there. Designed to be used as the delivery
// client of the notification dispatcher.
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apiBase = "https://discord.com/api/v10"

// Client represents a Discord bot client used to deliver notifications.
type Client struct {
	token  string       // bot token for authentication
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new Discord Client instance with the given bot token.
//
// Requests are bounded by a client timeout; a send that exceeds it is
// reported as failed, not retried.
func NewClient(token string) *Client {
	return &Client{
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// createDMRequest represents the payload for the create-DM endpoint.
type createDMRequest struct {
	RecipientID string `json:"recipient_id"` // user id to open a DM channel with
}

type createDMResponse struct {
	ID string `json:"id"` // DM channel id
}

// createMessageRequest represents the payload for the create-message endpoint.
type createMessageRequest struct {
	Content string `json:"content"` // message text
}

// Send delivers a direct message to the specified Discord user ID.
//
// It opens the DM channel for the recipient, posts the message, and
// returns an error if either request fails or the API responds with a
// non-2xx status.
func (c *Client) Send(to string, msg string) error {
	channelID, err := c.openDMChannel(to)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}

	body, err := json.Marshal(createMessageRequest{Content: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/channels/%s/messages", apiBase, channelID)

	resp, err := c.post(url, body)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord API error: %s", resp.Status)
	}

	return nil
}

func (c *Client) openDMChannel(userID string) (string, error) {
	body, err := json.Marshal(createDMRequest{RecipientID: userID})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.post(apiBase+"/users/@me/channels", body)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("discord API error: %s", resp.Status)
	}

	var channel createDMResponse
	if err := json.NewDecoder(resp.Body).Decode(&channel); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return channel.ID, nil
}

func (c *Client) post(url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}
