package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Credentials identifie le canal WhatsApp d'un marchand.
type Credentials struct {
	ChannelID string
	Token     string
}

// Sender envoie un message sortant templaté à un client final.
type Sender interface {
	SendTemplate(ctx context.Context, creds Credentials, recipient, template string, variables map[string]string) error
}

var (
	messengerURLEnv = "MESSENGER_API_URL"
	defaultAPIURL   = "https://graph.facebook.com/v19.0"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient() *Client {
	baseURL := os.Getenv(messengerURLEnv)
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type templateRequest struct {
	To        string            `json:"to"`
	Type      string            `json:"type"`
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables,omitempty"`
}

func (m *Client) SendTemplate(ctx context.Context, creds Credentials, recipient, template string, variables map[string]string) error {
	if creds.ChannelID == "" || creds.Token == "" {
		return fmt.Errorf("messaging channel not configured")
	}

	payload, err := json.Marshal(templateRequest{
		To:        recipient,
		Type:      "template",
		Template:  template,
		Variables: variables,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", m.baseURL, creds.ChannelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling messaging API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("messaging API error: status=%d, body=%s", resp.StatusCode, string(body))
	}
	return nil
}
