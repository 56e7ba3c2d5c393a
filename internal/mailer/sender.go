package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Client sends transactional mail through the Resend HTTP API.
type Client struct {
	APIKey         string
	FromEmail      string
	ReplyToEmail   string
	Currency       string
	EtransferEmail string

	httpc *http.Client
}

func NewClient(apiKey, fromEmail, replyToEmail, currency, etransferEmail string) *Client {
	return &Client{
		APIKey:         apiKey,
		FromEmail:      fromEmail,
		ReplyToEmail:   replyToEmail,
		Currency:       currency,
		EtransferEmail: etransferEmail,
		httpc:          &http.Client{Timeout: 30 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	payload := sendRequest{
		From:    fmt.Sprintf("Loku Caters <%s>", c.FromEmail),
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		ReplyTo: c.ReplyToEmail,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode >= 400 {
		var parsed sendResponse
		message := string(respBody)
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Message != "" {
			message = parsed.Message
		}
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, message)
	}
	return nil
}
