// Package whatsappsender posts text replies to the WhatsApp Cloud API.
package whatsappsender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// Default timeout for send requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Sender delivers outbound text messages through the provider's per-number
// send endpoint. It does no retries and tracks no delivery confirmations;
// the caller decides what a failed send means.
type Sender struct {
	client      *http.Client
	sendURL     string
	accessToken string
}

// New creates a Sender for the given Graph API base URL and phone number ID.
// A nil client gets a default with a request timeout.
func New(client *http.Client, graphAPIBaseURL, phoneNumberID, accessToken string) *Sender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &Sender{
		client:      client,
		sendURL:     strings.TrimSuffix(graphAPIBaseURL, "/") + "/" + phoneNumberID + "/messages",
		accessToken: accessToken,
	}
}

type textMessageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendText posts a single text message to the recipient.
func (s *Sender) SendText(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(textMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.sendURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST to send endpoint: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		// Read response body for error details (limited size)
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("send endpoint returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
