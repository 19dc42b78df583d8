// Package mailer sends transactional email through the Resend REST API.
package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

var ErrNoAPIKey = errors.New("resend API key is not configured")

type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type apiError struct {
	Message string `json:"message"`
}

// Send posts one email to the provider. A non-2xx response is returned
// as an error carrying the provider's message when it has one.
func (c *Client) Send(from string, to []string, subject, html string) error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}

	body, err := json.Marshal(sendRequest{From: from, To: to, Subject: subject, HTML: html})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

// ContactHTML renders the contact-form message body.
func ContactHTML(name, company, email, message string) string {
	return fmt.Sprintf(
		"<p><b>Name:</b> %s</p><p><b>Company:</b> %s</p><p><b>Email:</b> %s</p><p><b>Message:</b><br/>%s</p>",
		name, company, email, strings.ReplaceAll(message, "\n", "<br/>"),
	)
}
