package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultGraphEndpoint is the Microsoft Graph sendMail endpoint.
const DefaultGraphEndpoint = "https://graph.microsoft.com/v1.0/me/sendMail"

// Message is one HTML email.
type Message struct {
	Subject string
	HTML    string
	To      []string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendError is returned when the mail API rejects a message.
type SendError struct {
	StatusCode int
	Message    string
}

func (e *SendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("report: send failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("report: send failed (%d): %s", e.StatusCode, e.Message)
}

// GraphConfig configures a GraphMailer.
type GraphConfig struct {
	// Endpoint overrides the sendMail URL. Defaults to DefaultGraphEndpoint.
	Endpoint string

	// Tokens supplies the bearer token for each request. Required.
	Tokens TokenSource

	// HTTPClient allows injecting a custom HTTP client (useful for testing).
	// Defaults to a client with 15s timeout.
	HTTPClient *http.Client
}

// GraphMailer sends mail through the Microsoft Graph API.
type GraphMailer struct {
	endpoint string
	tokens   TokenSource
	http     *http.Client
}

// NewGraphMailer creates a mailer.
func NewGraphMailer(cfg GraphConfig) *GraphMailer {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGraphEndpoint
	}
	if cfg.Tokens == nil {
		cfg.Tokens = StaticToken("")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &GraphMailer{
		endpoint: cfg.Endpoint,
		tokens:   cfg.Tokens,
		http:     httpClient,
	}
}

type graphAddress struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphRequest struct {
	Message struct {
		Subject string `json:"subject"`
		Body    struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		} `json:"body"`
		ToRecipients []graphAddress `json:"toRecipients"`
	} `json:"message"`
	SaveToSentItems bool `json:"saveToSentItems"`
}

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send posts msg to the sendMail endpoint. Any 2xx status is success.
func (m *GraphMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("report: message has no recipients")
	}
	token, err := m.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var body graphRequest
	body.Message.Subject = msg.Subject
	body.Message.Body.ContentType = "HTML"
	body.Message.Body.Content = msg.HTML
	for _, addr := range msg.To {
		var a graphAddress
		a.EmailAddress.Address = addr
		body.Message.ToRecipients = append(body.Message.ToRecipients, a)
	}
	body.SaveToSentItems = true

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("report: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("report: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("report: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	sendErr := &SendError{StatusCode: resp.StatusCode}
	var apiErr graphError
	if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
		sendErr.Message = apiErr.Error.Message
	} else {
		sendErr.Message = strings.TrimSpace(string(respBody))
	}
	return sendErr
}
