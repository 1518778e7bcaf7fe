package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGraphMailerSend(t *testing.T) {
	var got struct {
		Message struct {
			Subject string `json:"subject"`
			Body    struct {
				ContentType string `json:"contentType"`
				Content     string `json:"content"`
			} `json:"body"`
			ToRecipients []struct {
				EmailAddress struct {
					Address string `json:"address"`
				} `json:"emailAddress"`
			} `json:"toRecipients"`
		} `json:"message"`
		SaveToSentItems bool `json:"saveToSentItems"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := NewGraphMailer(GraphConfig{
		Endpoint:   server.URL,
		Tokens:     StaticToken("secret"),
		HTTPClient: server.Client(),
	})
	err := m.Send(context.Background(), Message{
		Subject: "hello",
		HTML:    "<p>hi</p>",
		To:      []string{"ada@example.com"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if got.Message.Subject != "hello" {
		t.Errorf("subject = %q", got.Message.Subject)
	}
	if got.Message.Body.ContentType != "HTML" || got.Message.Body.Content != "<p>hi</p>" {
		t.Errorf("body = %+v", got.Message.Body)
	}
	if len(got.Message.ToRecipients) != 1 || got.Message.ToRecipients[0].EmailAddress.Address != "ada@example.com" {
		t.Errorf("recipients = %+v", got.Message.ToRecipients)
	}
	if !got.SaveToSentItems {
		t.Error("saveToSentItems should be true")
	}
}

func TestGraphMailerAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"ErrorInvalidRecipients","message":"bad recipient"}}`))
	}))
	defer server.Close()

	m := NewGraphMailer(GraphConfig{Endpoint: server.URL, Tokens: StaticToken("secret")})
	err := m.Send(context.Background(), Message{Subject: "x", To: []string{"nobody"}})

	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("expected *SendError, got %v", err)
	}
	if sendErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", sendErr.StatusCode)
	}
	if sendErr.Message != "bad recipient" {
		t.Errorf("Message = %q", sendErr.Message)
	}
}

func TestGraphMailerPlainErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer server.Close()

	m := NewGraphMailer(GraphConfig{Endpoint: server.URL, Tokens: StaticToken("secret")})
	err := m.Send(context.Background(), Message{Subject: "x", To: []string{"a@b"}})

	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("expected *SendError, got %v", err)
	}
	if sendErr.Message != "gateway down" {
		t.Errorf("Message = %q", sendErr.Message)
	}
}

func TestGraphMailerNoToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	m := NewGraphMailer(GraphConfig{Endpoint: server.URL})
	err := m.Send(context.Background(), Message{Subject: "x", To: []string{"a@b"}})
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if called {
		t.Error("request sent without a token")
	}
}

func TestGraphMailerNoRecipients(t *testing.T) {
	m := NewGraphMailer(GraphConfig{Tokens: StaticToken("secret")})
	if err := m.Send(context.Background(), Message{Subject: "x"}); err == nil {
		t.Fatal("expected an error without recipients")
	}
}
