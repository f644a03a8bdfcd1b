// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/session"
)

func newTestSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStoreWithPath(filepath.Join(t.TempDir(), "credentials"))
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	return s
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := newTestSession(t)
	client := NewClientWithConfig(sessions, &ClientConfig{BaseURL: srv.URL})
	return client, sessions
}

// =============================================================================
// CORE REQUEST BEHAVIOR
// =============================================================================

func TestRequest_AttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	}))

	if err := sessions.SetToken("tok-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.Request(context.Background(), http.MethodGet, "/api/auth/me", nil); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want 'Bearer tok-1'", gotAuth)
	}
}

func TestRequest_OmitsBearerWhenAbsent(t *testing.T) {
	var gotAuth string
	var gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"x"}`)
	}))

	if _, err := client.Request(context.Background(), http.MethodPost, "/api/auth/login", LoginRequest{Username: "admin"}); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty for anonymous call", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestRequest_JSONVersusTextDecoding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			io.WriteString(w, `{"ok":true}`)
		default:
			w.Header().Set("Content-Type", "text/plain")
			io.WriteString(w, "pong")
		}
	}))

	dec, err := client.Request(context.Background(), http.MethodGet, "/json", nil)
	if err != nil {
		t.Fatalf("Request json: %v", err)
	}
	if !dec.IsJSON() {
		t.Error("declared JSON response should decode as JSON variant")
	}

	dec, err = client.Request(context.Background(), http.MethodGet, "/text", nil)
	if err != nil {
		t.Fatalf("Request text: %v", err)
	}
	if dec.IsJSON() {
		t.Error("text/plain response should decode as text variant")
	}
	if dec.Text() != "pong" {
		t.Errorf("Text = %q, want 'pong'", dec.Text())
	}
}

func TestRequest_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, "Username already exists")
	}))

	_, err := client.Request(context.Background(), http.MethodPost, "/api/auth/register", RegisterRequest{})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", reqErr.Status)
	}
	if reqErr.Body != "Username already exists" {
		t.Errorf("Body = %q", reqErr.Body)
	}
}

func TestRequest_TransportFailure(t *testing.T) {
	sessions := newTestSession(t)
	// Nothing listens on this address.
	client := NewClientWithConfig(sessions, &ClientConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Request(context.Background(), http.MethodGet, "/health", nil)
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
}

func TestRequest_UnencodableBodyIsCallerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request with an unencodable body must never reach the server")
	}))

	_, err := client.Request(context.Background(), http.MethodPost, "/api/chats", make(chan int))
	if err == nil {
		t.Fatal("expected an error for an unencodable body")
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		t.Errorf("marshal failure misclassified as *TransportError: %v", err)
	}
}

func TestIsAuthFailure(t *testing.T) {
	if !IsAuthFailure(&RequestError{Status: http.StatusUnauthorized}) {
		t.Error("401 should be an auth failure")
	}
	if !IsAuthFailure(&RequestError{Status: http.StatusForbidden}) {
		t.Error("403 should be an auth failure")
	}
	if IsAuthFailure(&RequestError{Status: http.StatusInternalServerError}) {
		t.Error("500 should not be an auth failure")
	}
	if IsAuthFailure(&TransportError{Cause: errors.New("down")}) {
		t.Error("transport error should not be an auth failure")
	}
}

// =============================================================================
// CONTENT TYPE PREDICATE
// =============================================================================

func TestIsJSONContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/problem+json", true},
		{"text/plain", false},
		{"text/html; charset=utf-8", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isJSONContentType(tt.contentType); got != tt.want {
			t.Errorf("isJSONContentType(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}

// =============================================================================
// TYPED ENDPOINTS
// =============================================================================

func TestClient_LoginAndMe(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			var req LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Username != "admin" || req.Password != "admin" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `"Invalid credentials"`)
				return
			}
			io.WriteString(w, `{"access_token":"tok-login","token_type":"bearer"}`)
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok-login" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			io.WriteString(w, `{"id":"u1","username":"admin","email":"admin@example.com","role":"admin"}`)
		}
	}))

	token, err := client.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-login" {
		t.Errorf("token = %q", token)
	}
	if err := sessions.SetToken(token); err != nil {
		t.Fatal(err)
	}

	profile, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if profile.Username != "admin" || profile.Role != "admin" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestClient_UpdateChatOmitsUnsetFields(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","title":"hello","model_name":"clown 1.3"}`)
	}))

	title := "hello"
	if _, err := client.UpdateChat(context.Background(), "c1", ChatUpdate{Title: &title}); err != nil {
		t.Fatalf("UpdateChat: %v", err)
	}
	if _, present := gotBody["model_name"]; present {
		t.Error("model_name should be omitted when only the title is patched")
	}
	if gotBody["title"] != "hello" {
		t.Errorf("title = %v", gotBody["title"])
	}
}

func TestClient_CreateMessageReturnsResponseOrder(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":1,"chat_id":"c1","sender_type":"user","content":"hi"},
			{"id":2,"chat_id":"c1","sender_type":"assistant","content":"hello!"}
		]`)
	}))

	msgs, err := client.CreateMessage(context.Background(), "c1", "hi")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].SenderType != model.SenderUser || msgs[1].SenderType != model.SenderAssistant {
		t.Errorf("messages out of response order: %+v", msgs)
	}
	if msgs[0].ID != "1" {
		t.Errorf("numeric message id should normalize to string, got %q", msgs[0].ID)
	}
}

func TestClient_ListMessagesRequestsLimit(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))

	if _, err := client.ListMessages(context.Background(), "c1"); err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if gotQuery != "limit=200" {
		t.Errorf("query = %q, want limit=200", gotQuery)
	}
}
