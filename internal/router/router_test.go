package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"virtuzen-backend/internal/gateway"
	"virtuzen-backend/internal/handlers"
)

type echoBackend struct{}

func (echoBackend) Generate(ctx context.Context, req gateway.Request) (string, error) {
	return "echo: " + req.Prompt, nil
}

func newTestRouter(maxBody int64) http.Handler {
	gw := gateway.New(echoBackend{}, nil, false)
	return New(
		handlers.NewChatHandler(gw, gateway.NewSession(), gateway.ChatConfig("")),
		handlers.NewTutorHandler(gw, gateway.TutorConfig("")),
		nil,
		[]string{"*"},
		maxBody,
	)
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(1 << 20)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"chat", http.MethodPost, "/api/chat", `{"message":"Hello"}`, http.StatusOK},
		{"tutor", http.MethodPost, "/api/chat2", `{"message":"Explain gravity"}`, http.StatusOK},
		{"chat empty", http.MethodPost, "/api/chat", `{"message":" "}`, http.StatusBadRequest},
		{"chat via GET", http.MethodGet, "/api/chat", "", http.StatusMethodNotAllowed},
		{"ws disabled without redis", http.MethodGet, "/api/ws", "", http.StatusNotFound},
		{"unknown", http.MethodGet, "/health", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("Expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Error("Expected X-Request-ID on every response")
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(1 << 20)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard allow-origin, got %q", got)
	}
}

func TestRouter_OversizedBodyRejected(t *testing.T) {
	r := newTestRouter(64)

	body := `{"message":"` + strings.Repeat("a", 256) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat2", strings.NewReader(body))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "Invalid request body" {
		t.Errorf("Unexpected error %q", resp["error"])
	}
}
