package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "go-writing-services/internal/errors"
)

type spellingBody struct {
	Lang    string `json:"lang"`
	Content string `json:"content"`
}

type spellingReply struct {
	Result      string `json:"result"`
	HasAnyError bool   `json:"hasAnyError"`
}

func TestClient_Post_Success(t *testing.T) {
	requestCount := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++

		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/check-spelling" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("api-key"); got != "secret" {
			t.Errorf("Expected api-key header 'secret', got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Expected JSON content type, got %q", got)
		}

		var body spellingBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body.Lang != "en" || body.Content != "Ths is a tst." {
			t.Errorf("Unexpected body: %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"This is a test.","hasAnyError":true}`))
	}))
	defer server.Close()

	client := New(server.URL+"/v1/", "secret")

	var out spellingReply
	err := client.Post(context.Background(), "/check-spelling", spellingBody{Lang: "en", Content: "Ths is a tst."}, &out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Result != "This is a test." || !out.HasAnyError {
		t.Errorf("Unexpected reply: %+v", out)
	}
	if requestCount != 1 {
		t.Errorf("Expected exactly 1 request, got %d", requestCount)
	}
}

func TestClient_Post_SendsEmptyAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values, ok := r.Header["Api-Key"]
		if !ok {
			t.Error("Expected api-key header to be present")
		} else if len(values) != 1 || values[0] != "" {
			t.Errorf("Expected empty api-key header, got %q", values)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, "")
	if err := client.Post(context.Background(), "/check-spelling", spellingBody{Lang: "en"}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestClient_Post_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantType  apperrors.ErrorType
		wantCalls int
	}{
		{"server error is not retried", http.StatusInternalServerError, `{"detail":"boom"}`, apperrors.ErrorTypeNetwork, 1},
		{"client error", http.StatusUnauthorized, `{"detail":"bad key"}`, apperrors.ErrorTypeNetwork, 1},
		{"malformed body", http.StatusOK, `{"result":`, apperrors.ErrorTypeProcessing, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestCount := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requestCount++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var out spellingReply
			err := New(server.URL, "").Post(context.Background(), "check-spelling", spellingBody{}, &out)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !apperrors.IsType(err, tt.wantType) {
				t.Errorf("Expected %s error, got %v", tt.wantType, err)
			}
			if requestCount != tt.wantCalls {
				t.Errorf("Expected %d request(s), got %d", tt.wantCalls, requestCount)
			}
		})
	}
}

func TestClient_Post_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := New(server.URL, "").Post(ctx, "/plagiarism-check", spellingBody{}, nil)
	if !apperrors.IsType(err, apperrors.ErrorTypeTimeout) {
		t.Errorf("Expected timeout error, got %v", err)
	}
}

func TestClient_Post_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := New(url, "").Post(context.Background(), "/check-spelling", spellingBody{}, nil)
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Errorf("Expected network error, got %v", err)
	}
	if apperrors.GetStatusCode(err) != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d", apperrors.GetStatusCode(err))
	}
}
