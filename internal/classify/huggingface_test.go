package classify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHuggingFaceClient_Classify(t *testing.T) {
	t.Run("returns top label", func(t *testing.T) {
		var gotReq zeroShotRequest
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("request method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/models/valhalla/distilbart-mnli-12-3" {
				t.Errorf("request path = %s, want /models/valhalla/distilbart-mnli-12-3", r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(zeroShotResponse{
				Labels: []string{"אוכל", "תחבורה"},
				Scores: []float64{0.92, 0.08},
			})
		}))
		defer server.Close()

		client := NewHuggingFaceClient(Config{BaseURL: server.URL, Token: "secret"})

		got, err := client.Classify(context.Background(), "קפה", []string{"אוכל", "תחבורה"})
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if got != "אוכל" {
			t.Errorf("Classify() = %q, want אוכל", got)
		}
		if gotReq.Inputs != "קפה" {
			t.Errorf("request inputs = %q, want קפה", gotReq.Inputs)
		}
		if len(gotReq.Parameters.CandidateLabels) != 2 {
			t.Errorf("candidate labels = %v, want 2 labels", gotReq.Parameters.CandidateLabels)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("Authorization header = %q, want Bearer secret", gotAuth)
		}
	})

	t.Run("no auth header without token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("Authorization header = %q, want empty", got)
			}
			json.NewEncoder(w).Encode(zeroShotResponse{Labels: []string{"אוכל"}})
		}))
		defer server.Close()

		client := NewHuggingFaceClient(Config{BaseURL: server.URL})
		if _, err := client.Classify(context.Background(), "קפה", []string{"אוכל"}); err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
	})

	t.Run("empty candidate set", func(t *testing.T) {
		client := NewHuggingFaceClient(Config{BaseURL: "http://unused"})

		_, err := client.Classify(context.Background(), "קפה", nil)
		if !errors.Is(err, ErrNoLabels) {
			t.Errorf("Classify() error = %v, want ErrNoLabels", err)
		}
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"model is loading"}`, http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewHuggingFaceClient(Config{BaseURL: server.URL})

		_, err := client.Classify(context.Background(), "קפה", []string{"אוכל"})
		if err == nil {
			t.Fatal("Classify() error = nil, want inference API error")
		}
	})

	t.Run("empty labels in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(zeroShotResponse{})
		}))
		defer server.Close()

		client := NewHuggingFaceClient(Config{BaseURL: server.URL})

		_, err := client.Classify(context.Background(), "קפה", []string{"אוכל"})
		if err == nil {
			t.Fatal("Classify() error = nil, want error for empty label list")
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		client := NewHuggingFaceClient(Config{BaseURL: server.URL})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Classify(ctx, "קפה", []string{"אוכל"})
		if err == nil {
			t.Fatal("Classify() error = nil, want context error")
		}
	})
}

func TestNewHuggingFaceClient_Defaults(t *testing.T) {
	client := NewHuggingFaceClient(Config{})

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.model != DefaultModel {
		t.Errorf("model = %q, want %q", client.model, DefaultModel)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", client.httpClient.Timeout)
	}
}
