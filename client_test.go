package hibp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_EmptyUserAgent(t *testing.T) {
	_, err := New("key", WithUserAgent(""))
	if !errors.Is(err, ErrMissingUserAgent) {
		t.Errorf("New() error = %v, want ErrMissingUserAgent", err)
	}
}

func TestNew_EmptyAPIKeyAllowed(t *testing.T) {
	// The Pwned Passwords endpoints need no key.
	client, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}
	if client == nil {
		t.Fatal("New(\"\") returned nil client")
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotUserAgent, gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAPIKey = r.Header.Get("hibp-api-key")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := New("secret-key",
		WithBaseURL(srv.URL),
		WithUserAgent("breach-audit-tool/1.0"),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Authenticated endpoint: key and user agent both attached.
	if _, err := client.GetAccountPastes(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("GetAccountPastes() failed: %v", err)
	}
	if gotUserAgent != "breach-audit-tool/1.0" {
		t.Errorf("User-Agent = %q, want breach-audit-tool/1.0", gotUserAgent)
	}
	if gotAPIKey != "secret-key" {
		t.Errorf("hibp-api-key = %q, want secret-key", gotAPIKey)
	}

	// Public endpoint: key must not be sent.
	if _, err := client.GetAllBreaches(context.Background()); err != nil {
		t.Fatalf("GetAllBreaches() failed: %v", err)
	}
	if gotAPIKey != "" {
		t.Errorf("hibp-api-key = %q on public endpoint, want empty", gotAPIKey)
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := New("",
		WithBaseURL(srv.URL),
		WithPasswordsBaseURL(srv.URL),
		WithTimeout(20*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = client.SearchRange(context.Background(), "ABCDE")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("SearchRange() error = %T (%v), want *NetworkError", err, err)
	}
	if !netErr.Timeout {
		t.Error("timeout failure should carry the Timeout flag")
	}
}

func TestClient_RateLimited(t *testing.T) {
	t.Run("with retry-after header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("retry-after", "5")
			w.WriteHeader(http.StatusTooManyRequests)
		}))

		_, err := client.GetAccountPastes(context.Background(), "test@example.com")
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("error = %v, want ErrRateLimited", err)
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %T, want *APIError", err)
		}
		if apiErr.RetryAfter == nil || *apiErr.RetryAfter != 5*time.Second {
			t.Errorf("RetryAfter = %v, want 5s", apiErr.RetryAfter)
		}
	})

	t.Run("without retry-after header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))

		_, err := client.GetAccountPastes(context.Background(), "test@example.com")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %T, want *APIError", err)
		}
		if apiErr.RetryAfter != nil {
			t.Errorf("RetryAfter = %v, want nil when the server sends no hint", apiErr.RetryAfter)
		}
	})
}
