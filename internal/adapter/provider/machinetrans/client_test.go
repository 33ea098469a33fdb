package machinetrans

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/manesha63/electNepal-sub000/internal/translation"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Translate_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Q != "Namaste" || req.Source != "en" || req.Target != "ne" {
			t.Errorf("request = %+v", req)
		}
		if req.APIKey != "secret" {
			t.Errorf("api key = %q, want secret", req.APIKey)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "नमस्ते"})
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "secret", 5*time.Second, newTestLogger())

	got, err := c.Translate(context.Background(), "Namaste", "en", "ne")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "नमस्ते" {
		t.Errorf("got %q, want नमस्ते", got)
	}
}

func TestClient_Translate_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "ठीक छ"})
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "", 5*time.Second, newTestLogger())

	got, err := c.Translate(context.Background(), "okay", "en", "ne")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "ठीक छ" {
		t.Errorf("got %q, want ठीक छ", got)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestClient_Translate_PersistentServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "", 5*time.Second, newTestLogger())

	_, err := c.Translate(context.Background(), "hello", "en", "ne")
	if err == nil {
		t.Fatal("expected error")
	}
	if !translation.IsTransient(err) {
		t.Errorf("5xx should be transient, got %v", err)
	}
}

func TestClient_Translate_RateLimitIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "", 5*time.Second, newTestLogger())

	_, err := c.Translate(context.Background(), "hello", "en", "ne")
	if !translation.IsTransient(err) {
		t.Errorf("429 should be transient, got %v", err)
	}
}

func TestClient_Translate_BadRequestIsPermanent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"unsupported language pair"}`)
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "", 5*time.Second, newTestLogger())

	_, err := c.Translate(context.Background(), "hello", "en", "xx")
	if err == nil {
		t.Fatal("expected error")
	}
	if translation.IsTransient(err) {
		t.Errorf("4xx should be permanent, got %v", err)
	}
}

func TestClient_Translate_NetworkErrorIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so every dial fails

	c := New("libretranslate", srv.URL, "", time.Second, newTestLogger())

	_, err := c.Translate(context.Background(), "hello", "en", "ne")
	if !translation.IsTransient(err) {
		t.Errorf("network error should be transient, got %v", err)
	}
}

func TestClient_Translate_EngineErrorField(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translateResponse{Error: "quota exceeded"})
	}))
	defer srv.Close()

	c := New("libretranslate", srv.URL, "", 5*time.Second, newTestLogger())

	_, err := c.Translate(context.Background(), "hello", "en", "ne")
	if err == nil {
		t.Fatal("expected error")
	}
	if translation.IsTransient(err) {
		t.Errorf("engine-reported errors are permanent, got %v", err)
	}
}
