package deepgram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestSpeakReturnsAudioBytes(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	var gotBody speakRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery

		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	audio, err := client.Speak(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("speak: %v", err)
	}

	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio payload: %q", audio)
	}
	if gotAuth != "Token secret" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotPath != "/v1/speak" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotQuery != "model="+DefaultModel {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if gotBody.Text != "hello there" {
		t.Fatalf("unexpected request text: %q", gotBody.Text)
	}
}

func TestSpeakSurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// 400 is not in the retry set, so the error surfaces immediately.
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"err_msg":"text is too long"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Speak(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "Deepgram API error") || !strings.Contains(err.Error(), "text is too long") {
		t.Fatalf("response body must become the diagnostic: %v", err)
	}
}

func TestSpeakUsesConfiguredModel(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, Model: "aura-orion-en"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Speak(context.Background(), "hi"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if gotQuery != "model=aura-orion-en" {
		t.Fatalf("configured model not used: %q", gotQuery)
	}
}
