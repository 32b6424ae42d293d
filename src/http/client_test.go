package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRealHTTPClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "loot-scout-test/0.0" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(200)
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := NewRealHTTPClient(http.DefaultTransport, "loot-scout-test/0.0")
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "<html></html>" {
		t.Errorf("Body = %q", resp.Body)
	}
	if resp.Headers["Content-Type"] != "text/html" {
		t.Errorf("Content-Type header = %q", resp.Headers["Content-Type"])
	}
}

func TestRealHTTPClientGetInvalidURL(t *testing.T) {
	client := NewRealHTTPClient(http.DefaultTransport, "loot-scout-test/0.0")
	if _, err := client.Get(context.Background(), "://not-a-url"); err == nil {
		t.Error("expected an error for an invalid URL")
	}
}

func TestMockHTTPClient(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.SetHTMLResponse("https://example.com/wiki/Thing", "<html>thing</html>")
	mock.SetError("https://example.com/broken", errors.New("boom"))

	resp, err := mock.Get(context.Background(), "https://example.com/wiki/Thing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || string(resp.Body) != "<html>thing</html>" {
		t.Errorf("unexpected response: %d %q", resp.StatusCode, resp.Body)
	}

	if _, err := mock.Get(context.Background(), "https://example.com/broken"); err == nil {
		t.Error("expected the configured error")
	}

	if _, err := mock.Get(context.Background(), "https://example.com/unknown"); err == nil {
		t.Error("expected an error for an unconfigured URL")
	}

	calls := mock.GetCalls()
	if len(calls) != 3 {
		t.Errorf("recorded %d calls, want 3", len(calls))
	}
}
