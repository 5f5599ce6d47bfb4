package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch_ReturnsBodyAndSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotUpgrade string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotUpgrade = r.Header.Get("Upgrade-Insecure-Requests")
		w.Write([]byte("<html><body>jobs</body></html>"))
	}))
	defer srv.Close()

	body, err := NewDirectFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "jobs") {
		t.Fatalf("unexpected body: %q", body)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("expected browser user agent, got %q", gotUA)
	}
	if gotUpgrade != "1" {
		t.Errorf("expected Upgrade-Insecure-Requests header, got %q", gotUpgrade)
	}
}

func TestFetch_ServerErrorDoesNotEscalate(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "failed to fetch page") {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected a single direct attempt, got %d", hits)
	}
}

func TestFetch_BlockedStatusWithoutFallbackIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewDirectFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for blocked response")
	}
	if !strings.Contains(err.Error(), "failed to fetch page") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetch_RedirectLoopStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/again", http.StatusFound)
	}))
	defer srv.Close()

	_, err := NewDirectFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for redirect loop")
	}
}

func TestFetch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unreachable"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDirectFetcher().Fetch(ctx, srv.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestBlockedStatus(t *testing.T) {
	cases := map[int]bool{
		http.StatusForbidden:           true,
		http.StatusTooManyRequests:     true,
		http.StatusOK:                  false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
	}
	for status, want := range cases {
		if got := blockedStatus(status); got != want {
			t.Errorf("blockedStatus(%d) = %v, want %v", status, got, want)
		}
	}
}
