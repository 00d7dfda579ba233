package roadmap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anshpatel080/kanban/internal/source"
)

const samplePayload = `{
	"features": [
		{
			"id": "f1",
			"name": "Feature one",
			"startAt": "2026-01-05",
			"endAt": "2026-02-20",
			"statusId": "s1",
			"owner": {"id": "u1", "name": "Dana", "image": "https://img/u1"},
			"initiative": {"id": "in1", "name": "Q1"},
			"release": {"id": "r1", "name": "v1.0"}
		}
	],
	"statuses": [
		{"id": "s1", "name": "Planned", "color": "#5B9BD5"}
	]
}`

func TestFetchPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/roadmap" {
			t.Errorf("path = %s, want /api/roadmap", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "tok")
	payload, err := c.FetchPayload(context.Background())
	if err != nil {
		t.Fatalf("FetchPayload: %v", err)
	}

	if len(payload.Statuses) != 1 || payload.Statuses[0].ID != "s1" {
		t.Errorf("statuses = %+v", payload.Statuses)
	}
	if len(payload.Features) != 1 {
		t.Fatalf("features = %+v", payload.Features)
	}
	f := payload.Features[0]
	if f.StatusID != "s1" || f.Owner.Name != "Dana" || f.Release.Name != "v1.0" {
		t.Errorf("feature decoded wrong: %+v", f)
	}
}

func TestFetchPayloadSkipsAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		w.Write([]byte(`{"features": [], "statuses": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "")
	if _, err := c.FetchPayload(context.Background()); err != nil {
		t.Fatalf("FetchPayload: %v", err)
	}
}

func TestFetchPayloadUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "expired")
	_, err := c.FetchPayload(context.Background())
	if err == nil {
		t.Fatal("expected an error on 401")
	}
	if !source.IsAuthError(err) {
		t.Errorf("err = %v, want an AuthError", err)
	}
}

func TestFetchPayloadRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"features": [], "statuses": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "")
	if _, err := c.FetchPayload(context.Background()); err != nil {
		t.Fatalf("FetchPayload: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestFetchPayloadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "")
	if _, err := c.FetchPayload(context.Background()); err == nil {
		t.Fatal("expected an error on 500")
	}
}

func TestFetchPayloadMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/api/roadmap", "")
	if _, err := c.FetchPayload(context.Background()); err == nil {
		t.Fatal("expected an error on malformed JSON")
	}
}
