package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/internal/types"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		token:   "token",
		http: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

func TestClientListNotes(t *testing.T) {
	var seenAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notes":[{"id":"note_1","title":"Taxes","content":"file","pinned":1,"archived":0}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes error: %v", err)
	}
	if seenAuth != "Bearer token" {
		t.Fatalf("unexpected auth header: %q", seenAuth)
	}
	if len(notes) != 1 || notes[0].ID != "note_1" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if !notes[0].Pinned.Bool() || notes[0].Archived.Bool() {
		t.Fatalf("flags not decoded from 0/1: %+v", notes[0])
	}
}

func TestClientUpdateNoteSendsIntegerFlags(t *testing.T) {
	var seenBody string
	var seenMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		seenBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"note_1","content":"file","pinned":0,"archived":0}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	note, err := c.UpdateNote(context.Background(), "note_1", types.NotePatch{Pinned: types.FlagOf(false)})
	if err != nil {
		t.Fatalf("UpdateNote error: %v", err)
	}
	if seenMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", seenMethod)
	}
	if seenBody != `{"pinned":0}` {
		t.Fatalf("unexpected patch body: %s", seenBody)
	}
	if note.Pinned.Bool() {
		t.Fatalf("expected unpinned note")
	}
}

func TestClientDeleteNoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"note not found"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.DeleteNote(context.Background(), "note_missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(server.URL)
	if _, err := c.ListNotes(context.Background()); err == nil {
		t.Fatalf("expected network error for closed server")
	}
	if err := c.DeleteNote(context.Background(), "note_1"); err == nil {
		t.Fatalf("expected network error for closed server")
	} else if IsNotFound(err) {
		t.Fatalf("network error must not read as not-found: %v", err)
	}
}
