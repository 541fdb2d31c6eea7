package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	quillclient "quill/internal/client"
	"quill/internal/types"
)

type fakeCommandClient struct {
	ensureDaemonCalls int
	notesResp         []*types.Note
	notesErr          error
	shutdownCalls     int
	runUICalls        int
	runUIVersion      string
}

func fixedFactory(fake *fakeCommandClient) clientFactory {
	return func() (commandClient, error) {
		return fake, nil
	}
}

func (f *fakeCommandClient) EnsureDaemon(ctx context.Context) error {
	f.ensureDaemonCalls++
	return nil
}

func (f *fakeCommandClient) EnsureDaemonVersion(ctx context.Context, expectedVersion string, restart bool) error {
	f.ensureDaemonCalls++
	return nil
}

func (f *fakeCommandClient) ListNotes(ctx context.Context) ([]*types.Note, error) {
	if f.notesErr != nil {
		return nil, f.notesErr
	}
	return f.notesResp, nil
}

func (f *fakeCommandClient) ShutdownDaemon(ctx context.Context) error {
	f.shutdownCalls++
	return nil
}

func (f *fakeCommandClient) Health(ctx context.Context) (*quillclient.HealthResponse, error) {
	return &quillclient.HealthResponse{OK: true}, nil
}

func (f *fakeCommandClient) RunUI(version string) error {
	f.runUICalls++
	f.runUIVersion = version
	return nil
}

func TestDaemonCommandKillFlag(t *testing.T) {
	var calls []string
	cmd := NewDaemonCommand(
		&bytes.Buffer{},
		func(background bool) error {
			calls = append(calls, "run")
			if background {
				calls = append(calls, "background")
			}
			return nil
		},
		func() error {
			calls = append(calls, "kill")
			return nil
		},
	)

	if err := cmd.Run([]string{"--kill"}); err != nil {
		t.Fatalf("expected kill run to succeed, got err=%v", err)
	}
	if strings.Join(calls, ",") != "kill" {
		t.Fatalf("unexpected call order: %v", calls)
	}
}

func TestDaemonCommandForceKillsThenRuns(t *testing.T) {
	var calls []string
	cmd := NewDaemonCommand(
		&bytes.Buffer{},
		func(background bool) error {
			calls = append(calls, "run")
			return nil
		},
		func() error {
			calls = append(calls, "kill")
			return nil
		},
	)

	if err := cmd.Run([]string{"--force"}); err != nil {
		t.Fatalf("expected force run to succeed, got err=%v", err)
	}
	if strings.Join(calls, ",") != "kill,run" {
		t.Fatalf("unexpected call order: %v", calls)
	}
}

func TestLSCommandPrintsPinnedFirst(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{
		notesResp: []*types.Note{
			{ID: "note_1", Title: "Groceries", Content: "milk"},
			{ID: "note_2", Title: "Taxes", Content: "file", Pinned: true},
			{ID: "note_3", Title: "Old", Content: "gone", Archived: true},
		},
	}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected ls to succeed, got err=%v", err)
	}
	if fake.ensureDaemonCalls != 1 {
		t.Fatalf("expected ensure daemon once, got %d", fake.ensureDaemonCalls)
	}
	out := stdout.String()
	taxesIdx := strings.Index(out, "Taxes")
	groceriesIdx := strings.Index(out, "Groceries")
	if taxesIdx == -1 || groceriesIdx == -1 || taxesIdx > groceriesIdx {
		t.Fatalf("expected pinned note first, got:\n%s", out)
	}
	if strings.Contains(out, "note_3") {
		t.Fatalf("archived notes must be hidden by default, got:\n%s", out)
	}
}

func TestLSCommandAllIncludesArchived(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{
		notesResp: []*types.Note{
			{ID: "note_1", Title: "Old", Content: "gone", Archived: true},
		},
	}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"--all"}); err != nil {
		t.Fatalf("expected ls --all to succeed, got err=%v", err)
	}
	if !strings.Contains(stdout.String(), "note_1") {
		t.Fatalf("expected archived note in output, got:\n%s", stdout.String())
	}
}

func TestLSCommandQueryFiltersTitles(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{
		notesResp: []*types.Note{
			{ID: "note_1", Title: "Groceries", Content: "milk"},
			{ID: "note_2", Title: "Taxes", Content: "file"},
		},
	}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"--query", "TAX"}); err != nil {
		t.Fatalf("expected ls --query to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "Taxes") || strings.Contains(out, "Groceries") {
		t.Fatalf("expected only matching notes, got:\n%s", out)
	}
}

func TestUICommandEnsuresDaemonAndRuns(t *testing.T) {
	fake := &fakeCommandClient{}
	cmd := NewUICommand(&bytes.Buffer{}, fixedFactory(fake), nil, "v1")

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected ui to succeed, got err=%v", err)
	}
	if fake.ensureDaemonCalls != 1 || fake.runUICalls != 1 {
		t.Fatalf("expected ensure+run once, got %d/%d", fake.ensureDaemonCalls, fake.runUICalls)
	}
	if fake.runUIVersion != "v1" {
		t.Fatalf("expected version passed through, got %q", fake.runUIVersion)
	}
}
