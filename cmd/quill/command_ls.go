package main

import (
	"context"
	"flag"
	"io"
	"strings"

	"quill/internal/app"
)

type LSCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewLSCommand(stdout, stderr io.Writer, newClient clientFactory) *LSCommand {
	return &LSCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	all := fs.Bool("all", false, "include archived notes")
	query := fs.String("query", "", "filter titles (case-insensitive substring)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	if err := client.EnsureDaemon(ctx); err != nil {
		return err
	}
	notes, err := client.ListNotes(ctx)
	if err != nil {
		return err
	}

	// Same ordering as the UI: pinned first, then daemon order.
	notes = app.SortNotes(notes)
	if !*all || *query != "" {
		q := strings.ToLower(strings.TrimSpace(*query))
		filtered := notes[:0]
		for _, note := range notes {
			if !*all && note.Archived.Bool() {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(note.Title), q) {
				continue
			}
			filtered = append(filtered, note)
		}
		notes = filtered
	}

	printNotes(c.stdout, notes)
	return nil
}
