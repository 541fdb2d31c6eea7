package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"quill/internal/types"
)

const version = "dev"

func printNotes(output io.Writer, notes []*types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tPIN\tARCHIVED\tUPDATED\tTITLE")
	for _, note := range notes {
		pin := "-"
		if note.Pinned.Bool() {
			pin = "*"
		}
		archived := "-"
		if note.Archived.Bool() {
			archived = "yes"
		}
		updated := "-"
		if !note.UpdatedAt.IsZero() {
			updated = note.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", note.ID, pin, archived, updated, title)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
