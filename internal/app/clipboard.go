package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardWriteAll = clipboard.WriteAll

func copyTextToClipboard(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return humanizeClipboardError(err)
	}
	return nil
}

func humanizeClipboardError(err error) error {
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" && missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)")
	}
	return err
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
