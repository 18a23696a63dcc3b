//go:build !headless

// clipboard_host.go - System clipboard export of listings

package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func init() {
	compiledFeatures = append(compiledFeatures, "clipboard:system")
}

// copyToClipboard places text on the system clipboard. Init runs once per
// process and its failure is returned on every call.
func copyToClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
