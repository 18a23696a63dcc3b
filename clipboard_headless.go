//go:build headless

package main

import "fmt"

func init() {
	compiledFeatures = append(compiledFeatures, "clipboard:headless")
}

func copyToClipboard(text string) error {
	return fmt.Errorf("clipboard unavailable in headless mode")
}
