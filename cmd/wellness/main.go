// ABOUTME: Entry point for the wellness CLI.
// ABOUTME: Invokes the root Cobra command.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeStore()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
