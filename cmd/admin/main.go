// ABOUTME: Admin CLI for the Profile Translate API
// ABOUTME: Seeds profiles and instance settings and runs one-off translations

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
