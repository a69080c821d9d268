// Package main is the entry point for the HealthTrack API server.
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
