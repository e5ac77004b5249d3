// Package main is the entry point for shardshell.
package main

import (
	"context"
	"log"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Printf("shardshell: %v", err)
		os.Exit(1)
	}
}
