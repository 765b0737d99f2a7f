package main

import (
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"domain-mcp/internal/app"
	"domain-mcp/pkg/config"
)

func main() {
	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	s := a.Tools.NewMCPServer()

	log.Printf("Starting MCP server with %d tools over stdio...", len(a.Tools.Tools()))
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
