package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"domain-mcp/internal/app"
	"domain-mcp/internal/handler/httpapi"
	"domain-mcp/pkg/config"
	"domain-mcp/pkg/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Generated API keys live next to the bot's data
	keyStorage := storage.NewJSONStorage(cfg.DataDir)

	if cfg.MCPManagementKey == "" && len(cfg.MCPAPIKeys) == 0 {
		log.Println("WARNING: no MCP_API_KEYS or MCP_MANAGEMENT_KEY configured, stored keys are the only protection")
	}

	srv := httpapi.NewServer(a.Tools, a.Domain, a.Portfolio, keyStorage, httpapi.Options{
		EnvKeys:       cfg.MCPAPIKeys,
		ManagementKey: cfg.MCPManagementKey,
		Gatherer:      a.Registry,
	})
	controller := httpapi.NewController(srv.Router(), cfg.MCPHTTPPort)

	if err := controller.Start(); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
	log.Printf("MCP HTTP server listening on :%s (POST /mcp, GET /health, GET /metrics)", controller.GetPort())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- controller.Wait() }()

	select {
	case <-sigChan:
		log.Println("Shutting down...")
		if err := controller.Stop(); err != nil {
			log.Printf("Error stopping HTTP server: %v", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	}

	log.Println("Goodbye!")
}
