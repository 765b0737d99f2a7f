package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"domain-mcp/internal/app"
	"domain-mcp/internal/handler"
	"domain-mcp/internal/handler/httpapi"
	"domain-mcp/internal/handler/telegram"
	"domain-mcp/pkg/config"
	"domain-mcp/pkg/storage"
)

// persistentController remembers whether the embedded server should run
type persistentController struct {
	*httpapi.Controller
	settings storage.MCPHTTPConfigStorage
}

func (c *persistentController) Start() error {
	if err := c.Controller.Start(); err != nil {
		return err
	}
	if err := c.settings.SetMCPHTTPEnabled(true); err != nil {
		log.Printf("Warning: failed to save MCP HTTP state: %v", err)
	}
	return nil
}

func (c *persistentController) Stop() error {
	if err := c.Controller.Stop(); err != nil {
		return err
	}
	if err := c.settings.SetMCPHTTPEnabled(false); err != nil {
		log.Printf("Warning: failed to save MCP HTTP state: %v", err)
	}
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize storage
	store := storage.NewJSONStorage(cfg.DataDir)
	if _, err := store.Load(); err != nil {
		log.Fatalf("Failed to load storage: %v", err)
	}

	a, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	port := cfg.MCPHTTPPort
	if port == storage.DefaultMCPHTTPPort {
		if stored, err := store.GetMCPHTTPPort(); err == nil {
			port = stored
		}
	}

	// Embedded MCP HTTP server
	srv := httpapi.NewServer(a.Tools, a.Domain, a.Portfolio, store, httpapi.Options{
		EnvKeys:       cfg.MCPAPIKeys,
		ManagementKey: cfg.MCPManagementKey,
		Gatherer:      a.Registry,
	})
	controller := &persistentController{
		Controller: httpapi.NewController(srv.Router(), port),
		settings:   store,
	}

	var botHandler handler.BotHandler = telegram.NewBot(a.Domain, a.Portfolio, cfg.TelegramBotToken, cfg.AllowedUsers, store, controller)

	// Start bot in a goroutine
	go func() {
		log.Println("Starting Telegram bot...")
		if err := botHandler.Start(); err != nil {
			log.Fatalf("Bot error: %v", err)
		}
	}()

	if enabled, err := store.GetMCPHTTPEnabled(); err != nil {
		log.Printf("Warning: failed to read MCP HTTP state: %v", err)
	} else if enabled {
		if err := controller.Controller.Start(); err != nil {
			log.Printf("[MCP HTTP] Failed to start: %v", err)
		}
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Println("Bot is running. Press Ctrl+C to stop.")
	<-sigChan

	log.Println("Shutting down...")

	if controller.IsRunning() {
		if err := controller.Controller.Stop(); err != nil {
			log.Printf("Error stopping MCP HTTP server: %v", err)
		}
	}
	if err := botHandler.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Goodbye!")
}
