package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// shutdownTimeout bounds a graceful stop
const shutdownTimeout = 10 * time.Second

// Controller starts and stops the HTTP server at runtime.
// The Telegram bot drives it through its settings menu.
type Controller struct {
	handler http.Handler
	server  *http.Server
	port    string
	running bool
	errCh   chan error
	mu      sync.RWMutex
}

// NewController creates a controller serving handler on port
func NewController(handler http.Handler, port string) *Controller {
	return &Controller{
		handler: handler,
		port:    port,
	}
}

// Start binds the port and serves in the background
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", ":"+c.port)
	if err != nil {
		return fmt.Errorf("failed to listen on :%s: %w", c.port, err)
	}

	c.server = &http.Server{
		Handler:           c.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	c.errCh = make(chan error, 1)
	c.running = true

	srv, errCh, port := c.server, c.errCh, c.port
	go func() {
		log.Printf("[HTTP Server] Starting on :%s", port)
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			log.Printf("[HTTP Server] Server error: %v", err)
		}
		errCh <- err
	}()

	return nil
}

// Stop shuts the server down gracefully
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return fmt.Errorf("server is not running")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := c.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	c.running = false
	log.Println("[HTTP Server] Server stopped")
	return nil
}

// Wait blocks until the running server exits and returns its error
func (c *Controller) Wait() error {
	c.mu.RLock()
	errCh := c.errCh
	c.mu.RUnlock()
	if errCh == nil {
		return fmt.Errorf("server was never started")
	}
	return <-errCh
}

// IsRunning returns whether the server is running
func (c *Controller) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// GetPort returns the current port
func (c *Controller) GetPort() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.port
}

// SetPort sets the port (only when server is stopped)
func (c *Controller) SetPort(port string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return fmt.Errorf("cannot change port while server is running")
	}
	c.port = port
	return nil
}
