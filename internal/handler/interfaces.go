package handler

// BotHandler defines the interface for chat frontends.
// Each implementation runs its own update loop until Stop is called.
type BotHandler interface {
	Start() error
	Stop() error
}
