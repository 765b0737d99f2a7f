package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"domain-mcp/internal/domain"
	"domain-mcp/internal/handler"
	"domain-mcp/internal/usecase"
	"domain-mcp/pkg/storage"
)

var _ handler.BotHandler = (*Bot)(nil)

// actionTimeout bounds one lookup started from chat
const actionTimeout = 2 * time.Minute

// ServerController is the embedded HTTP server the bot can start and stop
type ServerController interface {
	Start() error
	Stop() error
	IsRunning() bool
	GetPort() string
}

// AccessStorage persists who may use the bot
type AccessStorage interface {
	storage.AllowedUserStorage
	storage.PendingRequestStorage
}

// Bot implements handler.BotHandler for Telegram with button-based UI
type Bot struct {
	domainUsecase usecase.DomainUsecase
	portfolio     usecase.PortfolioUsecase
	bot           *tgbotapi.BotAPI
	token         string
	admins        map[int64]bool
	access        AccessStorage
	server        ServerController
	stateManager  *StateManager
}

// NewBot creates a new Telegram bot handler. admins come from the
// environment and may approve access requests; access and server may be nil.
func NewBot(
	domainUsecase usecase.DomainUsecase,
	portfolio usecase.PortfolioUsecase,
	token string,
	admins []int64,
	access AccessStorage,
	server ServerController,
) *Bot {
	adminIDs := make(map[int64]bool)
	for _, id := range admins {
		adminIDs[id] = true
	}

	return &Bot{
		domainUsecase: domainUsecase,
		portfolio:     portfolio,
		token:         token,
		admins:        adminIDs,
		access:        access,
		server:        server,
		stateManager:  NewStateManager(),
	}
}

// Start starts the bot and blocks until updates stop
func (b *Bot) Start() error {
	bot, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	b.bot = bot
	log.Printf("[TelegramBot] Authorized on account %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil && update.Message.From != nil {
			msg := update.Message
			if !b.isAuthorized(msg.From.ID, msg.Chat.ID) {
				b.handleUnauthorized(msg)
				continue
			}
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("[Panic] handleMessage: %v", r)
					}
				}()
				b.handleMessage(msg)
			}()
		} else if update.CallbackQuery != nil {
			cb := update.CallbackQuery
			if cb.Message == nil {
				continue
			}
			if cb.Data == "request_access" {
				b.handleAccessRequest(cb)
				continue
			}
			if !b.isAuthorized(cb.From.ID, cb.Message.Chat.ID) {
				b.answerCallback(cb.ID, "⛔ Not authorized")
				continue
			}
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("[Panic] handleCallback: %v", r)
					}
				}()
				b.handleCallback(cb)
			}()
		}
	}

	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	if b.bot != nil {
		b.bot.StopReceivingUpdates()
	}
	b.stateManager.Close()
	return nil
}

// isAuthorized checks if a user may use the bot in a chat.
// With no admins configured the bot is open.
func (b *Bot) isAuthorized(userID, chatID int64) bool {
	if len(b.admins) == 0 || b.admins[userID] {
		return true
	}
	if b.access != nil {
		return b.access.IsUserAllowed(userID, chatID, 0)
	}
	return false
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.admins[userID]
}

// sendMessage sends a message to a chat
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.bot.Send(msg); err != nil {
		log.Printf("[TelegramBot] Failed to send message: %v", err)
	}
}

// sendMessageWithKeyboard sends a message with inline keyboard
func (b *Bot) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboard
	if _, err := b.bot.Send(msg); err != nil {
		log.Printf("[TelegramBot] Failed to send message with keyboard: %v", err)
	}
}

// answerCallback answers a callback query
func (b *Bot) answerCallback(callbackID string, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.bot.Request(callback); err != nil {
		log.Printf("[TelegramBot] Failed to answer callback: %v", err)
	}
}

func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("[TelegramBot] Failed to send chat action: %v", err)
	}
}

func backToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Back to Menu", "menu"),
		),
	)
}

// handleMessage handles incoming text messages
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.stateManager.ClearState(userID)
		b.handleCommand(msg)
		return
	}

	step := b.stateManager.TakeStep(userID)
	action, ok := actionForStep(step)
	if !ok {
		b.showMainMenu(chatID)
		return
	}
	b.execute(chatID, action, msg.Text)
}

// execute runs an action and replies with its result
func (b *Bot) execute(chatID int64, action Action, input string) {
	log.Printf("[TelegramBot] %s START chat=%d input=%q", action, chatID, input)
	b.sendTyping(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	reply := b.runAction(ctx, action, input)
	b.sendMessageWithKeyboard(chatID, reply, backToMenu())
}

// handleCommand handles slash commands
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	args := strings.TrimSpace(msg.CommandArguments())
	command := msg.Command()

	switch command {
	case "start", "menu":
		b.showMainMenu(chatID)
		return
	case "help":
		b.sendMessage(chatID, helpText)
		return
	case "zones":
		b.showZones(chatID)
		return
	case "portfolio":
		b.showPortfolio(chatID)
		return
	case "zone":
		b.showZone(chatID, args)
		return
	case "server":
		b.showServer(chatID, userID)
		return
	case "pending":
		b.showPending(chatID, userID)
		return
	}

	action := Action(command)
	if _, ok := actionSteps[action]; !ok {
		b.sendMessage(chatID, "Unknown command. Send /help for the list.")
		return
	}
	if args == "" && action != ActionExpired {
		b.askFor(chatID, userID, action)
		return
	}
	b.execute(chatID, action, args)
}

const helpText = "*Commands*\n\n" +
	"/whois `domain` registration record\n" +
	"/dns `domain` DNS lookup\n" +
	"/records `domain` flat record list with TTLs\n" +
	"/check `domain` availability\n" +
	"/bulk `d1 d2 ...` bulk availability\n" +
	"/expired `[keyword] [tld]` expired and auction candidates\n" +
	"/age `domain` domain age\n" +
	"/ssl `domain` certificate details\n" +
	"/zones your Cloudflare zones\n" +
	"/portfolio health of your zones\n" +
	"/zone `domain` health of one zone\n" +
	"/server HTTP server status (admins)\n" +
	"/pending access requests (admins)"

// askFor sets the conversation step and prompts for input
func (b *Bot) askFor(chatID, userID int64, action Action) {
	b.stateManager.SetStep(userID, actionSteps[action])
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel"),
		),
	)
	b.sendMessageWithKeyboard(chatID, actionPrompts[action], keyboard)
}

// handleCallback handles inline keyboard callbacks
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	data := callback.Data
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	log.Printf("[Callback] UserID: %d, Data: %s", userID, data)
	b.answerCallback(callback.ID, "")

	parts := strings.Split(data, ":")
	switch parts[0] {
	case "menu":
		b.showMainMenu(chatID)
	case "cancel":
		b.stateManager.ClearState(userID)
		b.showMainMenu(chatID)
	case "ask":
		if len(parts) > 1 {
			action := Action(parts[1])
			if _, ok := actionSteps[action]; ok {
				b.askFor(chatID, userID, action)
			}
		}
	case "zones":
		b.showZones(chatID)
	case "portfolio":
		b.showPortfolio(chatID)
	case "server":
		if len(parts) > 1 {
			b.toggleServer(chatID, userID, parts[1])
		}
	case "approve":
		// Format: approve:userID:chatID
		if len(parts) == 3 {
			b.approveRequest(chatID, userID, parts[1], parts[2])
		}
	case "deny":
		if len(parts) == 2 {
			b.denyRequest(chatID, userID, parts[1])
		}
	}
}

// showMainMenu shows the main menu
func (b *Bot) showMainMenu(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔎 WHOIS", "ask:whois"),
			tgbotapi.NewInlineKeyboardButtonData("🌐 DNS", "ask:dns"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Availability", "ask:check"),
			tgbotapi.NewInlineKeyboardButtonData("📦 Bulk Check", "ask:bulk"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⌛ Expired Domains", "ask:expired"),
			tgbotapi.NewInlineKeyboardButtonData("📋 DNS Records", "ask:records"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎂 Domain Age", "ask:age"),
			tgbotapi.NewInlineKeyboardButtonData("🔒 SSL Certificate", "ask:ssl"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 My Zones", "zones"),
			tgbotapi.NewInlineKeyboardButtonData("🩺 Portfolio Check", "portfolio"),
		),
	)

	b.sendMessageWithKeyboard(chatID, "*🏠 Main Menu*\n\nWhat would you like to look up?", keyboard)
}

// showZones lists the Cloudflare zones
func (b *Bot) showZones(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	zones, err := b.portfolio.ListZones(ctx)
	if err != nil {
		b.sendMessageWithKeyboard(chatID, errorReply(err), backToMenu())
		return
	}
	b.sendMessageWithKeyboard(chatID, formatZones(zones), backToMenu())
}

// showPortfolio checks every zone
func (b *Bot) showPortfolio(chatID int64) {
	b.sendTyping(chatID)
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	entries, err := b.portfolio.CheckPortfolio(ctx)
	if err != nil {
		b.sendMessageWithKeyboard(chatID, errorReply(err), backToMenu())
		return
	}
	b.sendMessageWithKeyboard(chatID, formatPortfolio(entries), backToMenu())
}

// showZone checks a single zone
func (b *Bot) showZone(chatID int64, name string) {
	if name == "" {
		b.sendMessage(chatID, "Usage: /zone `domain`")
		return
	}
	b.sendTyping(chatID)
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	entry, err := b.portfolio.CheckZone(ctx, name)
	if err != nil {
		b.sendMessageWithKeyboard(chatID, errorReply(err), backToMenu())
		return
	}
	b.sendMessageWithKeyboard(chatID, formatPortfolio([]domain.PortfolioEntry{*entry}), backToMenu())
}

// showServer shows the embedded HTTP server status
func (b *Bot) showServer(chatID, userID int64) {
	if !b.isAdmin(userID) {
		b.sendMessage(chatID, "⛔ Admins only.")
		return
	}
	if b.server == nil {
		b.sendMessage(chatID, "HTTP server is not embedded in this process.")
		return
	}

	status, button := "🔴 stopped", tgbotapi.NewInlineKeyboardButtonData("▶️ Start", "server:start")
	if b.server.IsRunning() {
		status, button = "🟢 running", tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "server:stop")
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Back to Menu", "menu"),
		),
	)
	b.sendMessageWithKeyboard(chatID, fmt.Sprintf("*🖥 HTTP server*\n\nStatus: %s\nPort: %s", status, code(b.server.GetPort())), keyboard)
}

func (b *Bot) toggleServer(chatID, userID int64, op string) {
	if !b.isAdmin(userID) || b.server == nil {
		return
	}

	var err error
	switch op {
	case "start":
		err = b.server.Start()
	case "stop":
		err = b.server.Stop()
	default:
		return
	}
	if err != nil {
		b.sendMessage(chatID, errorReply(err))
		return
	}
	b.showServer(chatID, userID)
}

// handleUnauthorized offers an access request when storage is configured
func (b *Bot) handleUnauthorized(msg *tgbotapi.Message) {
	if b.access == nil {
		b.sendMessage(msg.Chat.ID, "⛔ You are not authorized to use this bot.")
		return
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙋 Request access", "request_access"),
		),
	)
	b.sendMessageWithKeyboard(msg.Chat.ID, "⛔ You are not authorized to use this bot.", keyboard)
}

// handleAccessRequest records a pending request and notifies admins
func (b *Bot) handleAccessRequest(cb *tgbotapi.CallbackQuery) {
	if b.access == nil {
		b.answerCallback(cb.ID, "⛔ Not authorized")
		return
	}

	req := storage.PendingRequest{
		UserID:    cb.From.ID,
		Username:  cb.From.UserName,
		FirstName: cb.From.FirstName,
		LastName:  cb.From.LastName,
		ChatID:    cb.Message.Chat.ID,
	}
	if err := b.access.AddPendingRequest(req); err != nil {
		b.answerCallback(cb.ID, "Request already pending")
		return
	}
	b.answerCallback(cb.ID, "Request sent")

	for adminID := range b.admins {
		b.sendMessageWithKeyboard(adminID, formatPendingRequest(req), approvalKeyboard(req))
	}
}

func formatPendingRequest(req storage.PendingRequest) string {
	return fmt.Sprintf("*🙋 Access request*\n\nUser: %s %s\nUsername: %s\nID: %s\nChat: %s",
		code(req.FirstName), code(req.LastName), code(req.Username),
		code(strconv.FormatInt(req.UserID, 10)), code(strconv.FormatInt(req.ChatID, 10)))
}

func approvalKeyboard(req storage.PendingRequest) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", fmt.Sprintf("approve:%d:%d", req.UserID, req.ChatID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Deny", fmt.Sprintf("deny:%d", req.UserID)),
		),
	)
}

// showPending lists pending access requests
func (b *Bot) showPending(chatID, userID int64) {
	if !b.isAdmin(userID) || b.access == nil {
		b.sendMessage(chatID, "⛔ Admins only.")
		return
	}
	requests, err := b.access.GetPendingRequests()
	if err != nil {
		b.sendMessage(chatID, errorReply(err))
		return
	}
	if len(requests) == 0 {
		b.sendMessage(chatID, "📭 No pending requests.")
		return
	}
	for _, req := range requests {
		b.sendMessageWithKeyboard(chatID, formatPendingRequest(req), approvalKeyboard(req))
	}
}

func (b *Bot) approveRequest(chatID, adminID int64, userIDStr, targetChatStr string) {
	if !b.isAdmin(adminID) || b.access == nil {
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return
	}
	targetChat, err := strconv.ParseInt(targetChatStr, 10, 64)
	if err != nil {
		return
	}

	if err := b.access.AddAllowedUser(userID, storage.AccessScope{ChatID: targetChat}); err != nil {
		b.sendMessage(chatID, errorReply(err))
		return
	}
	if err := b.access.RemovePendingRequest(userID); err != nil {
		log.Printf("[TelegramBot] approve user=%d: %v", userID, err)
	}
	log.Printf("[TelegramBot] access approved user=%d chat=%d by=%d", userID, targetChat, adminID)
	b.sendMessage(chatID, fmt.Sprintf("✅ Approved %s", code(userIDStr)))
	b.sendMessage(targetChat, "✅ Your access request was approved. Send /start to begin.")
}

func (b *Bot) denyRequest(chatID, adminID int64, userIDStr string) {
	if !b.isAdmin(adminID) || b.access == nil {
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return
	}
	if err := b.access.RemovePendingRequest(userID); err != nil {
		b.sendMessage(chatID, errorReply(err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("❌ Denied %s", code(userIDStr)))
}
