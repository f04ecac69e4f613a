package webhook

import (
	"context"
	"fmt"
	"strings"

	"github.com/clientline/whatsapp-messages-api/internal/commands"
	"github.com/clientline/whatsapp-messages-api/internal/services/messagesrepo"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// recentMessagesLimit caps how many rows a "my data" reply lists.
const recentMessagesLimit = 5

const (
	verifyMismatchBody = "Verification token mismatch"

	dataReplyHeader   = "📦 Here's your recent data:\n"
	noDataReply       = "No data found."
	deleteDoneReply   = "✅ Your data has been deleted."
	helpReply         = "🤖 Available Commands:\n- 'My data': View what we've saved\n- 'Delete my data': Remove your info\n- 'Help': Show this menu"
	replyTimestampFmt = "2006-01-02 15:04:05"
)

type Repository interface {
	Record(ctx context.Context, waID, name, text string) (*messagesrepo.ClientMessage, error)
	RecentByWaID(ctx context.Context, waID string, limit int) ([]messagesrepo.ClientMessage, error)
	DeleteAllByWaID(ctx context.Context, waID string) (int64, error)
}

type ReplySender interface {
	SendText(ctx context.Context, to, body string) error
}

// WebhookController handles the platform's verification handshake and its
// event deliveries.
type WebhookController struct {
	repo        Repository
	sender      ReplySender
	verifyToken string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(repo Repository, sender ReplySender, verifyToken string) *WebhookController {
	return &WebhookController{
		repo:        repo,
		sender:      sender,
		verifyToken: verifyToken,
	}
}

// Verify handles the endpoint-ownership handshake. It is stateless and safe
// to call any number of times: matching token echoes the challenge with 200,
// anything else is a 403.
func (w *WebhookController) Verify(c *fiber.Ctx) error {
	if c.Query("hub.verify_token") != w.verifyToken {
		return c.Status(fiber.StatusForbidden).SendString(verifyMismatchBody)
	}
	return c.SendString(c.Query("hub.challenge"))
}

// ReceiveEvent ingests one event delivery: extract the message, record it,
// classify it, and reply when the text was a command. The response is a 200
// acknowledgment no matter what happens internally — a non-2xx answer makes
// the platform redeliver, and redelivery cannot fix anything on this side.
func (w *WebhookController) ReceiveEvent(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var payload EventPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.Warn().Err(err).Msg("Discarding malformed webhook payload")
		return ack(c)
	}

	event, ok := payload.FirstInbound()
	if !ok {
		logger.Debug().Msg("Webhook delivery carried no text message")
		return ack(c)
	}

	text := commands.Normalize(event.Text)

	// Record first, classify second: a "my data" message legitimately shows
	// up in its own reply as the most recent row.
	if _, err := w.repo.Record(c.Context(), event.WaID, event.Name, text); err != nil {
		logger.Error().Err(err).Str("wa_id", event.WaID).Msg("Failed to record message")
		return ack(c)
	}

	cmd := commands.Classify(text)
	reply, err := w.executeCommand(c.Context(), cmd, event.WaID)
	if err != nil {
		logger.Error().Err(err).Str("wa_id", event.WaID).Str("command", cmd.String()).Msg("Failed to execute command")
		return ack(c)
	}
	if reply == "" {
		return ack(c)
	}

	if err := w.sender.SendText(c.Context(), event.WaID, reply); err != nil {
		// The platform already considers the inbound delivery complete, so a
		// failed reply is logged and swallowed.
		logger.Error().Err(err).Str("wa_id", event.WaID).Str("command", cmd.String()).Msg("Failed to send reply")
	}
	return ack(c)
}

// executeCommand runs the store side of a command and returns the reply
// text. An empty reply means nothing should be sent.
func (w *WebhookController) executeCommand(ctx context.Context, cmd commands.Command, waID string) (string, error) {
	switch cmd {
	case commands.ViewData:
		recent, err := w.repo.RecentByWaID(ctx, waID, recentMessagesLimit)
		if err != nil {
			return "", fmt.Errorf("failed to query recent messages: %w", err)
		}
		return dataReplyHeader + formatRecent(recent), nil
	case commands.DeleteData:
		// The confirmation is the same whether anything was deleted or not.
		if _, err := w.repo.DeleteAllByWaID(ctx, waID); err != nil {
			return "", fmt.Errorf("failed to delete messages: %w", err)
		}
		return deleteDoneReply, nil
	case commands.Help:
		return helpReply, nil
	default:
		return "", nil
	}
}

func formatRecent(recent []messagesrepo.ClientMessage) string {
	if len(recent) == 0 {
		return noDataReply
	}
	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		lines = append(lines, fmt.Sprintf("- %s (%s)", m.Message, m.CreatedAt.UTC().Format(replyTimestampFmt)))
	}
	return strings.Join(lines, "\n")
}

func ack(c *fiber.Ctx) error {
	return c.JSON(AckResponse{Status: "received"})
}
