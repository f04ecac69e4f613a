// Package app assembles the fiber application from its parts.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/clientline/whatsapp-messages-api/internal/config"
	"github.com/clientline/whatsapp-messages-api/internal/controllers/webhook"
	"github.com/clientline/whatsapp-messages-api/internal/db"
	"github.com/clientline/whatsapp-messages-api/internal/services/messagesrepo"
	"github.com/clientline/whatsapp-messages-api/internal/services/whatsappsender"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"
)

// CreateServer connects the store, builds the sender and returns the wired
// fiber app.
func CreateServer(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	conn, err := db.NewConnection(ctx, settings.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := messagesrepo.NewRepository(conn)
	sender := whatsappsender.New(nil, settings.GraphAPIBaseURL, settings.PhoneNumberID, settings.AccessToken)

	return CreateFiberApp(logger, repo, sender, settings), nil
}

// CreateFiberApp sets up the routes and middleware.
func CreateFiberApp(logger zerolog.Logger, repo webhook.Repository, sender webhook.ReplySender, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting WhatsApp Messages API...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(logger.WithContext(c.UserContext()))
		return c.Next()
	})

	webhookController := webhook.NewWebhookController(repo, sender, settings.VerifyToken)

	app.Get("/", homePage)
	app.Get("/privacy-policy", privacyPolicyPage)
	app.Get("/terms-of-service", termsOfServicePage)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Get("/webhook", webhookController.Verify)
	app.Post("/webhook", webhookController.ReceiveEvent)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Int("code", code).Msg("Request failed")
	return c.Status(code).JSON(fiber.Map{"error": utils.StatusMessage(code)})
}
