package config

import (
	"fmt"

	"github.com/clientline/whatsapp-messages-api/internal/db"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings contains the application config
type Settings struct {
	Port        int    `envconfig:"PORT" default:"5000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"whatsapp-messages-api"`

	// VerifyToken is the shared secret echoed back during the platform's
	// endpoint-ownership handshake.
	VerifyToken string `envconfig:"VERIFY_TOKEN" validate:"required"`
	// AccessToken authenticates outbound sends against the Graph API.
	AccessToken string `envconfig:"ACCESS_TOKEN" validate:"required"`
	// PhoneNumberID identifies the business number replies are sent from.
	PhoneNumberID   string `envconfig:"PHONE_NUMBER_ID" validate:"required"`
	GraphAPIBaseURL string `envconfig:"GRAPH_API_BASE_URL" default:"https://graph.facebook.com/v18.0"`

	DB db.Settings
}

// Load reads settings from the environment, optionally seeded from envFile.
// A missing env file is not an error; missing required variables are.
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	var settings Settings
	if err := envconfig.Process("", &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := validator.New().Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return settings, nil
}
