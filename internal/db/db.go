// Package db holds the Postgres connection settings and pooled connection
// setup shared by the service and its migration runner.
package db

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq" // postgres driver
	"github.com/rs/zerolog"
)

// SchemaName is the schema all service tables live in.
const SchemaName = "whatsapp_messages_api"

const (
	pingInterval    = 3 * time.Second
	maxPingAttempts = 10
)

// Settings contains the Postgres connection configuration.
type Settings struct {
	Host               string `envconfig:"DB_HOST" validate:"required"`
	Port               string `envconfig:"DB_PORT" default:"5432"`
	User               string `envconfig:"DB_USER" validate:"required"`
	Password           string `envconfig:"DB_PASSWORD" validate:"required"`
	Name               string `envconfig:"DB_NAME" validate:"required"`
	SSLMode            string `envconfig:"DB_SSL_MODE" default:"require"`
	MaxOpenConnections int    `envconfig:"DB_MAX_OPEN_CONNECTIONS" default:"10"`
	MaxIdleConnections int    `envconfig:"DB_MAX_IDLE_CONNECTIONS" default:"5"`
}

// BuildConnectionString assembles a lib/pq connection URL. When
// withSearchPath is set, unqualified table names resolve to the service
// schema.
func (s Settings) BuildConnectionString(withSearchPath bool) string {
	query := url.Values{}
	query.Set("sslmode", s.SSLMode)
	if withSearchPath {
		query.Set("search_path", SchemaName)
	}
	connURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     s.Host + ":" + s.Port,
		Path:     s.Name,
		RawQuery: query.Encode(),
	}
	return connURL.String()
}

// NewConnection opens a pooled connection and waits for the database to
// answer pings before returning. Each store operation acquires and releases
// its own connection from the pool, so nothing is held across requests.
func NewConnection(ctx context.Context, settings Settings, logger zerolog.Logger) (*sql.DB, error) {
	conn, err := sql.Open("postgres", settings.BuildConnectionString(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db connection")
	}
	conn.SetMaxOpenConns(settings.MaxOpenConnections)
	conn.SetMaxIdleConns(settings.MaxIdleConnections)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	for attempt := 1; ; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			return conn, nil
		}
		if attempt >= maxPingAttempts {
			break
		}
		logger.Info().Err(err).Int("attempt", attempt).Msg("Waiting for database...")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pingInterval):
		}
	}
	return nil, errors.Wrap(err, "database did not become ready")
}
