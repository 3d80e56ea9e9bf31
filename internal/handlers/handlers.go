package handlers

import (
	"database/sql"

	"github.com/weatherly/weatherly-golang/internal/config"
	"github.com/weatherly/weatherly-golang/internal/weather"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB      *sql.DB
	Config  *config.Config
	Weather *weather.Client
}
