package server

import (
	"errors"
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Name identifies this terminal in published search-assist messages.
	Name string `mapstructure:"name" default:"main"`
	// RowWidth is the number of entries per display row.
	RowWidth int `mapstructure:"row_width" default:"9"`
}

// ErrInvalidRowWidth is returned by Validate for a row width below one.
var ErrInvalidRowWidth = errors.New("row width must be at least 1")

// Validate checks the port and row width.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.RowWidth < 1 {
		return ErrInvalidRowWidth
	}
	return nil
}
