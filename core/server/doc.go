// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key guarding every
// route, the terminal name and the display row width. Validate is called
// once at startup.
package server
