package storage

import (
	"strings"
	"time"
)

// Config holds the object storage connection used for catalog documents.
type Config struct {
	// Endpoint is host:port, optionally with an http:// or https:// scheme.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL is implied by an https:// endpoint.
	UseSSL bool   `mapstructure:"use_ssl" default:"false"`
	Bucket string `mapstructure:"bucket" default:"terminal"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, the TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// endpoint returns the host without scheme and whether TLS is required.
func (c Config) endpoint() (string, bool) {
	switch {
	case strings.HasPrefix(c.Endpoint, "https://"):
		return strings.TrimPrefix(c.Endpoint, "https://"), true
	case strings.HasPrefix(c.Endpoint, "http://"):
		return strings.TrimPrefix(c.Endpoint, "http://"), c.UseSSL
	}
	return c.Endpoint, c.UseSSL
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
