package storage

import (
	"testing"
	"time"

	"stock-terminal/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Client = (*mocks.Client)(nil)

func TestConfigEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		host     string
		expected bool
	}{
		{"Bare", Config{Endpoint: "localhost:9000"}, "localhost:9000", false},
		{"BareWithSSL", Config{Endpoint: "minio:9000", UseSSL: true}, "minio:9000", true},
		{"HTTP", Config{Endpoint: "http://localhost:9000"}, "localhost:9000", false},
		{"HTTPS", Config{Endpoint: "https://s3.amazonaws.com"}, "s3.amazonaws.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure := tt.cfg.endpoint()
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.expected, secure)
		})
	}
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.timeout())

	tr := newTransport(5 * time.Second)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 5*time.Second, tr.ResponseHeaderTimeout)
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(Config{
		Endpoint:  "https://s3.amazonaws.com",
		AccessKey: "testkey",
		SecretKey: "testsecret",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
