package assist

// Config holds configuration for the search-assist publisher.
type Config struct {
	// Enabled turns the Redis publisher on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the Redis address (host:port).
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Channel is the pub/sub channel the search text is published on.
	Channel string `mapstructure:"channel" default:"terminal:search"`
	// QueueSize bounds the number of pending messages.
	QueueSize int `mapstructure:"queue_size" default:"64"`
}
